package platform

import (
	"fmt"
	"strings"
)

// URLOpener opens an external URL. The renderer accepts one so tests can
// substitute a recording opener for the real navigation channel.
type URLOpener func(url string) error

var navigationService = newNavigationService()

// OpenURL asks the native side to open the given URL (deep link or web URL).
// The call is fire-and-forget from the caller's perspective: failures are
// returned for reporting but carry no retry semantics.
func OpenURL(url string) error {
	return navigationService.open(url)
}

type navigationServiceState struct {
	channel *MethodChannel
}

func newNavigationService() *navigationServiceState {
	return &navigationServiceState{
		channel: NewMethodChannel("cardkit/navigation"),
	}
}

func (s *navigationServiceState) open(url string) error {
	if strings.TrimSpace(url) == "" {
		return fmt.Errorf("open url: %w", ErrInvalidArguments)
	}
	result, err := s.channel.Invoke("openUrl", map[string]any{"url": url})
	if err != nil {
		return err
	}
	if ok, isBool := result.(bool); isBool && !ok {
		return fmt.Errorf("open url %q: rejected by platform", url)
	}
	return nil
}

// Package messaging is the thin client SDK bridging to the native
// personalization extension. It fetches propositions for surfaces and
// forwards display, interact, and dismiss tracking. Card rendering never
// depends on this package; the card view layer connects the two.
package messaging

import (
	"fmt"
	"sync"

	"github.com/go-cardkit/cardkit/pkg/config"
	"github.com/go-cardkit/cardkit/pkg/errors"
	"github.com/go-cardkit/cardkit/pkg/media"
	"github.com/go-cardkit/cardkit/pkg/platform"
)

// EventType classifies a tracked edge event. Wire values are part of the
// native extension contract.
type EventType int

const (
	// EventTypeDismiss records a card dismissal.
	EventTypeDismiss EventType = iota
	// EventTypeInteract records a user interaction.
	EventTypeInteract
	// EventTypeTrigger records a card trigger.
	EventTypeTrigger
	// EventTypeDisplay records a card display.
	EventTypeDisplay
)

func (t EventType) String() string {
	switch t {
	case EventTypeDismiss:
		return "dismiss"
	case EventTypeInteract:
		return "interact"
	case EventTypeTrigger:
		return "trigger"
	case EventTypeDisplay:
		return "display"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Messaging is the client handle to the native extension.
type Messaging struct {
	channel *platform.MethodChannel
	events  *platform.EventChannel

	// prefetch warms the image cache for freshly fetched card content.
	prefetch func(urls []string)

	mu             sync.Mutex
	listeners      []func(surface string)
	defaultSurface string
	minVersion     string
}

var (
	defaultMessaging *Messaging
	messagingOnce    sync.Once
)

// Shared returns the process-wide Messaging instance.
func Shared() *Messaging {
	messagingOnce.Do(func() {
		defaultMessaging = New()
	})
	return defaultMessaging
}

// New creates a Messaging instance with its own channel wiring.
func New() *Messaging {
	m := &Messaging{
		channel: platform.NewMethodChannel("cardkit/messaging"),
		events:  platform.NewEventChannel("cardkit/messaging/events"),
		prefetch: func(urls []string) {
			go media.DefaultCache().Prefetch(urls)
		},
	}
	m.events.Listen(platform.EventHandler{OnEvent: m.handleEvent})
	return m
}

// Configure applies resolved SDK configuration: the surface used when callers
// pass none, and an optional override of the minimum native extension
// version. Returns m for chaining after New or Shared.
func (m *Messaging) Configure(cfg *config.Resolved) *Messaging {
	if cfg == nil {
		return m
	}
	m.mu.Lock()
	m.defaultSurface = cfg.DefaultSurface
	m.minVersion = canonicalVersion(cfg.MinExtensionVersion)
	m.mu.Unlock()
	return m
}

// UpdatePropositionsForSurfaces asks the native extension to refresh the
// propositions cached for the given surfaces.
func (m *Messaging) UpdatePropositionsForSurfaces(surfaces []string) error {
	if len(surfaces) == 0 {
		return fmt.Errorf("update propositions: %w", platform.ErrInvalidArguments)
	}
	_, err := m.channel.Invoke("updatePropositionsForSurfaces", map[string]any{
		"surfaces": surfaces,
	})
	return err
}

// GetPropositionsForSurface returns the cached propositions for a surface,
// fetching through the native extension. An empty surface falls back to the
// configured default surface; without one it is an error.
func (m *Messaging) GetPropositionsForSurface(surface string) ([]*Proposition, error) {
	if surface == "" {
		m.mu.Lock()
		surface = m.defaultSurface
		m.mu.Unlock()
	}
	if surface == "" {
		return nil, fmt.Errorf("get propositions: %w", platform.ErrInvalidArguments)
	}
	result, err := m.channel.Invoke("getPropositionsForSurface", map[string]any{
		"surface": surface,
	})
	if err != nil {
		return nil, err
	}
	props, err := decodePropositions(result)
	if err != nil {
		errors.Report(&errors.CardKitError{
			Op:      "messaging.GetPropositionsForSurface",
			Kind:    errors.KindParsing,
			Channel: m.channel.Name(),
			Err:     err,
		})
		return nil, err
	}
	for _, p := range props {
		p.messaging = m
	}
	if urls := cardImageURLs(props); len(urls) > 0 && m.prefetch != nil {
		m.prefetch(urls)
	}
	return props, nil
}

// Track records an edge event against a proposition item. interaction may be
// empty (recorded as null) and tokens may be nil.
func (m *Messaging) Track(propositionID, itemID, interaction string, eventType EventType, tokens []string) error {
	args := map[string]any{
		"propositionId": propositionID,
		"itemId":        itemID,
		"eventType":     int(eventType),
	}
	if interaction != "" {
		args["interaction"] = interaction
	}
	if len(tokens) > 0 {
		args["tokens"] = tokens
	}
	_, err := m.channel.Invoke("track", args)
	if err != nil {
		errors.Report(&errors.CardKitError{
			Op:      "messaging.Track",
			Kind:    errors.KindPlatform,
			Channel: m.channel.Name(),
			Err:     err,
		})
	}
	return err
}

// OnPropositionsUpdated registers a listener invoked when the native side
// pushes a refresh for a surface.
func (m *Messaging) OnPropositionsUpdated(fn func(surface string)) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

func (m *Messaging) handleEvent(data any) {
	payload, ok := data.(map[string]any)
	if !ok {
		return
	}
	if payload["type"] != "propositionsUpdated" {
		return
	}
	surface, _ := payload["surface"].(string)
	if surface == "" {
		return
	}

	m.mu.Lock()
	listeners := make([]func(string), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		if !platform.Dispatch(func() { fn(surface) }) {
			fn(surface)
		}
	}
}

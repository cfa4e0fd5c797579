package messaging

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// MinimumExtensionVersion is the oldest native extension version this SDK
// speaks the channel protocol of.
const MinimumExtensionVersion = "v3.0.0"

// ExtensionVersion asks the native extension for its semantic version.
func (m *Messaging) ExtensionVersion() (string, error) {
	result, err := m.channel.Invoke("getVersion", nil)
	if err != nil {
		return "", err
	}
	version, ok := result.(string)
	if !ok || version == "" {
		return "", fmt.Errorf("get extension version: unexpected result %v", result)
	}
	return canonicalVersion(version), nil
}

// CheckExtensionVersion verifies the native extension is recent enough for
// this SDK. A configured minimum version (see Configure) takes precedence
// over the compiled-in one. Call once after the bridge is initialized.
func (m *Messaging) CheckExtensionVersion() error {
	version, err := m.ExtensionVersion()
	if err != nil {
		return err
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("extension version %q is not a valid semantic version", version)
	}
	minimum := m.minimumVersion()
	if semver.Compare(version, minimum) < 0 {
		return fmt.Errorf("extension version %s is older than required minimum %s", version, minimum)
	}
	return nil
}

// minimumVersion returns the configured minimum extension version when one is
// set and valid, the compiled-in minimum otherwise.
func (m *Messaging) minimumVersion() string {
	m.mu.Lock()
	configured := m.minVersion
	m.mu.Unlock()
	if configured != "" && semver.IsValid(configured) {
		return configured
	}
	return MinimumExtensionVersion
}

// canonicalVersion normalizes native version strings to the "vMAJOR.MINOR.PATCH"
// form semver expects.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

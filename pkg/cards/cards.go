// Package cards provides the content-card views: each card couples a
// template conversion with the renderer and layers the tracking contract on
// top — display is tracked once per card, button and card presses are
// tracked as interactions, and dismissal is tracked before the card's
// proposition mapping is released.
package cards

import (
	"sync"
	"sync/atomic"

	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/messaging"
	"github.com/go-cardkit/cardkit/pkg/platform"
	"github.com/go-cardkit/cardkit/pkg/templates"
	"github.com/go-cardkit/cardkit/pkg/theme"
	"github.com/go-cardkit/cardkit/pkg/views"
)

// Card is the common surface of the three card views.
type Card interface {
	// Build converts the card content and renders it to a view descriptor.
	Build() views.View
	// NotifyDisplayed records the one-shot display event. Safe to call on
	// every render pass; only the first call has any effect.
	NotifyDisplayed()
}

// cardBase carries the state and behavior shared by all card variants.
type cardBase struct {
	content  *content.CardContent
	cardID   string
	convert  func(*content.CardContent, templates.Options) *component.Component
	opts     templates.Options
	theme    *theme.ThemeData
	scheme   theme.Brightness
	listener component.Callback
	registry *messaging.CardRegistry
	opener   platform.URLOpener

	displayed atomic.Bool

	mountMu sync.Mutex
	mountID int64
}

func newCardBase(data *content.CardContent, cardID string, convert func(*content.CardContent, templates.Options) *component.Component) cardBase {
	return cardBase{
		content:  data,
		cardID:   cardID,
		convert:  convert,
		registry: messaging.DefaultCardRegistry(),
	}
}

// Build converts the card content and renders the resulting tree with the
// card's internal event callback wired in.
func (c *cardBase) Build() views.View {
	tree := c.convert(c.content, c.opts)
	return renderTree(tree, c)
}

// NotifyDisplayed records the display event exactly once for this card.
func (c *cardBase) NotifyDisplayed() {
	if !c.displayed.CompareAndSwap(false, true) {
		return
	}
	c.track("", messaging.EventTypeDisplay)
	c.forward(component.EventDisplay, "")
}

// Mount materializes the card through the default view host. Returns the
// host's root view ID.
func (c *cardBase) Mount() (int64, error) {
	id, err := views.DefaultHost().Mount(c.Build())
	if err != nil {
		return 0, err
	}
	c.mountMu.Lock()
	c.mountID = id
	c.mountMu.Unlock()
	c.NotifyDisplayed()
	return id, nil
}

// Unmount tears the card down from the default view host.
func (c *cardBase) Unmount() error {
	c.mountMu.Lock()
	id := c.mountID
	c.mountID = 0
	c.mountMu.Unlock()
	if id == 0 {
		return nil
	}
	return views.DefaultHost().Unmount(id)
}

// onEvent is the renderer callback: it maps renderer events onto the
// tracking contract and then forwards to the caller's listener.
func (c *cardBase) onEvent(event string, interactID string) {
	switch event {
	case component.EventClickButton:
		c.track(interactID, messaging.EventTypeInteract)
		c.forward(event, interactID)
		c.forward(component.EventInteract, interactID)
	case component.EventPress:
		c.track(component.EventPress, messaging.EventTypeInteract)
		c.forward(event, interactID)
		c.forward(component.EventInteract, interactID)
	case component.EventDismiss:
		c.track(interactID, messaging.EventTypeDismiss)
		if c.cardID != "" {
			c.registry.Remove(c.cardID)
		}
		c.forward(event, interactID)
	default:
		c.forward(event, interactID)
	}
}

// track resolves the card's proposition item and records an edge event.
// Cards without a registered proposition simply skip tracking.
func (c *cardBase) track(interaction string, eventType messaging.EventType) {
	if c.cardID == "" {
		return
	}
	item := c.registry.ItemFor(c.cardID)
	if item == nil {
		return
	}
	item.Track(interaction, eventType, nil)
}

func (c *cardBase) forward(event string, interactID string) {
	if c.listener != nil {
		c.listener(event, interactID)
	}
}

package cards

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/messaging"
	"github.com/go-cardkit/cardkit/pkg/platform"
	"github.com/go-cardkit/cardkit/pkg/styles"
	"github.com/go-cardkit/cardkit/pkg/templates"
	"github.com/go-cardkit/cardkit/pkg/theme"
)

// SmallImageCard is a content card using the small-image layout.
//
// Configure with the With* methods before the first Build or Mount:
//
//	card := cards.SmallImageCardOf(data, item.ID).
//	    WithMaxHeight(140).
//	    WithListener(onCardEvent)
//	view := card.Build()
type SmallImageCard struct {
	cardBase
}

// SmallImageCardOf creates a small-image card for the given content. cardID
// keys the card into the proposition registry for tracking; pass "" for an
// untracked card.
func SmallImageCardOf(data *content.CardContent, cardID string) *SmallImageCard {
	return &SmallImageCard{newCardBase(data, cardID, templates.SmallImage)}
}

// WithMaxHeight caps the card height.
func (c *SmallImageCard) WithMaxHeight(height float64) *SmallImageCard {
	c.opts.MaxHeight = height
	return c
}

// WithStyles overrides individual style slot properties.
func (c *SmallImageCard) WithStyles(overrides styles.StyleSheet) *SmallImageCard {
	c.opts.Styles = overrides
	return c
}

// WithTheme sets the resolved theme and color scheme.
func (c *SmallImageCard) WithTheme(t *theme.ThemeData, scheme theme.Brightness) *SmallImageCard {
	c.theme = t
	c.scheme = scheme
	return c
}

// WithListener registers the caller's event callback. Events arrive after
// tracking has been recorded.
func (c *SmallImageCard) WithListener(fn component.Callback) *SmallImageCard {
	c.listener = fn
	return c
}

// WithRegistry substitutes the proposition registry (tests, multi-tenant
// hosts). Defaults to the shared registry.
func (c *SmallImageCard) WithRegistry(r *messaging.CardRegistry) *SmallImageCard {
	c.registry = r
	return c
}

// WithOpener substitutes the URL opener used for action URLs.
func (c *SmallImageCard) WithOpener(opener platform.URLOpener) *SmallImageCard {
	c.opener = opener
	return c
}

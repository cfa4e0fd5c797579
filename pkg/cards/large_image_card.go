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

// LargeImageCard is a content card using the large-image layout.
type LargeImageCard struct {
	cardBase
}

// LargeImageCardOf creates a large-image card for the given content. cardID
// keys the card into the proposition registry for tracking; pass "" for an
// untracked card.
func LargeImageCardOf(data *content.CardContent, cardID string) *LargeImageCard {
	return &LargeImageCard{newCardBase(data, cardID, templates.LargeImage)}
}

// WithMaxHeight caps the card height.
func (c *LargeImageCard) WithMaxHeight(height float64) *LargeImageCard {
	c.opts.MaxHeight = height
	return c
}

// WithStyles overrides individual style slot properties.
func (c *LargeImageCard) WithStyles(overrides styles.StyleSheet) *LargeImageCard {
	c.opts.Styles = overrides
	return c
}

// WithTheme sets the resolved theme and color scheme.
func (c *LargeImageCard) WithTheme(t *theme.ThemeData, scheme theme.Brightness) *LargeImageCard {
	c.theme = t
	c.scheme = scheme
	return c
}

// WithListener registers the caller's event callback. Events arrive after
// tracking has been recorded.
func (c *LargeImageCard) WithListener(fn component.Callback) *LargeImageCard {
	c.listener = fn
	return c
}

// WithRegistry substitutes the proposition registry. Defaults to the shared
// registry.
func (c *LargeImageCard) WithRegistry(r *messaging.CardRegistry) *LargeImageCard {
	c.registry = r
	return c
}

// WithOpener substitutes the URL opener used for action URLs.
func (c *LargeImageCard) WithOpener(opener platform.URLOpener) *LargeImageCard {
	c.opener = opener
	return c
}

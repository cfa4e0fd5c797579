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

// ImageOnlyCard is a content card that is a single image. The content must
// carry a non-empty image URL; see [templates.ImageOnly] for the degraded
// behavior when it does not.
type ImageOnlyCard struct {
	cardBase
}

// ImageOnlyCardOf creates an image-only card for the given content. cardID
// keys the card into the proposition registry for tracking; pass "" for an
// untracked card.
func ImageOnlyCardOf(data *content.CardContent, cardID string) *ImageOnlyCard {
	return &ImageOnlyCard{newCardBase(data, cardID, templates.ImageOnly)}
}

// WithMaxHeight caps the card height.
func (c *ImageOnlyCard) WithMaxHeight(height float64) *ImageOnlyCard {
	c.opts.MaxHeight = height
	return c
}

// WithStyles overrides individual style slot properties.
func (c *ImageOnlyCard) WithStyles(overrides styles.StyleSheet) *ImageOnlyCard {
	c.opts.Styles = overrides
	return c
}

// WithTheme sets the resolved theme and color scheme.
func (c *ImageOnlyCard) WithTheme(t *theme.ThemeData, scheme theme.Brightness) *ImageOnlyCard {
	c.theme = t
	c.scheme = scheme
	return c
}

// WithListener registers the caller's event callback. Events arrive after
// tracking has been recorded.
func (c *ImageOnlyCard) WithListener(fn component.Callback) *ImageOnlyCard {
	c.listener = fn
	return c
}

// WithRegistry substitutes the proposition registry. Defaults to the shared
// registry.
func (c *ImageOnlyCard) WithRegistry(r *messaging.CardRegistry) *ImageOnlyCard {
	c.registry = r
	return c
}

// WithOpener substitutes the URL opener used for action URLs.
func (c *ImageOnlyCard) WithOpener(opener platform.URLOpener) *ImageOnlyCard {
	c.opener = opener
	return c
}

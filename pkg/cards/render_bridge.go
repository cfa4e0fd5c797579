package cards

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/render"
	"github.com/go-cardkit/cardkit/pkg/views"
)

// renderTree runs the generic renderer with the card's theme, scheme, and
// event callback.
func renderTree(tree *component.Component, c *cardBase) views.View {
	return render.Render(tree, render.Options{
		Theme:   c.theme,
		Scheme:  c.scheme,
		OnEvent: c.onEvent,
		Opener:  c.opener,
	})
}

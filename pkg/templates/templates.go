// Package templates converts declarative card content into generic component
// trees. Each template is a pure function: identical inputs produce
// structurally identical trees, which is what makes caller-side memoization
// safe.
package templates

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/styles"
)

// Options carries the optional conversion inputs shared by all templates.
// The zero value means "no height constraint, no style overrides".
type Options struct {
	// MaxHeight, when positive, caps the card (and image container) height.
	// It is injected underneath the caller's style overrides, so an explicit
	// maxHeight override still wins.
	MaxHeight float64
	// Styles overrides individual properties of the template's default
	// style slots. See [styles.Merge] for precedence.
	Styles styles.StyleSheet
}

// resolveStyles injects the height constraint into the override sheet and
// merges the result over the template defaults.
func resolveStyles(defaults styles.StyleSheet, opts Options) styles.StyleSheet {
	overrides := opts.Styles
	if opts.MaxHeight > 0 {
		overrides = overrides.WithBase(styles.SlotCard, "maxHeight", opts.MaxHeight)
		overrides = overrides.WithBase(styles.SlotImageContainer, "maxHeight", opts.MaxHeight)
	}
	return styles.Merge(defaults, overrides)
}

// contentView builds the action-capable view that wraps a card's main
// content. The action URL is set only when the data carries a non-empty one,
// so consumers can rely on emptiness meaning "not navigable".
func contentView(data *content.CardContent, sheet styles.StyleSheet, children []*component.Component) *component.Component {
	view := &component.Component{
		Type:       component.TypeView,
		Style:      sheet[styles.SlotContainer],
		Actionable: true,
		Children:   children,
	}
	if data != nil && data.ActionURL != "" {
		view.ActionURL = data.ActionURL
	}
	return view
}

// imageSubtree builds imageContainer → image, or nil when the image URL is
// empty. Alt text defaults to "".
func imageSubtree(img *content.ImageAsset, sheet styles.StyleSheet) *component.Component {
	if img == nil || img.URL == "" {
		return nil
	}
	return &component.Component{
		Type:  component.TypeView,
		Style: sheet[styles.SlotImageContainer],
		Children: []*component.Component{{
			Type:    component.TypeImage,
			Style:   sheet[styles.SlotImage],
			URL:     img.URL,
			DarkURL: img.DarkURL,
			Alt:     img.Alt,
		}},
	}
}

// textNode builds a text leaf of the given type, or nil when the content is
// empty.
func textNode(typ component.Type, text string, style styles.Style) *component.Component {
	if text == "" {
		return nil
	}
	return &component.Component{
		Type:    typ,
		Style:   style,
		Content: text,
	}
}

// buttonContainer builds the button row, or nil when there are no buttons.
// maxButtons caps the rendered count when positive; buttonStyle is attached
// to each button node when non-nil.
func buttonContainer(buttons []content.ButtonData, sheet styles.StyleSheet, maxButtons int, buttonStyle styles.Style) *component.Component {
	if len(buttons) == 0 {
		return nil
	}
	if maxButtons > 0 && len(buttons) > maxButtons {
		buttons = buttons[:maxButtons]
	}
	container := &component.Component{
		Type:     component.TypeView,
		Style:    sheet[styles.SlotButtonContainer],
		Children: make([]*component.Component, 0, len(buttons)),
	}
	for _, btn := range buttons {
		container.Children = append(container.Children, &component.Component{
			Type:       component.TypeButton,
			Style:      buttonStyle,
			Content:    btn.Text.Content,
			InteractID: btn.InteractID,
			ActionURL:  btn.ActionURL,
			ButtonID:   btn.ID,
		})
	}
	return container
}

// dismissNode builds the dismiss control sibling, or nil when the data
// suppresses it (absent dismiss button or style "none").
func dismissNode(data *content.CardContent, sheet styles.StyleSheet) *component.Component {
	style := data.DismissStyle()
	if style == "" || style == string(component.DismissNone) {
		return nil
	}
	return &component.Component{
		Type:        component.TypeDismissButton,
		Style:       sheet[styles.SlotDismissButton],
		InteractID:  component.DismissButtonInteractID,
		DismissType: component.DismissStyle(style),
	}
}

// root assembles the card root: the main content view plus, when present,
// the dismiss control as a second child.
func root(sheet styles.StyleSheet, main, dismiss *component.Component) *component.Component {
	node := &component.Component{
		Type:     component.TypeView,
		Style:    sheet[styles.SlotCard],
		Children: []*component.Component{main},
	}
	if dismiss != nil {
		node.Children = append(node.Children, dismiss)
	}
	return node
}

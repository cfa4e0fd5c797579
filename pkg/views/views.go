// Package views defines the platform view descriptors the renderer emits.
// A descriptor tree is logical: it carries styles, content, and press
// handlers, and is materialized into native views by [Host] over the
// platform channel. Pixel layout belongs to the native side.
package views

import (
	"github.com/go-cardkit/cardkit/pkg/graphics"
	"github.com/go-cardkit/cardkit/pkg/styles"
)

// View is a node in the descriptor tree.
type View interface {
	// Kind returns the native view type identifier.
	Kind() string
	// describe returns the creation payload sent to the native side.
	describe() map[string]any
}

// Box is a container view. When OnPress is set the native view reports taps
// back through the host.
type Box struct {
	// Style is the opaque style bag applied to the native container.
	Style styles.Style
	// OnPress is invoked when the native view reports a tap.
	OnPress func()
	// Children are materialized in order inside the container.
	Children []View
}

func (b Box) Kind() string { return "box" }

func (b Box) describe() map[string]any {
	return map[string]any{
		"style":     map[string]any(b.Style),
		"pressable": b.OnPress != nil,
	}
}

// Label is a text leaf.
type Label struct {
	// Content is the text to display.
	Content string
	// Style is the opaque style bag. A "color" style property overrides
	// TextColor on the native side.
	Style styles.Style
	// TextColor is the theme-derived text color.
	TextColor graphics.Color
	// MaxLines limits the number of visible lines.
	MaxLines int
	// FitToSize shrinks the font to fit the available width.
	FitToSize bool
	// OnPress, when set, makes the label tappable (buttons).
	OnPress func()
}

func (l Label) Kind() string { return "label" }

func (l Label) describe() map[string]any {
	return map[string]any{
		"content":   l.Content,
		"style":     map[string]any(l.Style),
		"textColor": uint32(l.TextColor),
		"maxLines":  l.MaxLines,
		"fitToSize": l.FitToSize,
		"pressable": l.OnPress != nil,
	}
}

// ImageView is an image leaf. The URL is already resolved for the active
// color scheme by the renderer.
type ImageView struct {
	// URL is the image source.
	URL string
	// Alt is the accessibility description.
	Alt string
	// Style is the opaque style bag.
	Style styles.Style
	// PlaceholderColor fills the image area while loading.
	PlaceholderColor graphics.Color
}

func (i ImageView) Kind() string { return "image" }

func (i ImageView) describe() map[string]any {
	return map[string]any{
		"url":              i.URL,
		"alt":              i.Alt,
		"style":            map[string]any(i.Style),
		"placeholderColor": uint32(i.PlaceholderColor),
	}
}

// childrenOf returns the ordered children of a view, or nil for leaves.
func childrenOf(v View) []View {
	if box, ok := v.(Box); ok {
		return box.Children
	}
	return nil
}

// pressHandlerOf returns the press handler of a view, or nil.
func pressHandlerOf(v View) func() {
	switch n := v.(type) {
	case Box:
		return n.OnPress
	case Label:
		return n.OnPress
	default:
		return nil
	}
}

// Package component defines the generic, renderer-agnostic tree produced by
// the template converters and consumed by the renderer. A tree is built fresh
// on every conversion and is immutable once returned; the renderer never
// mutates it.
package component

import "github.com/go-cardkit/cardkit/pkg/styles"

// Type identifies the kind of a component node. The set is closed: the
// renderer switches exhaustively over it and treats anything else as
// unrenderable rather than failing.
type Type int

const (
	// TypeUnknown is the zero value and renders nothing.
	TypeUnknown Type = iota
	// TypeView is a container holding ordered children.
	TypeView
	// TypeText is a generic text leaf.
	TypeText
	// TypeTitle is a title text leaf.
	TypeTitle
	// TypeBody is a body text leaf.
	TypeBody
	// TypeImage is an image leaf.
	TypeImage
	// TypeButton is a pressable label leaf.
	TypeButton
	// TypeDismissButton is the card dismiss control.
	TypeDismissButton
)

func (t Type) String() string {
	switch t {
	case TypeView:
		return "view"
	case TypeText:
		return "text"
	case TypeTitle:
		return "title"
	case TypeBody:
		return "body"
	case TypeImage:
		return "image"
	case TypeButton:
		return "button"
	case TypeDismissButton:
		return "dismissButton"
	default:
		return "unknown"
	}
}

// DismissStyle selects the visual treatment of the dismiss control.
type DismissStyle string

const (
	// DismissNone suppresses the dismiss control entirely.
	DismissNone DismissStyle = "none"
	// DismissSimple renders a plain dismiss glyph.
	DismissSimple DismissStyle = "simple"
	// DismissCircle renders the dismiss glyph inside a filled circle.
	DismissCircle DismissStyle = "circle"
)

// DismissButtonInteractID is the interact identifier carried by every dismiss
// control, shared by all three template converters and the tracking layer.
const DismissButtonInteractID = "dismiss_button"

// Component is a node in the converted card tree.
type Component struct {
	// Type tags the node kind.
	Type Type
	// Style is the merged style for this node. Opaque to the renderer;
	// passed through to the platform view.
	Style styles.Style
	// Children holds ordered child nodes. Only view nodes carry children.
	Children []*Component
	// Content is the display text for text, title, body and button nodes.
	Content string
	// InteractID attributes interaction events to this node. When empty the
	// node is not interactive and presses must not produce an event.
	InteractID string
	// ActionURL is opened on press. Set only when the source data carried a
	// non-empty action URL; emptiness doubles as absence.
	ActionURL string
	// Actionable marks a view node as press-capable. A view emits a press
	// event only when Actionable is set and ActionURL is non-empty.
	Actionable bool
	// URL is the image source.
	URL string
	// DarkURL replaces URL under a dark color scheme when non-empty.
	DarkURL string
	// Alt is the image accessibility text. Converters default it to "".
	Alt string
	// DismissType is set only on dismiss-button nodes. DismissNone or empty
	// means the renderer produces nothing for the node.
	DismissType DismissStyle
	// ButtonID is opaque pass-through metadata from the source button.
	ButtonID string
}

// Callback receives interaction events from rendered nodes. interactID is
// empty for view-level press events.
type Callback func(event string, interactID string)

// Event names emitted through Callback.
const (
	// EventDismiss fires when the dismiss control is pressed.
	EventDismiss = "onDismiss"
	// EventDisplay fires once when a card first becomes visible. It is
	// emitted by the card view layer, never by the renderer.
	EventDisplay = "onDisplay"
	// EventClickButton fires when a button node is pressed.
	EventClickButton = "clickButton"
	// EventPress fires when an actionable view is pressed.
	EventPress = "press"
	// EventInteract is the aggregate interaction event forwarded by the
	// card view layer after tracking. Not part of the renderer contract.
	EventInteract = "onInteract"
)

// Package render walks a component tree and maps each node to a platform
// view descriptor, wiring press handlers to the caller's event callback.
//
// Rendering is synchronous and side-effect free with respect to the tree:
// the only effects are deferred to press time (event emission and URL
// opening). The renderer performs no caching; memoization, if any, is the
// caller's responsibility and must key on the node graph plus theme, scheme,
// and handler identity.
package render

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/errors"
	"github.com/go-cardkit/cardkit/pkg/platform"
	"github.com/go-cardkit/cardkit/pkg/styles"
	"github.com/go-cardkit/cardkit/pkg/theme"
	"github.com/go-cardkit/cardkit/pkg/views"
)

// DefaultMaxDepth bounds recursion for caller-constructed trees. Converter
// output never comes close; the guard exists for pathological input.
const DefaultMaxDepth = 32

// Options configures one render pass.
type Options struct {
	// Theme is the resolved theme. Defaults to the light theme when nil.
	Theme *theme.ThemeData
	// Scheme selects light or dark asset resolution.
	Scheme theme.Brightness
	// OnEvent receives interaction events. May be nil; presses then only
	// open URLs.
	OnEvent component.Callback
	// Opener opens action URLs. Defaults to [platform.OpenURL].
	Opener platform.URLOpener
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Render maps the component tree rooted at node to a platform view
// descriptor. It returns nil for nil nodes, unrecognized node types, and
// dismiss nodes with no visible style; it never panics on malformed trees.
func Render(node *component.Component, opts Options) views.View {
	if opts.Theme == nil {
		opts.Theme = theme.DefaultLightTheme()
	}
	if opts.Opener == nil {
		opts.Opener = platform.OpenURL
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return renderNode(node, &opts, 0)
}

func renderNode(node *component.Component, opts *Options, depth int) views.View {
	if node == nil {
		return nil
	}
	if depth > opts.MaxDepth {
		errors.Report(&errors.CardKitError{
			Op:   "render.Render",
			Kind: errors.KindRender,
			Err:  errTooDeep,
		})
		return nil
	}

	switch node.Type {
	case component.TypeView:
		return renderView(node, opts, depth)
	case component.TypeText, component.TypeTitle, component.TypeBody:
		return renderText(node, opts)
	case component.TypeImage:
		return renderImage(node, opts)
	case component.TypeButton:
		return renderButton(node, opts)
	case component.TypeDismissButton:
		return renderDismissButton(node, opts)
	default:
		// Unrecognized node types degrade to invisible, never to a crash.
		return nil
	}
}

func renderView(node *component.Component, opts *Options, depth int) views.View {
	box := views.Box{Style: node.Style}
	for _, child := range node.Children {
		if rendered := renderNode(child, opts, depth+1); rendered != nil {
			box.Children = append(box.Children, rendered)
		}
	}
	if node.Actionable && node.ActionURL != "" {
		onEvent := opts.OnEvent
		actionURL := node.ActionURL
		opener := opts.Opener
		box.OnPress = func() {
			if onEvent != nil {
				onEvent(component.EventPress, "")
			}
			openURL(opener, actionURL)
		}
	}
	return box
}

func renderText(node *component.Component, opts *Options) views.View {
	cardTheme := opts.Theme.ContentCardThemeOf()
	label := views.Label{
		Content:   node.Content,
		Style:     node.Style,
		MaxLines:  1,
		FitToSize: true,
	}
	switch node.Type {
	case component.TypeBody:
		label.TextColor = cardTheme.BodyColor
	default:
		label.TextColor = cardTheme.TitleColor
	}
	if lines, ok := styleInt(node.Style, "numberOfLines"); ok {
		label.MaxLines = lines
	}
	if fit, ok := node.Style["adjustsFontSizeToFit"].(bool); ok {
		label.FitToSize = fit
	}
	return label
}

func renderImage(node *component.Component, opts *Options) views.View {
	url := node.URL
	if opts.Scheme == theme.BrightnessDark && node.DarkURL != "" {
		url = node.DarkURL
	}
	return views.ImageView{
		URL:              url,
		Alt:              node.Alt,
		Style:            node.Style,
		PlaceholderColor: opts.Theme.ContentCardThemeOf().ImagePlaceholderColor,
	}
}

func renderButton(node *component.Component, opts *Options) views.View {
	cardTheme := opts.Theme.ContentCardThemeOf()

	onEvent := opts.OnEvent
	interactID := node.InteractID
	actionURL := node.ActionURL
	opener := opts.Opener

	return views.Label{
		Content:   node.Content,
		Style:     node.Style,
		TextColor: cardTheme.ButtonTextColor,
		MaxLines:  1,
		FitToSize: true,
		OnPress: func() {
			// Event emission and URL opening are independent: either may
			// fire without the other on the same press.
			if interactID != "" && onEvent != nil {
				onEvent(component.EventClickButton, interactID)
			}
			if actionURL != "" {
				openURL(opener, actionURL)
			}
		},
	}
}

func renderDismissButton(node *component.Component, opts *Options) views.View {
	// Suppression check runs before any dismiss-specific styling.
	if node.DismissType == "" || node.DismissType == component.DismissNone {
		return nil
	}

	cardTheme := opts.Theme.ContentCardThemeOf()
	glyphStyle := styles.Style{"fontSize": 16}
	boxStyle := node.Style.Clone()
	if boxStyle == nil {
		boxStyle = styles.Style{}
	}
	if node.DismissType == component.DismissCircle {
		boxStyle["borderRadius"] = 12
		boxStyle["backgroundColor"] = "scrim"
		boxStyle["padding"] = 4
	}

	onEvent := opts.OnEvent
	interactID := node.InteractID

	return views.Box{
		Style: boxStyle,
		OnPress: func() {
			if interactID != "" && onEvent != nil {
				onEvent(component.EventDismiss, interactID)
			}
		},
		Children: []views.View{views.Label{
			Content:   "✕",
			Style:     glyphStyle,
			TextColor: cardTheme.DismissIconColor,
			MaxLines:  1,
		}},
	}
}

// openURL attempts to open the URL and reports failure without propagating:
// a failed open must not crash the view or undo the already-emitted event.
func openURL(opener platform.URLOpener, url string) {
	defer errors.Recover("render.openURL")
	if url == "" {
		return
	}
	if err := opener(url); err != nil {
		errors.Report(&errors.CardKitError{
			Op:   "render.openURL",
			Kind: errors.KindNavigation,
			Err:  err,
		})
	}
}

func styleInt(s styles.Style, key string) (int, bool) {
	switch v := s[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

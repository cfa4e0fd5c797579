// Package cardtest provides test helpers for the card pipeline: component
// tree finders, view tree inspection with tap simulation, and a recording
// native bridge for channel-level assertions.
package cardtest

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/views"
)

// FindByType returns all nodes of the given type in depth-first order.
func FindByType(root *component.Component, typ component.Type) []*component.Component {
	var found []*component.Component
	component.Walk(root, func(n *component.Component) bool {
		if n.Type == typ {
			found = append(found, n)
		}
		return true
	})
	return found
}

// FindByInteractID returns the first node carrying the interact ID, or nil.
func FindByInteractID(root *component.Component, interactID string) *component.Component {
	var found *component.Component
	component.Walk(root, func(n *component.Component) bool {
		if found == nil && n.InteractID == interactID {
			found = n
		}
		return found == nil
	})
	return found
}

// WalkViews visits a rendered view tree depth-first. Traversal stops entirely
// when visit returns false.
func WalkViews(v views.View, visit func(views.View) bool) {
	walkViews(v, visit)
}

func walkViews(v views.View, visit func(views.View) bool) bool {
	if v == nil {
		return true
	}
	if !visit(v) {
		return false
	}
	if box, ok := v.(views.Box); ok {
		for _, child := range box.Children {
			if !walkViews(child, visit) {
				return false
			}
		}
	}
	return true
}

// FindLabel returns the first label with the given content, or a zero Label
// and false.
func FindLabel(root views.View, text string) (views.Label, bool) {
	var found views.Label
	ok := false
	WalkViews(root, func(v views.View) bool {
		if label, isLabel := v.(views.Label); isLabel && label.Content == text {
			found = label
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// FindImages returns every image view in the tree in depth-first order.
func FindImages(root views.View) []views.ImageView {
	var images []views.ImageView
	WalkViews(root, func(v views.View) bool {
		if img, ok := v.(views.ImageView); ok {
			images = append(images, img)
		}
		return true
	})
	return images
}

// Tap simulates a press on the view, returning false when the view carries
// no press handler.
func Tap(v views.View) bool {
	var handler func()
	switch n := v.(type) {
	case views.Box:
		handler = n.OnPress
	case views.Label:
		handler = n.OnPress
	}
	if handler == nil {
		return false
	}
	handler()
	return true
}

// TapFirstPressable taps the first view in the tree that has a press
// handler, returning false when none does.
func TapFirstPressable(root views.View) bool {
	tapped := false
	WalkViews(root, func(v views.View) bool {
		if tapped {
			return false
		}
		if Tap(v) {
			tapped = true
			return false
		}
		return true
	})
	return tapped
}

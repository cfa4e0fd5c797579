package templates_test

import (
	"reflect"
	"testing"

	"github.com/go-cardkit/cardkit/pkg/cardtest"
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/styles"
	"github.com/go-cardkit/cardkit/pkg/templates"
)

func TestSmallImage_FullCard(t *testing.T) {
	data := &content.CardContent{
		Title:   &content.TextBlock{Content: "T"},
		Body:    &content.TextBlock{Content: "B"},
		Image:   &content.ImageAsset{URL: "https://x/img.jpg"},
		Buttons: []content.ButtonData{{InteractID: "b1", Text: content.TextBlock{Content: "Go"}}},
		DismissBtn: &content.DismissButton{
			Style: "simple",
		},
	}

	root := templates.SmallImage(data, templates.Options{})

	if root.Type != component.TypeView {
		t.Fatalf("expected view root, got %v", root.Type)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected root with content + dismiss children, got %d", len(root.Children))
	}

	dismiss := root.Children[1]
	if dismiss.Type != component.TypeDismissButton {
		t.Errorf("expected second child to be the dismiss button, got %v", dismiss.Type)
	}
	if dismiss.InteractID != component.DismissButtonInteractID {
		t.Errorf("expected dismiss interactId %q, got %q", component.DismissButtonInteractID, dismiss.InteractID)
	}
	if dismiss.DismissType != component.DismissSimple {
		t.Errorf("expected dismissType simple, got %q", dismiss.DismissType)
	}

	titles := cardtest.FindByType(root, component.TypeTitle)
	if len(titles) != 1 || titles[0].Content != "T" {
		t.Errorf("expected one title node with content T, got %v", titles)
	}
	bodies := cardtest.FindByType(root, component.TypeBody)
	if len(bodies) != 1 || bodies[0].Content != "B" {
		t.Errorf("expected one body node with content B, got %v", bodies)
	}

	buttons := cardtest.FindByType(root, component.TypeButton)
	if len(buttons) != 1 {
		t.Fatalf("expected 1 button, got %d", len(buttons))
	}
	if buttons[0].Content != "Go" || buttons[0].InteractID != "b1" {
		t.Errorf("expected button Go/b1, got %q/%q", buttons[0].Content, buttons[0].InteractID)
	}
	if buttons[0].Style == nil {
		t.Error("expected small-image buttons to carry the merged button style")
	}
}

func TestSmallImage_NoDismissMeansSingleChild(t *testing.T) {
	for name, data := range map[string]*content.CardContent{
		"absent": {Title: &content.TextBlock{Content: "T"}},
		"none":   {Title: &content.TextBlock{Content: "T"}, DismissBtn: &content.DismissButton{Style: "none"}},
	} {
		root := templates.SmallImage(data, templates.Options{})
		if len(root.Children) != 1 {
			t.Errorf("%s: expected exactly 1 root child, got %d", name, len(root.Children))
		}
		if nodes := cardtest.FindByType(root, component.TypeDismissButton); len(nodes) != 0 {
			t.Errorf("%s: expected no dismiss button node", name)
		}
	}
}

func TestSmallImage_AllButtonsRendered(t *testing.T) {
	data := &content.CardContent{
		Buttons: []content.ButtonData{
			{InteractID: "b1", Text: content.TextBlock{Content: "1"}},
			{InteractID: "b2", Text: content.TextBlock{Content: "2"}},
			{InteractID: "b3", Text: content.TextBlock{Content: "3"}},
			{InteractID: "b4", Text: content.TextBlock{Content: "4"}},
			{InteractID: "b5", Text: content.TextBlock{Content: "5"}},
		},
	}

	root := templates.SmallImage(data, templates.Options{})

	buttons := cardtest.FindByType(root, component.TypeButton)
	if len(buttons) != 5 {
		t.Fatalf("expected all 5 buttons rendered, got %d", len(buttons))
	}
	for i, btn := range buttons {
		want := data.Buttons[i].InteractID
		if btn.InteractID != want {
			t.Errorf("button %d: expected interactId %q, got %q", i, want, btn.InteractID)
		}
	}
}

func TestSmallImage_EmptyButtonsOmitContainer(t *testing.T) {
	for name, data := range map[string]*content.CardContent{
		"absent": {Title: &content.TextBlock{Content: "T"}},
		"empty":  {Title: &content.TextBlock{Content: "T"}, Buttons: []content.ButtonData{}},
	} {
		root := templates.SmallImage(data, templates.Options{})
		if nodes := cardtest.FindByType(root, component.TypeButton); len(nodes) != 0 {
			t.Errorf("%s: expected no button nodes", name)
		}
		// The content container must hold only the text block: no empty
		// button row.
		contentContainer := root.Children[0].Children[0]
		if len(contentContainer.Children) != 1 {
			t.Errorf("%s: expected content container with only the text block, got %d children", name, len(contentContainer.Children))
		}
	}
}

func TestSmallImage_EmptyImageURLOmitsSubtree(t *testing.T) {
	data := &content.CardContent{
		Title: &content.TextBlock{Content: "T"},
		Image: &content.ImageAsset{URL: ""},
	}

	root := templates.SmallImage(data, templates.Options{})

	if nodes := cardtest.FindByType(root, component.TypeImage); len(nodes) != 0 {
		t.Error("expected no image subtree for empty image URL")
	}
}

func TestSmallImage_EmptyTextOmitted(t *testing.T) {
	data := &content.CardContent{
		Title: &content.TextBlock{Content: ""},
		Body:  &content.TextBlock{Content: ""},
	}

	root := templates.SmallImage(data, templates.Options{})

	if nodes := cardtest.FindByType(root, component.TypeTitle); len(nodes) != 0 {
		t.Error("expected empty title to be omitted")
	}
	if nodes := cardtest.FindByType(root, component.TypeBody); len(nodes) != 0 {
		t.Error("expected empty body to be omitted")
	}
}

func TestSmallImage_ActionURLPresence(t *testing.T) {
	withURL := templates.SmallImage(&content.CardContent{ActionURL: "https://x"}, templates.Options{})
	main := withURL.Children[0]
	if !main.Actionable {
		t.Error("expected main content view to be actionable")
	}
	if main.ActionURL != "https://x" {
		t.Errorf("expected actionUrl copied, got %q", main.ActionURL)
	}

	withoutURL := templates.SmallImage(&content.CardContent{}, templates.Options{})
	main = withoutURL.Children[0]
	if !main.Actionable {
		t.Error("expected main content view to stay actionable without a URL")
	}
	if main.ActionURL != "" {
		t.Errorf("expected empty actionUrl, got %q", main.ActionURL)
	}
}

func TestSmallImage_HeightInjection(t *testing.T) {
	root := templates.SmallImage(&content.CardContent{}, templates.Options{MaxHeight: 140})

	if root.Style["maxHeight"] != 140.0 {
		t.Errorf("expected card maxHeight 140, got %v", root.Style["maxHeight"])
	}

	// An explicit caller override for the same property still wins.
	overridden := templates.SmallImage(&content.CardContent{}, templates.Options{
		MaxHeight: 140,
		Styles:    styles.StyleSheet{styles.SlotCard: {"maxHeight": 300}},
	})
	if overridden.Style["maxHeight"] != 300 {
		t.Errorf("expected caller maxHeight 300 to win, got %v", overridden.Style["maxHeight"])
	}
}

func TestSmallImage_Deterministic(t *testing.T) {
	data := &content.CardContent{
		Title:      &content.TextBlock{Content: "T"},
		Body:       &content.TextBlock{Content: "B"},
		Image:      &content.ImageAsset{URL: "https://x/img.jpg", DarkURL: "https://x/dark.jpg"},
		Buttons:    []content.ButtonData{{InteractID: "b1", Text: content.TextBlock{Content: "Go"}}},
		DismissBtn: &content.DismissButton{Style: "circle"},
		ActionURL:  "https://x",
	}

	first := templates.SmallImage(data, templates.Options{MaxHeight: 120})
	second := templates.SmallImage(data, templates.Options{MaxHeight: 120})

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical inputs to produce deep-equal trees")
	}
	if first == second {
		t.Error("expected each conversion to build a fresh tree")
	}
}

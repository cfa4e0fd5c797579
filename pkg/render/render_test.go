package render_test

import (
	"errors"
	"testing"

	cardkiterrors "github.com/go-cardkit/cardkit/pkg/errors"

	"github.com/go-cardkit/cardkit/pkg/cardtest"
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/render"
	"github.com/go-cardkit/cardkit/pkg/styles"
	"github.com/go-cardkit/cardkit/pkg/templates"
	"github.com/go-cardkit/cardkit/pkg/theme"
	"github.com/go-cardkit/cardkit/pkg/views"
)

type eventRecord struct {
	event      string
	interactID string
}

type recorder struct {
	events []eventRecord
	opened []string
	fail   error
}

func (r *recorder) onEvent(event, interactID string) {
	r.events = append(r.events, eventRecord{event, interactID})
}

func (r *recorder) open(url string) error {
	r.opened = append(r.opened, url)
	return r.fail
}

type captureHandler struct {
	errs   []*cardkiterrors.CardKitError
	panics []*cardkiterrors.PanicError
}

func (h *captureHandler) HandleError(e *cardkiterrors.CardKitError) { h.errs = append(h.errs, e) }
func (h *captureHandler) HandlePanic(e *cardkiterrors.PanicError)   { h.panics = append(h.panics, e) }

func TestRender_NilAndUnknownNodes(t *testing.T) {
	if v := render.Render(nil, render.Options{}); v != nil {
		t.Error("expected nil for nil node")
	}
	if v := render.Render(&component.Component{Type: component.Type(99)}, render.Options{}); v != nil {
		t.Error("expected nil for unrecognized node type")
	}
}

func TestRender_ButtonTapEmitsEventAndOpensURL(t *testing.T) {
	rec := &recorder{}
	data := &content.CardContent{
		Title: &content.TextBlock{Content: "Sale"},
		Buttons: []content.ButtonData{
			{InteractID: "btn-1", ActionURL: "https://x/deal", Text: content.TextBlock{Content: "Shop"}},
		},
	}
	tree := templates.SmallImage(data, templates.Options{})

	view := render.Render(tree, render.Options{OnEvent: rec.onEvent, Opener: rec.open})

	label, ok := cardtest.FindLabel(view, "Shop")
	if !ok {
		t.Fatal("button label not rendered")
	}
	if !cardtest.Tap(label) {
		t.Fatal("button label has no press handler")
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(rec.events))
	}
	if rec.events[0] != (eventRecord{component.EventClickButton, "btn-1"}) {
		t.Errorf("unexpected event %+v", rec.events[0])
	}
	if len(rec.opened) != 1 || rec.opened[0] != "https://x/deal" {
		t.Errorf("expected one url open of the action url, got %v", rec.opened)
	}
}

func TestRender_ButtonEventGating(t *testing.T) {
	// No interact id: the press still opens the url but emits nothing.
	rec := &recorder{}
	btn := &component.Component{Type: component.TypeButton, Content: "Go", ActionURL: "https://x/go"}
	view := render.Render(btn, render.Options{OnEvent: rec.onEvent, Opener: rec.open})
	if !cardtest.Tap(view) {
		t.Fatal("button has no press handler")
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no events without an interact id, got %v", rec.events)
	}
	if len(rec.opened) != 1 {
		t.Errorf("expected url open to proceed, got %v", rec.opened)
	}

	// No callback: the press must not panic and still opens the url.
	rec2 := &recorder{}
	withID := &component.Component{Type: component.TypeButton, Content: "Go", InteractID: "b", ActionURL: "https://x/go"}
	view = render.Render(withID, render.Options{Opener: rec2.open})
	if !cardtest.Tap(view) {
		t.Fatal("button has no press handler")
	}
	if len(rec2.opened) != 1 {
		t.Errorf("expected url open without a callback, got %v", rec2.opened)
	}
}

func TestRender_DarkSchemeURLFallback(t *testing.T) {
	node := &component.Component{
		Type:    component.TypeImage,
		URL:     "https://x/light.png",
		DarkURL: "https://x/dark.png",
	}

	light := render.Render(node, render.Options{Scheme: theme.BrightnessLight})
	if imgs := cardtest.FindImages(light); len(imgs) != 1 || imgs[0].URL != "https://x/light.png" {
		t.Errorf("light scheme: expected light url, got %v", imgs)
	}

	dark := render.Render(node, render.Options{Scheme: theme.BrightnessDark})
	if imgs := cardtest.FindImages(dark); len(imgs) != 1 || imgs[0].URL != "https://x/dark.png" {
		t.Errorf("dark scheme: expected dark url, got %v", imgs)
	}

	// Dark scheme without a dark asset keeps the light url.
	noDark := &component.Component{Type: component.TypeImage, URL: "https://x/light.png"}
	fallback := render.Render(noDark, render.Options{Scheme: theme.BrightnessDark})
	if imgs := cardtest.FindImages(fallback); len(imgs) != 1 || imgs[0].URL != "https://x/light.png" {
		t.Errorf("dark scheme fallback: expected light url, got %v", imgs)
	}
}

func TestRender_DismissSuppressedStylesRenderNil(t *testing.T) {
	for _, style := range []component.DismissStyle{"", component.DismissNone} {
		node := &component.Component{
			Type:        component.TypeDismissButton,
			DismissType: style,
			InteractID:  component.DismissButtonInteractID,
			Style:       styles.Style{"position": "absolute"},
		}
		if v := render.Render(node, render.Options{}); v != nil {
			t.Errorf("dismiss style %q: expected nil view, got %T", style, v)
		}
	}
}

func TestRender_DismissTapEmitsDismiss(t *testing.T) {
	rec := &recorder{}
	node := &component.Component{
		Type:        component.TypeDismissButton,
		DismissType: component.DismissCircle,
		InteractID:  component.DismissButtonInteractID,
	}

	view := render.Render(node, render.Options{OnEvent: rec.onEvent})

	if !cardtest.TapFirstPressable(view) {
		t.Fatal("dismiss view has no press handler")
	}
	if len(rec.events) != 1 || rec.events[0] != (eventRecord{component.EventDismiss, component.DismissButtonInteractID}) {
		t.Errorf("unexpected events %v", rec.events)
	}
	if len(rec.opened) != 0 {
		t.Errorf("dismiss must not open urls, got %v", rec.opened)
	}
}

func TestRender_ActionableViewPress(t *testing.T) {
	rec := &recorder{}
	node := &component.Component{
		Type:       component.TypeView,
		Actionable: true,
		ActionURL:  "https://x/card",
	}

	view := render.Render(node, render.Options{OnEvent: rec.onEvent, Opener: rec.open})

	if !cardtest.Tap(view) {
		t.Fatal("actionable view has no press handler")
	}
	if len(rec.events) != 1 || rec.events[0].event != component.EventPress {
		t.Errorf("expected press event, got %v", rec.events)
	}
	if len(rec.opened) != 1 || rec.opened[0] != "https://x/card" {
		t.Errorf("expected card url open, got %v", rec.opened)
	}

	// Actionable without a url gets no press handler at all.
	inert := render.Render(&component.Component{Type: component.TypeView, Actionable: true}, render.Options{})
	if cardtest.Tap(inert) {
		t.Error("expected no press handler without an action url")
	}
}

func TestRender_OpenFailureIsReportedNotThrown(t *testing.T) {
	capture := &captureHandler{}
	cardkiterrors.SetHandler(capture)
	defer cardkiterrors.SetHandler(nil)

	rec := &recorder{fail: errors.New("no handler for scheme")}
	node := &component.Component{Type: component.TypeButton, Content: "Go", InteractID: "b", ActionURL: "bad://x"}
	view := render.Render(node, render.Options{OnEvent: rec.onEvent, Opener: rec.open})

	cardtest.Tap(view)

	if len(rec.events) != 1 {
		t.Errorf("expected event emission to survive the failed open, got %v", rec.events)
	}
	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(capture.errs))
	}
	if capture.errs[0].Kind != cardkiterrors.KindNavigation {
		t.Errorf("expected navigation error kind, got %v", capture.errs[0].Kind)
	}
}

func TestRender_DepthGuard(t *testing.T) {
	capture := &captureHandler{}
	cardkiterrors.SetHandler(capture)
	defer cardkiterrors.SetHandler(nil)

	// Build a chain deeper than the limit.
	leaf := &component.Component{Type: component.TypeText, Content: "deep"}
	node := leaf
	for i := 0; i < render.DefaultMaxDepth+4; i++ {
		node = &component.Component{Type: component.TypeView, Children: []*component.Component{node}}
	}

	view := render.Render(node, render.Options{})

	if _, ok := cardtest.FindLabel(view, "deep"); ok {
		t.Error("expected nodes past the depth limit to be dropped")
	}
	if len(capture.errs) == 0 {
		t.Error("expected the depth cutoff to be reported")
	}

	shallow := render.Render(node, render.Options{MaxDepth: render.DefaultMaxDepth + 8})
	if _, ok := cardtest.FindLabel(shallow, "deep"); !ok {
		t.Error("expected a raised depth limit to reach the leaf")
	}
}

func TestRender_TextStyling(t *testing.T) {
	th := theme.DefaultLightTheme()
	cardTheme := th.ContentCardThemeOf()

	title := render.Render(&component.Component{Type: component.TypeTitle, Content: "T"}, render.Options{Theme: th})
	label, ok := cardtest.FindLabel(title, "T")
	if !ok {
		t.Fatal("title label not rendered")
	}
	if label.TextColor != cardTheme.TitleColor {
		t.Errorf("title color mismatch: got %v", label.TextColor)
	}
	if label.MaxLines != 1 || !label.FitToSize {
		t.Errorf("unexpected title label defaults: %+v", label)
	}

	body := render.Render(&component.Component{
		Type:    component.TypeBody,
		Content: "B",
		Style:   styles.Style{"numberOfLines": 3, "adjustsFontSizeToFit": false},
	}, render.Options{Theme: th})
	label, ok = cardtest.FindLabel(body, "B")
	if !ok {
		t.Fatal("body label not rendered")
	}
	if label.TextColor != cardTheme.BodyColor {
		t.Errorf("body color mismatch: got %v", label.TextColor)
	}
	if label.MaxLines != 3 || label.FitToSize {
		t.Errorf("style overrides not applied: %+v", label)
	}
}

func TestRender_SkipsNilChildren(t *testing.T) {
	node := &component.Component{
		Type: component.TypeView,
		Children: []*component.Component{
			nil,
			{Type: component.TypeText, Content: "kept"},
			{Type: component.TypeDismissButton, DismissType: component.DismissNone},
		},
	}

	view := render.Render(node, render.Options{})

	count := 0
	cardtest.WalkViews(view, func(v views.View) bool {
		count++
		return true
	})
	if count != 2 {
		t.Errorf("expected root box plus one label, got %d views", count)
	}
}

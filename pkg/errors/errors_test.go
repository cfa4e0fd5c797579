package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-cardkit/cardkit/pkg/errors"
)

type captureHandler struct {
	errs   []*errors.CardKitError
	panics []*errors.PanicError
}

func (h *captureHandler) HandleError(e *errors.CardKitError) { h.errs = append(h.errs, e) }
func (h *captureHandler) HandlePanic(e *errors.PanicError)   { h.panics = append(h.panics, e) }

func TestCardKitError_Format(t *testing.T) {
	underlying := stderrors.New("boom")
	err := &errors.CardKitError{
		Op:      "messaging.Track",
		Kind:    errors.KindPlatform,
		Channel: "cardkit/messaging",
		Err:     underlying,
	}

	msg := err.Error()
	for _, part := range []string{"messaging.Track", "platform", "cardkit/messaging", "boom"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error string missing %q: %s", part, msg)
		}
	}
	if !stderrors.Is(err, underlying) {
		t.Error("expected Unwrap to expose the underlying error")
	}

	noChannel := &errors.CardKitError{Op: "render.openURL", Kind: errors.KindNavigation, Err: underlying}
	if strings.Contains(noChannel.Error(), "channel=") {
		t.Errorf("unexpected channel segment: %s", noChannel.Error())
	}
}

func TestErrorKindStrings(t *testing.T) {
	cases := map[errors.ErrorKind]string{
		errors.KindUnknown:    "unknown",
		errors.KindPlatform:   "platform",
		errors.KindParsing:    "parsing",
		errors.KindTemplate:   "template",
		errors.KindRender:     "render",
		errors.KindNavigation: "navigation",
		errors.KindMedia:      "media",
		errors.KindPanic:      "panic",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("kind %d: expected %q, got %q", int(kind), want, kind.String())
		}
	}
}

func TestReport_SetsTimestampAndRoutes(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	errors.Report(&errors.CardKitError{Op: "op", Kind: errors.KindParsing, Err: stderrors.New("x")})
	errors.Report(nil)

	if len(capture.errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(capture.errs))
	}
	if capture.errs[0].Timestamp.IsZero() {
		t.Error("expected timestamp filled in")
	}
}

func TestRecover_ReportsPanic(t *testing.T) {
	capture := &captureHandler{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	func() {
		defer errors.Recover("test.op")
		panic("kaboom")
	}()

	if len(capture.panics) != 1 {
		t.Fatalf("expected 1 recovered panic, got %d", len(capture.panics))
	}
	p := capture.panics[0]
	if p.Op != "test.op" || p.Value != "kaboom" {
		t.Errorf("panic fields mismatch: %+v", p)
	}
	if !strings.Contains(p.Error(), "test.op") {
		t.Errorf("panic message missing op: %s", p.Error())
	}
}

func TestParseError_Format(t *testing.T) {
	err := &errors.ParseError{Channel: "cardkit/views/events", DataType: "view event", Got: 42}
	msg := err.Error()
	if !strings.Contains(msg, "view event") || !strings.Contains(msg, "cardkit/views/events") || !strings.Contains(msg, "int") {
		t.Errorf("unexpected parse error message: %s", msg)
	}
}

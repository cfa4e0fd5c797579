package platform_test

import (
	"errors"
	"testing"

	"github.com/go-cardkit/cardkit/pkg/cardtest"
	"github.com/go-cardkit/cardkit/pkg/platform"
)

func TestInvoke_WithoutBridge(t *testing.T) {
	platform.ResetForTest()
	t.Cleanup(platform.ResetForTest)

	ch := platform.NewMethodChannel("test/no-bridge")
	if _, err := ch.Invoke("anything", nil); !errors.Is(err, platform.ErrPlatformUnavailable) {
		t.Errorf("expected platform-unavailable error, got %v", err)
	}
}

func TestInvoke_RoundTrip(t *testing.T) {
	bridge := cardtest.NewRecordingBridge()
	bridge.Install(t.Cleanup)
	bridge.Respond("test/rt", "echo", map[string]any{"ok": true})

	ch := platform.NewMethodChannel("test/rt")
	result, err := ch.Invoke("echo", map[string]any{"n": 7})
	if err != nil {
		t.Fatalf("invoke failed: %v", err)
	}
	m, _ := result.(map[string]any)
	if ok, _ := m["ok"].(bool); !ok {
		t.Errorf("unexpected result: %v", result)
	}

	calls := bridge.CallsTo("test/rt", "echo")
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	args, _ := calls[0].Args.(map[string]any)
	if n, _ := args["n"].(float64); n != 7 {
		t.Errorf("args not round-tripped: %v", calls[0].Args)
	}
}

func TestHandleMethodCall(t *testing.T) {
	platform.ResetForTest()
	t.Cleanup(platform.ResetForTest)

	ch := platform.NewMethodChannel("test/incoming")
	ch.SetHandler(func(method string, args any) (any, error) {
		if method != "ping" {
			return nil, platform.ErrMethodNotFound
		}
		m, _ := args.(map[string]any)
		return map[string]any{"pong": m["seq"]}, nil
	})

	payload, _ := platform.DefaultCodec.Encode(map[string]any{"seq": 3})
	resultData, err := platform.HandleMethodCall("test/incoming", "ping", payload)
	if err != nil {
		t.Fatalf("handle call failed: %v", err)
	}
	result, _ := platform.DefaultCodec.Decode(resultData)
	m, _ := result.(map[string]any)
	if pong, _ := m["pong"].(float64); pong != 3 {
		t.Errorf("unexpected result: %v", result)
	}

	if _, err := platform.HandleMethodCall("test/incoming", "other", nil); !errors.Is(err, platform.ErrMethodNotFound) {
		t.Errorf("expected method-not-found, got %v", err)
	}
	if _, err := platform.HandleMethodCall("test/missing-channel", "ping", nil); !errors.Is(err, platform.ErrChannelNotFound) {
		t.Errorf("expected channel-not-found, got %v", err)
	}
}

func TestEventChannel_SubscribeAndCancel(t *testing.T) {
	bridge := cardtest.NewRecordingBridge()
	bridge.Install(t.Cleanup)

	ch := platform.NewEventChannel("test/events")
	var got []any
	sub := ch.Listen(platform.EventHandler{
		OnEvent: func(data any) { got = append(got, data) },
	})

	payload, _ := platform.DefaultCodec.Encode(map[string]any{"k": "v"})
	if err := platform.HandleEvent("test/events", payload); err != nil {
		t.Fatalf("handle event failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}

	sub.Cancel()
	if !sub.IsCanceled() {
		t.Error("expected subscription canceled")
	}
	if err := platform.HandleEvent("test/events", payload); err != nil {
		t.Fatalf("handle event failed: %v", err)
	}
	if len(got) != 1 {
		t.Error("canceled subscription must not receive events")
	}
}

func TestEventChannel_ErrorAndDone(t *testing.T) {
	cardtest.NewRecordingBridge().Install(t.Cleanup)

	ch := platform.NewEventChannel("test/events-lifecycle")
	var errs []error
	done := false
	sub := ch.Listen(platform.EventHandler{
		OnError: func(err error) { errs = append(errs, err) },
		OnDone:  func() { done = true },
	})

	if err := platform.HandleEventError("test/events-lifecycle", "E_NATIVE", "stream broke"); err != nil {
		t.Fatalf("handle event error failed: %v", err)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	var chErr *platform.ChannelError
	if !errors.As(errs[0], &chErr) || chErr.Code != "E_NATIVE" {
		t.Errorf("unexpected error: %v", errs[0])
	}

	if err := platform.HandleEventDone("test/events-lifecycle"); err != nil {
		t.Fatalf("handle done failed: %v", err)
	}
	if !done {
		t.Error("expected done callback")
	}
	if !sub.IsCanceled() {
		t.Error("expected subscription canceled by done")
	}
}

func TestHandleEvent_UnregisteredChannel(t *testing.T) {
	platform.ResetForTest()
	t.Cleanup(platform.ResetForTest)

	err := platform.HandleEvent("test/never-registered", nil)
	if !errors.Is(err, platform.ErrChannelNotRegistered) {
		t.Errorf("expected not-registered error, got %v", err)
	}
}

func TestDispatch(t *testing.T) {
	platform.ResetForTest()
	t.Cleanup(platform.ResetForTest)

	if platform.Dispatch(func() {}) {
		t.Error("dispatch must fail without a registered dispatcher")
	}

	ran := false
	platform.RegisterDispatch(func(cb func()) { cb() })
	if !platform.Dispatch(func() { ran = true }) {
		t.Error("dispatch must succeed with a dispatcher")
	}
	if !ran {
		t.Error("callback did not run")
	}
	if platform.Dispatch(nil) {
		t.Error("nil callback must not dispatch")
	}
}

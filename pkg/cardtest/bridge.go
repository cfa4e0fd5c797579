package cardtest

import (
	"sync"

	"github.com/go-cardkit/cardkit/pkg/platform"
)

// Call records one method invocation that reached the recording bridge.
type Call struct {
	Channel string
	Method  string
	Args    any
}

// RecordingBridge is a NativeBridge that records every method call and
// answers from a configurable response table. Install it with
// [platform.SetNativeBridge] and reset with [platform.ResetForTest].
type RecordingBridge struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]any
	errs      map[string]error
}

// NewRecordingBridge creates an empty recording bridge.
func NewRecordingBridge() *RecordingBridge {
	return &RecordingBridge{
		responses: make(map[string]any),
		errs:      make(map[string]error),
	}
}

// Respond configures the value returned for a channel/method pair.
func (b *RecordingBridge) Respond(channel, method string, result any) {
	b.mu.Lock()
	b.responses[channel+"#"+method] = result
	b.mu.Unlock()
}

// Fail configures an error returned for a channel/method pair.
func (b *RecordingBridge) Fail(channel, method string, err error) {
	b.mu.Lock()
	b.errs[channel+"#"+method] = err
	b.mu.Unlock()
}

// Calls returns a copy of the recorded calls.
func (b *RecordingBridge) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallsTo returns the recorded calls for one channel/method pair.
func (b *RecordingBridge) CallsTo(channel, method string) []Call {
	var out []Call
	for _, call := range b.Calls() {
		if call.Channel == channel && call.Method == method {
			out = append(out, call)
		}
	}
	return out
}

// InvokeMethod implements platform.NativeBridge.
func (b *RecordingBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	decoded, err := platform.DefaultCodec.Decode(args)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.calls = append(b.calls, Call{Channel: channel, Method: method, Args: decoded})
	failure := b.errs[channel+"#"+method]
	response := b.responses[channel+"#"+method]
	b.mu.Unlock()

	if failure != nil {
		return nil, failure
	}
	return platform.DefaultCodec.Encode(response)
}

// StartEventStream implements platform.NativeBridge.
func (b *RecordingBridge) StartEventStream(channel string) error { return nil }

// StopEventStream implements platform.NativeBridge.
func (b *RecordingBridge) StopEventStream(channel string) error { return nil }

// Install sets the bridge as the native bridge with a synchronous
// dispatcher and registers teardown via cleanup (usually t.Cleanup).
func (b *RecordingBridge) Install(cleanup func(func())) {
	platform.SetNativeBridge(b)
	platform.RegisterDispatch(func(cb func()) { cb() })
	cleanup(platform.ResetForTest)
}

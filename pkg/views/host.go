package views

import (
	"sync"
	"sync/atomic"

	"github.com/go-cardkit/cardkit/pkg/errors"
	"github.com/go-cardkit/cardkit/pkg/platform"
)

// Host materializes descriptor trees into native views and routes native
// press events back to the Go-side handlers.
type Host struct {
	channel *platform.MethodChannel
	events  *platform.EventChannel
	sub     *platform.Subscription

	mu       sync.Mutex
	handlers map[int64]func()
	mounts   map[int64][]int64
	nextID   atomic.Int64
}

var (
	defaultHost     *Host
	defaultHostOnce sync.Once
)

// DefaultHost returns the process-wide host backed by the cardkit/views
// channels.
func DefaultHost() *Host {
	defaultHostOnce.Do(func() {
		defaultHost = NewHost()
	})
	return defaultHost
}

// NewHost creates a host with its own channel wiring.
func NewHost() *Host {
	h := &Host{
		channel:  platform.NewMethodChannel("cardkit/views"),
		events:   platform.NewEventChannel("cardkit/views/events"),
		handlers: make(map[int64]func()),
		mounts:   make(map[int64][]int64),
	}
	h.sub = h.events.Listen(platform.EventHandler{
		OnEvent: h.handleEvent,
	})
	return h
}

// Mount materializes the tree and returns the root view ID for later
// unmounting.
func (h *Host) Mount(root View) (int64, error) {
	if root == nil {
		return 0, platform.ErrInvalidArguments
	}

	var ids []int64
	payload := h.register(root, &ids)

	rootID := ids[0]
	h.mu.Lock()
	h.mounts[rootID] = ids
	h.mu.Unlock()

	if _, err := h.channel.Invoke("mount", payload); err != nil {
		h.release(rootID)
		return 0, err
	}
	return rootID, nil
}

// Unmount tears down a mounted tree and releases its press handlers.
func (h *Host) Unmount(rootID int64) error {
	h.release(rootID)
	_, err := h.channel.Invoke("unmount", map[string]any{"viewId": rootID})
	return err
}

// register assigns IDs, records press handlers, and builds the recursive
// creation payload.
func (h *Host) register(v View, ids *[]int64) map[string]any {
	id := h.nextID.Add(1)
	*ids = append(*ids, id)

	if handler := pressHandlerOf(v); handler != nil {
		h.mu.Lock()
		h.handlers[id] = handler
		h.mu.Unlock()
	}

	payload := v.describe()
	payload["viewId"] = id
	payload["viewType"] = v.Kind()

	children := childrenOf(v)
	if len(children) > 0 {
		encoded := make([]map[string]any, 0, len(children))
		for _, child := range children {
			if child == nil {
				continue
			}
			encoded = append(encoded, h.register(child, ids))
		}
		payload["children"] = encoded
	}
	return payload
}

func (h *Host) release(rootID int64) {
	h.mu.Lock()
	for _, id := range h.mounts[rootID] {
		delete(h.handlers, id)
	}
	delete(h.mounts, rootID)
	h.mu.Unlock()
}

// handleEvent routes a native press event to the registered handler. The
// callback runs on the UI thread via Dispatch when a dispatcher is
// registered, synchronously otherwise.
func (h *Host) handleEvent(data any) {
	m, ok := data.(map[string]any)
	if !ok {
		errors.Report(&errors.CardKitError{
			Op:      "views.handleEvent",
			Kind:    errors.KindParsing,
			Channel: h.events.Name(),
			Err:     &errors.ParseError{Channel: h.events.Name(), DataType: "view event", Got: data},
		})
		return
	}
	if m["type"] != "press" {
		return
	}
	id, ok := toViewID(m["viewId"])
	if !ok {
		return
	}

	h.mu.Lock()
	handler := h.handlers[id]
	h.mu.Unlock()
	if handler == nil {
		return
	}
	if !platform.Dispatch(handler) {
		handler()
	}
}

func toViewID(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

package messaging

import "sync"

// CardRegistry maps content-card identifiers to the proposition items they
// originated from, so card views can track events without owning any
// proposition plumbing. Keys are caller-chosen (typically the proposition
// item ID).
type CardRegistry struct {
	mu    sync.RWMutex
	items map[string]*PropositionItem
}

var defaultRegistry = NewCardRegistry()

// DefaultCardRegistry returns the process-wide registry.
func DefaultCardRegistry() *CardRegistry {
	return defaultRegistry
}

// NewCardRegistry creates an empty registry.
func NewCardRegistry() *CardRegistry {
	return &CardRegistry{items: make(map[string]*PropositionItem)}
}

// Register associates a card ID with its originating proposition item.
func (r *CardRegistry) Register(cardID string, item *PropositionItem) {
	if cardID == "" || item == nil {
		return
	}
	r.mu.Lock()
	r.items[cardID] = item
	r.mu.Unlock()
}

// ItemFor returns the proposition item for a card ID, or nil when unknown.
func (r *CardRegistry) ItemFor(cardID string) *PropositionItem {
	r.mu.RLock()
	item := r.items[cardID]
	r.mu.RUnlock()
	return item
}

// Remove drops a card from the registry (after dismissal).
func (r *CardRegistry) Remove(cardID string) {
	r.mu.Lock()
	delete(r.items, cardID)
	r.mu.Unlock()
}

// Clear empties the registry.
func (r *CardRegistry) Clear() {
	r.mu.Lock()
	r.items = make(map[string]*PropositionItem)
	r.mu.Unlock()
}

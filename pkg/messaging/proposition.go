package messaging

import (
	"fmt"

	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/mitchellh/mapstructure"
)

// SchemaContentCard identifies proposition items carrying content-card data.
const SchemaContentCard = "https://ns.cardkit.io/personalization/content-card"

// Proposition is a server-delivered grouping of personalization items tied
// to a surface.
type Proposition struct {
	// ID is the unique proposition identifier.
	ID string `mapstructure:"id"`
	// Scope is the surface the proposition was delivered for.
	Scope string `mapstructure:"scope"`
	// Items are the payload items, in delivery order.
	Items []*PropositionItem `mapstructure:"items"`

	messaging *Messaging
}

// PropositionItem is one payload item inside a proposition.
type PropositionItem struct {
	// ID is the unique item identifier.
	ID string `mapstructure:"id"`
	// Schema identifies the payload format.
	Schema string `mapstructure:"schema"`
	// Data is the raw schema payload.
	Data map[string]any `mapstructure:"data"`

	proposition *Proposition
}

// ContentCardItems returns the proposition's items carrying content-card
// payloads, in delivery order.
func (p *Proposition) ContentCardItems() []*PropositionItem {
	var items []*PropositionItem
	for _, item := range p.Items {
		if item.Schema == SchemaContentCard {
			items = append(items, item)
		}
	}
	return items
}

// ContentCard decodes the item payload as card content. Fails for items of
// a different schema.
func (pi *PropositionItem) ContentCard() (*content.CardContent, error) {
	if pi.Schema != SchemaContentCard {
		return nil, fmt.Errorf("proposition item %s: schema %q is not a content card", pi.ID, pi.Schema)
	}
	return content.Decode(pi.Data)
}

// Track records an edge event against this item through the owning
// proposition's Messaging handle.
func (pi *PropositionItem) Track(interaction string, eventType EventType, tokens []string) error {
	if pi.proposition == nil || pi.proposition.messaging == nil {
		return fmt.Errorf("proposition item %s: not attached to a messaging instance", pi.ID)
	}
	return pi.proposition.messaging.Track(pi.proposition.ID, pi.ID, interaction, eventType, tokens)
}

// cardImageURLs collects the distinct light and dark image URLs across the
// propositions' content-card items, for warming the image cache. Items that
// fail to decode are skipped; the consumer will surface the error when it
// decodes them itself.
func cardImageURLs(props []*Proposition) []string {
	var urls []string
	seen := make(map[string]bool)
	add := func(u string) {
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}
	for _, p := range props {
		for _, item := range p.ContentCardItems() {
			card, err := item.ContentCard()
			if err != nil || card.Image == nil {
				continue
			}
			add(card.Image.URL)
			add(card.Image.DarkURL)
		}
	}
	return urls
}

// decodePropositions converts the raw channel result into propositions and
// wires up item back-references.
func decodePropositions(raw any) ([]*Proposition, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("decode propositions: expected list, got %T", raw)
	}
	props := make([]*Proposition, 0, len(list))
	for i, entry := range list {
		var p Proposition
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &p,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("decode propositions: %w", err)
		}
		if err := decoder.Decode(entry); err != nil {
			return nil, fmt.Errorf("decode proposition %d: %w", i, err)
		}
		for _, item := range p.Items {
			item.proposition = &p
		}
		props = append(props, &p)
	}
	return props, nil
}

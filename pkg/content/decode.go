package content

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a raw bridge payload (as produced by the JSON codec) into
// CardContent. Numeric looseness in the payload is tolerated; unknown keys
// are ignored so newer native extensions stay compatible.
func Decode(raw map[string]any) (*CardContent, error) {
	if raw == nil {
		return nil, fmt.Errorf("decode card content: nil payload")
	}
	var card CardContent
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &card,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("decode card content: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode card content: %w", err)
	}
	return &card, nil
}

// Package styles holds the named style slots used by the template converters
// and the shallow merge that layers caller overrides on top of per-template
// defaults. Style property values are opaque pass-through data; nothing here
// validates them.
package styles

// Slot names a styleable region of a card. The converter default tables are
// keyed by slot, and caller overrides address the same names.
type Slot string

const (
	SlotCard             Slot = "card"
	SlotContainer        Slot = "container"
	SlotImageContainer   Slot = "imageContainer"
	SlotImage            Slot = "image"
	SlotContentContainer Slot = "contentContainer"
	SlotTextContent      Slot = "textContent"
	SlotTitle            Slot = "title"
	SlotBody             Slot = "body"
	SlotButtonContainer  Slot = "buttonContainer"
	SlotButton           Slot = "button"
	SlotDismissButton    Slot = "dismissButton"
)

// Style is a bag of named style properties for one slot.
type Style map[string]any

// Clone returns an independent copy of the style.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// StyleSheet maps slot names to styles.
type StyleSheet map[Slot]Style

// Merge layers overrides on top of defaults, slot by slot. For every slot
// present in defaults the result holds the default properties with override
// properties replacing them last-writer-wins; slots missing from overrides
// pass through unchanged. Nested values are replaced wholesale, not deep
// merged. A nil overrides sheet returns defaults as-is.
//
// The inputs are never mutated; merged slots are fresh maps.
func Merge(defaults StyleSheet, overrides StyleSheet) StyleSheet {
	if overrides == nil {
		return defaults
	}
	merged := make(StyleSheet, len(defaults))
	for slot, base := range defaults {
		over := overrides[slot]
		if over == nil {
			merged[slot] = base.Clone()
			continue
		}
		out := make(Style, len(base)+len(over))
		for k, v := range base {
			out[k] = v
		}
		for k, v := range over {
			out[k] = v
		}
		merged[slot] = out
	}
	return merged
}

// WithBase returns a copy of the sheet with a property layered underneath one
// slot: existing properties of the slot keep precedence over the injected
// value. Converters use this to inject computed values (such as a card max
// height) into the override sheet before merging, so explicit caller
// overrides for the same property still win.
func (s StyleSheet) WithBase(slot Slot, key string, value any) StyleSheet {
	out := make(StyleSheet, len(s)+1)
	for name, style := range s {
		out[name] = style
	}
	slotStyle := Style{key: value}
	for k, v := range s[slot] {
		slotStyle[k] = v
	}
	out[slot] = slotStyle
	return out
}

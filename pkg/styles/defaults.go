package styles

// Per-template default style tables. Every slot a template's converter emits
// appears in its table so caller overrides always have a merge target.

// SmallImageDefaults returns the default style sheet for small-image cards.
func SmallImageDefaults() StyleSheet {
	return StyleSheet{
		SlotCard: {
			"margin":          15,
			"borderRadius":    8,
			"shadowOpacity":   0.15,
			"backgroundColor": "surface",
		},
		SlotContainer: {
			"flexDirection": "row",
			"padding":       8,
		},
		SlotImageContainer: {
			"width":        100,
			"aspectRatio":  1,
			"borderRadius": 8,
			"overflow":     "hidden",
		},
		SlotImage: {
			"resizeMode": "cover",
			"flex":       1,
		},
		SlotContentContainer: {
			"flex":        1,
			"paddingLeft": 12,
		},
		SlotTextContent: {
			"flexDirection": "column",
		},
		SlotTitle: {
			"fontSize":   16,
			"fontWeight": "bold",
		},
		SlotBody: {
			"fontSize": 13,
		},
		SlotButtonContainer: {
			"flexDirection": "row",
			"paddingTop":    8,
		},
		SlotButton: {
			"fontSize":     14,
			"paddingRight": 12,
		},
		SlotDismissButton: {
			"position": "absolute",
			"top":      6,
			"right":    6,
		},
	}
}

// LargeImageDefaults returns the default style sheet for large-image cards.
func LargeImageDefaults() StyleSheet {
	return StyleSheet{
		SlotCard: {
			"margin":          15,
			"borderRadius":    8,
			"shadowOpacity":   0.15,
			"backgroundColor": "surface",
		},
		SlotContainer: {
			"flexDirection": "column",
		},
		SlotImageContainer: {
			"width":       "100%",
			"aspectRatio": 1.78,
			"overflow":    "hidden",
		},
		SlotImage: {
			"resizeMode": "cover",
			"flex":       1,
		},
		SlotContentContainer: {
			"padding": 12,
		},
		SlotTextContent: {
			"flexDirection": "column",
		},
		SlotTitle: {
			"fontSize":   18,
			"fontWeight": "bold",
		},
		SlotBody: {
			"fontSize": 14,
		},
		SlotButtonContainer: {
			"flexDirection": "row",
			"paddingTop":    10,
		},
		SlotButton: {
			"fontSize":     15,
			"paddingRight": 16,
		},
		SlotDismissButton: {
			"position": "absolute",
			"top":      8,
			"right":    8,
		},
	}
}

// ImageOnlyDefaults returns the default style sheet for image-only cards.
func ImageOnlyDefaults() StyleSheet {
	return StyleSheet{
		SlotCard: {
			"margin":          15,
			"borderRadius":    8,
			"shadowOpacity":   0.15,
			"backgroundColor": "surface",
		},
		SlotContainer: {
			"flexDirection": "column",
		},
		SlotImageContainer: {
			"width":       "100%",
			"aspectRatio": 1.78,
			"overflow":    "hidden",
		},
		SlotImage: {
			"resizeMode": "cover",
			"flex":       1,
		},
		SlotDismissButton: {
			"position": "absolute",
			"top":      8,
			"right":    8,
		},
	}
}

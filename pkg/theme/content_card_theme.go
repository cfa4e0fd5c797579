package theme

import "github.com/go-cardkit/cardkit/pkg/graphics"

// ContentCardThemeData defines default styling for content-card views.
type ContentCardThemeData struct {
	// CardBackgroundColor is the card surface color.
	CardBackgroundColor graphics.Color
	// TitleColor is the title text color.
	TitleColor graphics.Color
	// BodyColor is the body text color.
	BodyColor graphics.Color
	// ButtonTextColor is the button label color.
	ButtonTextColor graphics.Color
	// DismissIconColor is the dismiss control color.
	DismissIconColor graphics.Color
	// ImagePlaceholderColor fills the image area while loading.
	ImagePlaceholderColor graphics.Color
}

// DefaultContentCardTheme returns ContentCardThemeData derived from a ColorScheme.
func DefaultContentCardTheme(colors ColorScheme) ContentCardThemeData {
	return ContentCardThemeData{
		CardBackgroundColor:   colors.Surface,
		TitleColor:            colors.OnSurface,
		BodyColor:             colors.OnSurfaceVariant,
		ButtonTextColor:       colors.Primary,
		DismissIconColor:      colors.OnSurfaceVariant,
		ImagePlaceholderColor: colors.Outline.WithAlpha(0.2),
	}
}

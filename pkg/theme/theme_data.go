// Package theme provides resolved theme data consumed by the content-card
// renderer. The renderer only needs a color palette plus a light/dark flag;
// theming providers themselves live with the host application.
package theme

import "github.com/go-cardkit/cardkit/pkg/graphics"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is the light color scheme.
	BrightnessLight Brightness = iota
	// BrightnessDark is the dark color scheme.
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme defines the color palette used by card rendering.
type ColorScheme struct {
	// Primary is the main brand color.
	Primary graphics.Color
	// OnPrimary is the color for content on top of Primary.
	OnPrimary graphics.Color
	// Background is the scaffold background color.
	Background graphics.Color
	// OnBackground is the color for content on top of Background.
	OnBackground graphics.Color
	// Surface is the color for card surfaces.
	Surface graphics.Color
	// OnSurface is the color for content on top of Surface.
	OnSurface graphics.Color
	// OnSurfaceVariant is the color for secondary content on Surface.
	OnSurfaceVariant graphics.Color
	// Outline is the color for borders and dividers.
	Outline graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x21, 0x96, 0xF3),
		OnPrimary:        graphics.ColorWhite,
		Background:       graphics.ColorWhite,
		OnBackground:     graphics.RGB(0x1C, 0x1B, 0x1F),
		Surface:          graphics.ColorWhite,
		OnSurface:        graphics.RGB(0x1C, 0x1B, 0x1F),
		OnSurfaceVariant: graphics.RGB(0x49, 0x45, 0x4F),
		Outline:          graphics.RGB(0x79, 0x74, 0x7E),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x90, 0xCA, 0xF9),
		OnPrimary:        graphics.RGB(0x00, 0x33, 0x55),
		Background:       graphics.RGB(0x12, 0x12, 0x12),
		OnBackground:     graphics.RGB(0xE6, 0xE1, 0xE5),
		Surface:          graphics.RGB(0x1E, 0x1E, 0x1E),
		OnSurface:        graphics.RGB(0xE6, 0xE1, 0xE5),
		OnSurfaceVariant: graphics.RGB(0xCA, 0xC4, 0xD0),
		Outline:          graphics.RGB(0x93, 0x8F, 0x99),
	}
}

// ThemeData contains the resolved theme configuration handed to the renderer.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// ContentCardTheme is optional; derived from ColorScheme if nil.
	ContentCardTheme *ContentCardThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: LightColorScheme(),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		ColorScheme: DarkColorScheme(),
		Brightness:  BrightnessDark,
	}
}

// ContentCardThemeOf returns the content-card theme, deriving from ColorScheme if not set.
func (t *ThemeData) ContentCardThemeOf() ContentCardThemeData {
	if t.ContentCardTheme != nil {
		return *t.ContentCardTheme
	}
	return DefaultContentCardTheme(t.ColorScheme)
}

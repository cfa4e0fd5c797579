// Package content defines the declarative card data delivered by the
// personalization provider and the decoding of raw bridge payloads into it.
package content

// TextBlock is an optional block of display text.
type TextBlock struct {
	Content string `json:"content" mapstructure:"content"`
}

// ImageAsset describes a card image. An empty URL is treated as "no image".
type ImageAsset struct {
	URL     string `json:"url" mapstructure:"url"`
	DarkURL string `json:"darkUrl,omitempty" mapstructure:"darkUrl"`
	Alt     string `json:"alt,omitempty" mapstructure:"alt"`
}

// ButtonData describes one card button. Order in the slice is render order.
type ButtonData struct {
	InteractID string    `json:"interactId" mapstructure:"interactId"`
	ActionURL  string    `json:"actionUrl,omitempty" mapstructure:"actionUrl"`
	ID         string    `json:"id,omitempty" mapstructure:"id"`
	Text       TextBlock `json:"text" mapstructure:"text"`
}

// DismissButton selects the dismiss control. Style "none" (or an absent
// DismissButton) suppresses the control entirely.
type DismissButton struct {
	Style string `json:"style" mapstructure:"style"`
}

// CardContent is the declarative description of one content card. All fields
// are optional unless a template's contract says otherwise; the image-only
// template requires a non-empty image URL.
type CardContent struct {
	Title      *TextBlock     `json:"title,omitempty" mapstructure:"title"`
	Body       *TextBlock     `json:"body,omitempty" mapstructure:"body"`
	Image      *ImageAsset    `json:"image,omitempty" mapstructure:"image"`
	Buttons    []ButtonData   `json:"buttons,omitempty" mapstructure:"buttons"`
	DismissBtn *DismissButton `json:"dismissBtn,omitempty" mapstructure:"dismissBtn"`
	ActionURL  string         `json:"actionUrl,omitempty" mapstructure:"actionUrl"`
}

// TitleText returns the title content, or "" when absent.
func (c *CardContent) TitleText() string {
	if c == nil || c.Title == nil {
		return ""
	}
	return c.Title.Content
}

// BodyText returns the body content, or "" when absent.
func (c *CardContent) BodyText() string {
	if c == nil || c.Body == nil {
		return ""
	}
	return c.Body.Content
}

// ImageURL returns the image URL, or "" when the image is absent.
func (c *CardContent) ImageURL() string {
	if c == nil || c.Image == nil {
		return ""
	}
	return c.Image.URL
}

// DismissStyle returns the dismiss control style, or "" when absent.
func (c *CardContent) DismissStyle() string {
	if c == nil || c.DismissBtn == nil {
		return ""
	}
	return c.DismissBtn.Style
}

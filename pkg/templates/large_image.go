package templates

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/styles"
)

// largeImageMaxButtons caps the button row of the large-image layout.
const largeImageMaxButtons = 3

// LargeImage converts card content into the large-image layout: a vertical
// card with a full-width hero image above the text block and button row.
// Only the first three buttons of the input are rendered; title and body are
// generic text nodes.
func LargeImage(data *content.CardContent, opts Options) *component.Component {
	sheet := resolveStyles(styles.LargeImageDefaults(), opts)

	textContent := &component.Component{
		Type:  component.TypeView,
		Style: sheet[styles.SlotTextContent],
	}
	if title := textNode(component.TypeText, data.TitleText(), sheet[styles.SlotTitle]); title != nil {
		textContent.Children = append(textContent.Children, title)
	}
	if body := textNode(component.TypeText, data.BodyText(), sheet[styles.SlotBody]); body != nil {
		textContent.Children = append(textContent.Children, body)
	}

	contentContainer := &component.Component{
		Type:     component.TypeView,
		Style:    sheet[styles.SlotContentContainer],
		Children: []*component.Component{textContent},
	}
	var buttons []content.ButtonData
	if data != nil {
		buttons = data.Buttons
	}
	if row := buttonContainer(buttons, sheet, largeImageMaxButtons, nil); row != nil {
		contentContainer.Children = append(contentContainer.Children, row)
	}

	var children []*component.Component
	if img := imageSubtree(imageOf(data), sheet); img != nil {
		children = append(children, img)
	}
	children = append(children, contentContainer)

	main := contentView(data, sheet, children)
	return root(sheet, main, dismissNode(data, sheet))
}

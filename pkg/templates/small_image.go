package templates

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/styles"
)

// SmallImage converts card content into the small-image layout: a horizontal
// card with an optional thumbnail beside the text block and button row.
//
// Distinct from the large-image template, title and body become dedicated
// title/body nodes (the renderer styles them differently), every button from
// the input is rendered, and each button carries the merged button style.
func SmallImage(data *content.CardContent, opts Options) *component.Component {
	sheet := resolveStyles(styles.SmallImageDefaults(), opts)

	textContent := &component.Component{
		Type:  component.TypeView,
		Style: sheet[styles.SlotTextContent],
	}
	if title := textNode(component.TypeTitle, data.TitleText(), sheet[styles.SlotTitle]); title != nil {
		textContent.Children = append(textContent.Children, title)
	}
	if body := textNode(component.TypeBody, data.BodyText(), sheet[styles.SlotBody]); body != nil {
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
	if row := buttonContainer(buttons, sheet, 0, sheet[styles.SlotButton]); row != nil {
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

func imageOf(data *content.CardContent) *content.ImageAsset {
	if data == nil {
		return nil
	}
	return data.Image
}

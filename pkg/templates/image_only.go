package templates

import (
	"github.com/go-cardkit/cardkit/pkg/component"
	"github.com/go-cardkit/cardkit/pkg/content"
	"github.com/go-cardkit/cardkit/pkg/styles"
)

// ImageOnly converts card content into the image-only layout: the card is a
// single image with no text or buttons. The caller contract requires a
// non-empty image URL; when it is empty anyway the image subtree is omitted
// and the card degrades to an empty container rather than failing.
func ImageOnly(data *content.CardContent, opts Options) *component.Component {
	sheet := resolveStyles(styles.ImageOnlyDefaults(), opts)

	var children []*component.Component
	if img := imageSubtree(imageOf(data), sheet); img != nil {
		children = append(children, img)
	}

	main := contentView(data, sheet, children)
	return root(sheet, main, dismissNode(data, sheet))
}

package component

import (
	"fmt"
	"strings"
)

// Walk visits node and every descendant in depth-first, document order.
// Traversal stops entirely when visit returns false.
func Walk(node *Component, visit func(*Component) bool) {
	walk(node, visit)
}

func walk(node *Component, visit func(*Component) bool) bool {
	if node == nil {
		return true
	}
	if !visit(node) {
		return false
	}
	for _, child := range node.Children {
		if !walk(child, visit) {
			return false
		}
	}
	return true
}

// Dump returns an indented, human-readable rendering of the tree, one node
// per line. Used by the preview CLI and handy in test failure output.
func Dump(node *Component) string {
	var sb strings.Builder
	dumpNode(&sb, node, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, node *Component, depth int) {
	if node == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(node.Type.String())

	var attrs []string
	if node.Content != "" {
		attrs = append(attrs, fmt.Sprintf("content=%q", node.Content))
	}
	if node.InteractID != "" {
		attrs = append(attrs, fmt.Sprintf("interactId=%q", node.InteractID))
	}
	if node.ActionURL != "" {
		attrs = append(attrs, fmt.Sprintf("actionUrl=%q", node.ActionURL))
	}
	if node.Actionable {
		attrs = append(attrs, "actionable")
	}
	if node.URL != "" {
		attrs = append(attrs, fmt.Sprintf("url=%q", node.URL))
	}
	if node.DarkURL != "" {
		attrs = append(attrs, fmt.Sprintf("darkUrl=%q", node.DarkURL))
	}
	if node.Type == TypeImage {
		attrs = append(attrs, fmt.Sprintf("alt=%q", node.Alt))
	}
	if node.DismissType != "" {
		attrs = append(attrs, fmt.Sprintf("dismissType=%q", string(node.DismissType)))
	}
	if node.ButtonID != "" {
		attrs = append(attrs, fmt.Sprintf("id=%q", node.ButtonID))
	}
	if len(attrs) > 0 {
		sb.WriteString(" [")
		sb.WriteString(strings.Join(attrs, " "))
		sb.WriteString("]")
	}
	sb.WriteString("\n")

	for _, child := range node.Children {
		dumpNode(sb, child, depth+1)
	}
}

package importer

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// extractNodeBySelector finds a node using a minimal CSS selector: #id,
// .class or a plain tag name. That is all the help center templates need.
func extractNodeBySelector(doc *html.Node, selector string) (*html.Node, error) {
	var match func(*html.Node) bool
	switch {
	case strings.HasPrefix(selector, "#"):
		id := strings.TrimPrefix(selector, "#")
		match = func(n *html.Node) bool { return attrValue(n, "id") == id }
	case strings.HasPrefix(selector, "."):
		class := strings.TrimPrefix(selector, ".")
		match = func(n *html.Node) bool { return strings.Contains(attrValue(n, "class"), class) }
	default:
		match = func(n *html.Node) bool { return n.Data == selector }
	}
	if node := findNode(doc, match); node != nil {
		return node, nil
	}
	return nil, fmt.Errorf("no element matches selector '%s'", selector)
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// extractTitle returns the text of the document's title element.
func extractTitle(doc *html.Node) string {
	node := findNode(doc, func(n *html.Node) bool { return n.Data == "title" })
	if node == nil || node.FirstChild == nil || node.FirstChild.Type != html.TextNode {
		return ""
	}
	return node.FirstChild.Data
}

// extractMeta returns the content attribute of the first meta element with
// the given name.
func extractMeta(doc *html.Node, name string) string {
	node := findNode(doc, func(n *html.Node) bool {
		return n.Data == "meta" && attrValue(n, "name") == name
	})
	if node == nil {
		return ""
	}
	return attrValue(node, "content")
}

// extractMetaKeywords splits the keywords meta tag on commas.
func extractMetaKeywords(doc *html.Node) []string {
	var keywords []string
	for _, keyword := range strings.Split(extractMeta(doc, "keywords"), ",") {
		if trimmed := strings.TrimSpace(keyword); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"metakg/predtree/internal/hierarchy"
)

// treeDataMarker precedes the embedded JSON array in the scraped
// hierarchy page.
const treeDataMarker = "var treeData ="

// ErrNoTreeData indicates the HTML document carries no embedded tree.
var ErrNoTreeData = errors.New("source: no embedded treeData found in HTML document")

// parseHTML locates the script element carrying the treeData array and
// decodes the wrapped tree.
func parseHTML(data []byte) (*hierarchy.Node, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	script := findTreeDataScript(doc)
	if script == "" {
		return nil, ErrNoTreeData
	}

	raw, err := extractArray(script)
	if err != nil {
		return nil, err
	}
	return hierarchy.DecodeDocument([]byte(raw))
}

func findTreeDataScript(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "script" {
		var buf strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				buf.WriteString(c.Data)
			}
		}
		if s := buf.String(); strings.Contains(s, treeDataMarker) {
			return s
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if s := findTreeDataScript(c); s != "" {
			return s
		}
	}
	return ""
}

// extractArray slices the bracket-balanced JSON array that follows the
// marker. Predicate names never contain brackets, so plain bracket counting
// is enough.
func extractArray(script string) (string, error) {
	idx := strings.Index(script, treeDataMarker)
	if idx < 0 {
		return "", ErrNoTreeData
	}
	rest := script[idx+len(treeDataMarker):]

	start := strings.IndexByte(rest, '[')
	if start < 0 {
		return "", ErrNoTreeData
	}
	depth := 0
	for i := start; i < len(rest); i++ {
		switch rest[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return rest[start : i+1], nil
			}
		}
	}
	return "", errors.New("source: unterminated treeData array")
}

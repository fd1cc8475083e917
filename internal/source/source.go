// Package source loads a predicate hierarchy from a raw document. It feeds
// the pure analysis in internal/hierarchy and owns all input I/O.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"metakg/predtree/internal/hierarchy"
)

// Load reads the file at path and decodes the hierarchy it carries.
func Load(path string) (*hierarchy.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse decodes a hierarchy document from r, dispatching on the filename
// extension. HTML documents carry the tree as an embedded
// `var treeData = [...]` script; anything else is a plain JSON document.
func Parse(r io.Reader, filename string) (*hierarchy.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".html", ".htm":
		return parseHTML(data)
	default:
		return hierarchy.DecodeDocument(data)
	}
}

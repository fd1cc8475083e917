package hierarchy

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Node is one predicate in the relation-type hierarchy. Children is nil when
// the source document carried no children field at all; a present-but-empty
// list decodes to a non-nil empty slice. The distinction matters: only nodes
// whose field was present count as "has children" in the metrics.
type Node struct {
	Name     string  `json:"name"`
	Children []*Node `json:"children,omitempty"`
}

// ErrEmptyDocument indicates the wrapping container held no root node.
var ErrEmptyDocument = errors.New("hierarchy: document contains no root node")

// DecodeDocument parses the standard document form: a one-element JSON array
// wrapping the root node. Elements past the first are ignored.
func DecodeDocument(data []byte) (*Node, error) {
	var container []*Node
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("parsing hierarchy document: %w", err)
	}
	if len(container) == 0 || container[0] == nil {
		return nil, ErrEmptyDocument
	}
	return container[0], nil
}

// Package fieldpath models nested validation-error payloads and resolves
// messages by dotted field path (e.g. "schedule.startDateTime").
package fieldpath

import (
	"encoding/json"
	"strings"
)

// Node is one level of a validation-error tree. A node either carries a
// message for its own field or fans out into named child fields, never both
// meaningfully at once; Lookup prefers the deepest match.
type Node struct {
	Message string          `json:"message,omitempty"`
	Fields  map[string]Node `json:"fields,omitempty"`
}

// Decode parses an upstream validation payload of the shape
// {"message": "...", "fields": {"schedule": {"fields": {"startDateTime": {"message": "..."}}}}}.
func Decode(data []byte) (Node, error) {
	var n Node
	if err := json.Unmarshal(data, &n); err != nil {
		return Node{}, err
	}
	return n, nil
}

// Lookup resolves a dotted path against the tree. It returns the message of
// the addressed node and whether the full path existed.
func (n Node) Lookup(path string) (string, bool) {
	if path == "" {
		return n.Message, n.Message != ""
	}
	return n.lookup(strings.Split(path, "."))
}

func (n Node) lookup(segments []string) (string, bool) {
	if len(segments) == 0 {
		return n.Message, n.Message != ""
	}
	child, ok := n.Fields[segments[0]]
	if !ok {
		return "", false
	}
	return child.lookup(segments[1:])
}

// Flatten returns every message in the tree keyed by its dotted path. The
// root message, if any, is keyed by the empty string.
func (n Node) Flatten() map[string]string {
	out := make(map[string]string)
	n.flatten("", out)
	return out
}

func (n Node) flatten(prefix string, out map[string]string) {
	if n.Message != "" {
		out[prefix] = n.Message
	}
	for name, child := range n.Fields {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		child.flatten(path, out)
	}
}

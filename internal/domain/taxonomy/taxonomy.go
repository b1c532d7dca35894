// Package taxonomy models the nested education-structure reference
// data (systems, grades, sectors, languages, subjects) as an explicit
// variant tree. Source data is loosely shaped: a node may be a flat
// list of labels or a keyed sub-mapping depending on the system.
// Derivation code pattern-matches on the node kind instead of probing
// with type assertions, and every accessor degrades to empty on
// missing or mis-shaped data.
package taxonomy

import (
	"encoding/json"
	"sort"
)

// Kind discriminates the two node shapes.
type Kind int

const (
	// KindList is a leaf node holding a flat list of labels.
	KindList Kind = iota
	// KindMap is an inner node keyed by grade or sector.
	KindMap
)

// Node is one level of the taxonomy tree.
type Node struct {
	kind     Kind
	leaves   []string
	children map[string]*Node
}

// NewList creates a leaf node.
func NewList(items ...string) *Node {
	return &Node{kind: KindList, leaves: items}
}

// NewMap creates a keyed inner node.
func NewMap(children map[string]*Node) *Node {
	return &Node{kind: KindMap, children: children}
}

// Kind reports the node shape. A nil node is an empty list.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindList
	}
	return n.kind
}

// Leaves returns the labels of a list node, or nil for map nodes.
func (n *Node) Leaves() []string {
	if n == nil || n.kind != KindList {
		return nil
	}
	return n.leaves
}

// Child returns the sub-node for key, or nil.
func (n *Node) Child(key string) *Node {
	if n == nil || n.kind != KindMap {
		return nil
	}
	return n.children[key]
}

// Keys returns the sorted keys of a map node.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flatten collects every leaf label in the subtree, deduplicated and
// sorted. Used to union sectors across all grades of a system.
func (n *Node) Flatten() []string {
	seen := make(map[string]struct{})
	n.flattenInto(seen)
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (n *Node) flattenInto(seen map[string]struct{}) {
	if n == nil {
		return
	}
	switch n.kind {
	case KindList:
		for _, s := range n.leaves {
			if s != "" {
				seen[s] = struct{}{}
			}
		}
	case KindMap:
		for _, c := range n.children {
			c.flattenInto(seen)
		}
	}
}

// UnmarshalJSON accepts either a JSON array of strings or an object of
// sub-nodes. Any other shape (null, number, bool, malformed strings in
// arrays) decodes to an empty list node rather than failing, so one
// bad branch never poisons the whole tree.
func (n *Node) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*n = Node{kind: KindList, leaves: items}
		return nil
	}

	var children map[string]*Node
	if err := json.Unmarshal(data, &children); err == nil {
		*n = Node{kind: KindMap, children: children}
		return nil
	}

	*n = Node{kind: KindList}
	return nil
}

// System is one education system entry.
type System struct {
	Grades    []string
	Sectors   *Node
	Languages []string
	Subjects  *Node
}

// UnmarshalJSON decodes one system entry field by field: a missing or
// mis-typed grades/languages array becomes nil, and Node fields are
// total by construction. Only a non-object value fails the entry.
func (s *System) UnmarshalJSON(data []byte) error {
	var raw struct {
		Grades    json.RawMessage `json:"grades"`
		Sectors   *Node           `json:"sectors"`
		Languages json.RawMessage `json:"languages"`
		Subjects  *Node           `json:"subjects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*s = System{Sectors: raw.Sectors, Subjects: raw.Subjects}
	if len(raw.Grades) > 0 {
		_ = json.Unmarshal(raw.Grades, &s.Grades)
	}
	if len(raw.Languages) > 0 {
		_ = json.Unmarshal(raw.Languages, &s.Languages)
	}
	return nil
}

// Tree is the full taxonomy, keyed by education system name.
// It is immutable for the session once loaded.
type Tree struct {
	Systems map[string]System
}

// Empty returns a taxonomy with no systems, used as the fallback when
// loading fails.
func Empty() *Tree {
	return &Tree{Systems: map[string]System{}}
}

// SystemNames returns the sorted education system names.
func (t *Tree) SystemNames() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.Systems))
	for name := range t.Systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// System returns the entry for name and whether it exists.
func (t *Tree) System(name string) (System, bool) {
	if t == nil {
		return System{}, false
	}
	sys, ok := t.Systems[name]
	return sys, ok
}

// UnmarshalJSON decodes the raw taxonomy document. Systems whose value
// is not an object are dropped rather than failing the whole load.
func (t *Tree) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*t = *Empty()
		return nil
	}

	systems := make(map[string]System, len(raw))
	for name, msg := range raw {
		var sys System
		if err := json.Unmarshal(msg, &sys); err != nil {
			continue
		}
		systems[name] = sys
	}
	*t = Tree{Systems: systems}
	return nil
}

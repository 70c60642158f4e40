package htmlint

import (
	"golang.org/x/net/html/atom"
)

// NodeIdx addresses a node inside a Tree's arena.
type NodeIdx = uint32

// NoNode is the sentinel for "no such node" in parent/child/sibling links.
const NoNode NodeIdx = ^NodeIdx(0)

// Span is a half-open byte range [Start, End) into the source document.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) Contains(offset uint32) bool {
	return offset >= s.Start && offset < s.End
}

// NodeKind classifies nodes in the arena.
type NodeKind uint8

const (
	DocumentNode NodeKind = iota + 1
	ElementNode
	TextNode
	CommentNode
	DoctypeNode
)

// Attr is one raw attribute as lexed from a start tag. Name is lowercased;
// Value is the unescaped attribute value. The spans point back into the
// source so diagnostics can be anchored precisely.
type Attr struct {
	Name      string
	Value     string
	NameSpan  Span
	ValueSpan Span
}

// NodeModel is the writable slot the validator fills in for each node: the
// node's effective category set and, once its children have been checked,
// the categories it ended up accepting as content.
type NodeModel struct {
	Categories CategorySet
	Accepts    CategorySet
}

// Node is one entry in the arena. Relations are by index, never by
// pointer: Parent, FirstChild and Next address the same arena, with NoNode
// marking absent links. For elements, Span covers the whole element
// (start tag through end tag), while [OpenEnd, CloseStart) is the content
// region the completion oracle positions cursors in.
type Node struct {
	Kind NodeKind
	Tag  atom.Atom // interned tag; 0 for unknown tags and non-elements
	Name string    // original tag name, or doctype text

	Span       Span
	OpenEnd    uint32 // end of the start tag; == Span.Start for non-elements
	CloseStart uint32 // start of the end tag; == Span.End if none

	Parent     NodeIdx
	FirstChild NodeIdx
	Next       NodeIdx

	Attrs []Attr

	Model NodeModel
}

// Tree is the arena-indexed document tree the validator and the completion
// oracle both read. Node 0 is always the document node. Source holds the
// raw bytes every Span indexes into; the tree never re-tokenizes, it only
// slices.
type Tree struct {
	Nodes  []Node
	Source []byte
}

func (t *Tree) Root() *Node {
	return &t.Nodes[0]
}

func (t *Tree) Node(idx NodeIdx) *Node {
	return &t.Nodes[idx]
}

// Text slices the source bytes covered by s.
func (t *Tree) Text(s Span) string {
	return string(t.Source[s.Start:s.End])
}

// Children collects the child indices of idx, in document order.
func (t *Tree) Children(idx NodeIdx) []NodeIdx {
	var out []NodeIdx
	for c := t.Nodes[idx].FirstChild; c != NoNode; c = t.Nodes[c].Next {
		out = append(out, c)
	}
	return out
}

// Attr returns the named attribute of idx, if present.
func (t *Tree) Attr(idx NodeIdx, name string) (Attr, bool) {
	for _, a := range t.Nodes[idx].Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// NodeAt returns the deepest element (or the document node) whose content
// region contains the byte offset. Used by the completion oracle to map a
// cursor position to the tree position an insertion would land in.
func (t *Tree) NodeAt(offset uint32) NodeIdx {
	best := NodeIdx(0)
	idx := t.Nodes[0].FirstChild
	for idx != NoNode {
		n := &t.Nodes[idx]
		if n.Kind == ElementNode && offset >= n.OpenEnd && offset <= n.CloseStart {
			best = idx
			idx = n.FirstChild
			continue
		}
		idx = n.Next
	}
	return best
}

// isWhitespaceText reports whether idx is a text node containing only
// ASCII whitespace. Inter-element whitespace is structurally invisible to
// every content policy, same as comments.
func (t *Tree) isWhitespaceText(idx NodeIdx) bool {
	n := &t.Nodes[idx]
	if n.Kind != TextNode {
		return false
	}
	for _, b := range t.Source[n.Span.Start:n.Span.End] {
		switch b {
		case ' ', '\t', '\n', '\r', '\f':
		default:
			return false
		}
	}
	return true
}

// structurallyVisible reports whether a child participates in content-model
// checks. Comments and whitespace-only text never do.
func (t *Tree) structurallyVisible(idx NodeIdx) bool {
	switch t.Nodes[idx].Kind {
	case CommentNode:
		return false
	case TextNode:
		return !t.isWhitespaceText(idx)
	}
	return true
}

// visibleChildren is Children filtered down to the nodes content policies
// actually see.
func (t *Tree) visibleChildren(idx NodeIdx) []NodeIdx {
	var out []NodeIdx
	for c := t.Nodes[idx].FirstChild; c != NoNode; c = t.Nodes[c].Next {
		if t.structurallyVisible(c) {
			out = append(out, c)
		}
	}
	return out
}

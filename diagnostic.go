package htmlint

import "fmt"

// DiagnosticTag identifies what kind of violation a Diagnostic reports.
type DiagnosticTag uint8

const (
	// InvalidAttr reports an attribute name no rule matches.
	InvalidAttr DiagnosticTag = iota + 1
	// MissingRequiredAttr reports an absent required attribute; Reason
	// names the attribute, or describes the requirement when it cannot be
	// pinned to a single name (optgroup's label/legend rule).
	MissingRequiredAttr
	// InvalidAttrValue reports a value its rule rejected; Reason carries
	// the rule-specific explanation.
	InvalidAttrValue
	// InvalidNesting reports a child the parent's content model rejects.
	InvalidNesting
	// DuplicateChild reports a child that may occur at most once; Related
	// points at the earlier occurrence.
	DuplicateChild
	// MissingRequiredChild reports an absent required child; Reason names
	// the expected tag.
	MissingRequiredChild
	// WrongSiblingSequence reports a child that is legal under the parent
	// but not at this point of the sequence.
	WrongSiblingSequence
	// WrongPosition reports a node that must sit elsewhere; Reason carries
	// the ordinal hint ("must precede <html>").
	WrongPosition
	// UnsupportedDoctype reports a doctype other than "html".
	UnsupportedDoctype
)

var diagnosticTagNames = map[DiagnosticTag]string{
	InvalidAttr:          "invalid attribute",
	MissingRequiredAttr:  "missing required attribute",
	InvalidAttrValue:     "invalid attribute value",
	InvalidNesting:       "invalid nesting",
	DuplicateChild:       "duplicate child",
	MissingRequiredChild: "missing required child",
	WrongSiblingSequence: "wrong sibling sequence",
	WrongPosition:        "wrong position",
	UnsupportedDoctype:   "unsupported doctype",
}

func (tag DiagnosticTag) String() string {
	if s, ok := diagnosticTagNames[tag]; ok {
		return s
	}
	return fmt.Sprintf("diagnostic(%d)", uint8(tag))
}

// Diagnostic is one validation finding. Diagnostics are accumulated in
// document order (attribute-scan order within a node), never deduplicated,
// and never mutated after creation. Rendering them is the caller's
// concern; everything a renderer needs is carried here.
type Diagnostic struct {
	Tag     DiagnosticTag
	Span    Span
	Node    NodeIdx
	Reason  string // optional, tag-specific
	Related *Span  // optional secondary span (e.g. the earlier duplicate)
}

func (d Diagnostic) String() string {
	if d.Reason != "" {
		return d.Tag.String() + ": " + d.Reason
	}
	return d.Tag.String()
}

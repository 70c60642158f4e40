package htmlint

import "golang.org/x/net/html/atom"

// ContentPolicy decides which children an element accepts. The variants
// form a closed sum: every descriptor picks exactly one, at registry-build
// time, and the registry test checks the pairing is consistent.
type ContentPolicy interface {
	contentPolicy()
}

// ModelOnly accepts a child iff the child's own categories intersect the
// policy's accepted categories.
type ModelOnly struct {
	Accepts CategorySet
}

// Structural is ModelOnly plus structural exceptions. Forbidden rules win
// over the whitelist and the category match: a forbidden tag is an error
// even when it would otherwise be acceptable.
type Structural struct {
	Accepts CategorySet
	// ForbiddenDescendants are rejected at every depth below the element,
	// not just among direct children.
	ForbiddenDescendants []atom.Atom
	// ForbiddenChildren are rejected as direct children only.
	ForbiddenChildren []atom.Atom
	// ExtraChildren are accepted regardless of category match (li under
	// ul, tr under tbody).
	ExtraChildren []atom.Atom
}

// CustomPolicy carries a hand-written validator for elements whose grammar
// the category algebra cannot express, paired with the completion function
// that replays the same scan state. The two are private so they can only
// be constructed together, inside the registry: anything the validator
// accepts must be reachable through some completion state and vice versa.
type CustomPolicy struct {
	validate func(v *run, parent NodeIdx)
	complete func(t *Tree, parent NodeIdx, offset uint32) []CompletionItem
}

// Manual marks elements whose content is foreign vocabulary outside the
// HTML content model (svg, math); the engine skips content checks here.
type Manual struct{}

// Transparent inherits the accepted categories from the nearest ancestor
// that is not itself transparent. The descriptor's Reject set then prunes
// categories the element forbids in its whole subtree even when the
// container would allow them.
type Transparent struct{}

func (ModelOnly) contentPolicy()    {}
func (Structural) contentPolicy()   {}
func (CustomPolicy) contentPolicy() {}
func (Manual) contentPolicy()       {}
func (Transparent) contentPolicy()  {}

// AttrPolicy decides how an element's attributes are validated.
type AttrPolicy interface {
	attrPolicy()
}

// GlobalOnly resolves attributes against the global set alone.
type GlobalOnly struct{}

// LocalAttrs resolves against a local set first, then the global set.
// Reject lists normally-global attribute names this element refuses
// outright (dialog rejects tabindex).
type LocalAttrs struct {
	Set    *AttrSet
	Reject []string
}

// DynamicAttrs replaces the default resolution with a validator that can
// track cross-attribute invariants (map requires id to equal name) before
// delegating to the per-rule validators in Set. Set still drives
// attribute-name completion.
type DynamicAttrs struct {
	Set      *AttrSet
	validate func(v *run, n NodeIdx)
}

// ManualAttrs skips attribute validation entirely; used for foreign
// elements (svg, math) whose attribute vocabulary is out of scope.
type ManualAttrs struct{}

func (GlobalOnly) attrPolicy()   {}
func (LocalAttrs) attrPolicy()   {}
func (DynamicAttrs) attrPolicy() {}
func (ManualAttrs) attrPolicy()  {}

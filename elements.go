package htmlint

import (
	"golang.org/x/net/html/atom"
)

// ElementDesc is the immutable per-tag record driving both validation and
// completion. Descriptors are built once at process start and never
// mutated, so they are safe for unsynchronized concurrent reads.
type ElementDesc struct {
	Tag  atom.Atom
	Name string

	// Categories are what the element is, for matching inside its
	// ancestors' content rules.
	Categories CategorySet

	// Policy is what the element accepts as children.
	Policy ContentPolicy

	// AllCategories is the widest category set the content model could
	// ever expand to. Over-approximating tooling uses it in place of the
	// exact acceptance set; for Transparent policies it is CategoryAll.
	AllCategories CategorySet

	// Reject prunes categories from the whole subtree even when the
	// policy would structurally admit them (no interactive content inside
	// a canvas fallback, or inside a link).
	Reject CategorySet

	Attrs AttrPolicy

	// Desc is the documentation line surfaced by completion items.
	Desc string
}

// acceptedCategories is the category set the element's own policy would
// accept, ignoring structural exceptions. Transparent policies have no
// set of their own; they report CategoryNone here and are resolved against
// the ancestor chain at validation time.
func (d *ElementDesc) acceptedCategories() CategorySet {
	switch p := d.Policy.(type) {
	case ModelOnly:
		return p.Accepts
	case Structural:
		return p.Accepts
	}
	return CategoryNone
}

var (
	elementByAtom map[atom.Atom]*ElementDesc
	elementByName map[string]*ElementDesc
)

// unknownElement backs tags the registry does not know. Unknown tags are
// a parse-level concern, so the descriptor is deliberately permissive:
// generic flow+phrasing element, accepts flow content, global attributes.
var unknownElement = ElementDesc{
	Name:          "unknown",
	Categories:    CategoryFlow | CategoryPhrasing,
	Policy:        ModelOnly{Accepts: CategoryFlow | CategoryPhrasing | CategoryText},
	AllCategories: CategoryFlow | CategoryPhrasing | CategoryText,
	Attrs:         GlobalOnly{},
	Desc:          "Unknown element.",
}

// buildElementIndex derives the lookup maps and the widened category sets
// from the populated table. The registry's init calls it once the table
// exists; nothing else may.
func buildElementIndex() {
	elementByAtom = make(map[atom.Atom]*ElementDesc, len(elementTable))
	elementByName = make(map[string]*ElementDesc, len(elementTable))
	for i := range elementTable {
		d := &elementTable[i]
		if d.AllCategories == CategoryNone {
			switch d.Policy.(type) {
			case Transparent:
				d.AllCategories = CategoryAll
			default:
				d.AllCategories = d.acceptedCategories()
			}
		}
		if d.Tag != 0 {
			elementByAtom[d.Tag] = d
		}
		elementByName[d.Name] = d
	}
}

// LookupElement resolves a descriptor by interned tag and original name.
// It is total: unknown tags resolve to a permissive generic descriptor.
func LookupElement(tag atom.Atom, name string) *ElementDesc {
	if tag != 0 {
		if d, ok := elementByAtom[tag]; ok {
			return d
		}
	}
	if d, ok := elementByName[name]; ok {
		return d
	}
	return &unknownElement
}

// lookupNode resolves the descriptor for an element node in t.
func lookupNode(t *Tree, idx NodeIdx) *ElementDesc {
	n := t.Node(idx)
	return LookupElement(n.Tag, n.Name)
}

// Elements returns all registered descriptors in registry order, the
// order completion items are emitted in.
func Elements() []*ElementDesc {
	out := make([]*ElementDesc, len(elementTable))
	for i := range elementTable {
		out[i] = &elementTable[i]
	}
	return out
}

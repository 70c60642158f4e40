package htmlint

import (
	"golang.org/x/net/html/atom"
)

// optgroupScan is the scan state shared by the <optgroup> validator and
// completer. The grammar couples the child sequence to the attribute
// list: the group needs a caption, supplied either by a label attribute
// or by a single leading <legend> child.
type optgroupScan struct {
	hasLabel  bool // label attribute present
	legendIdx NodeIdx
	pastStart bool // a child has been seen; a <legend> is no longer legal
}

func (s optgroupScan) hasLegend() bool {
	return s.legendIdx != NoNode
}

// optgroupRest are the tags allowed after the optional leading legend.
var optgroupRest = []atom.Atom{atom.Option, atom.Script, atom.Template, atom.Noscript, atom.Div}

func optgroupScanPrefix(t *Tree, parent NodeIdx, limit uint32) optgroupScan {
	st := optgroupScan{legendIdx: NoNode}
	if _, ok := t.Attr(parent, "label"); ok {
		st.hasLabel = true
	}
	for _, c := range t.visibleChildren(parent) {
		cn := t.Node(c)
		if cn.Span.End > limit {
			break
		}
		if cn.Kind == ElementNode && cn.Tag == atom.Legend && !st.pastStart {
			st.legendIdx = c
		}
		st.pastStart = true
	}
	return st
}

// optgroupValidate runs the attribute pass first (tracking whether label
// was supplied), then the two-state child scan: an optional single
// <legend> first, then options and supporting elements.
func optgroupValidate(v *run, parent NodeIdx) {
	t := v.tree
	st := optgroupScan{legendIdx: NoNode}
	if _, ok := t.Attr(parent, "label"); ok {
		st.hasLabel = true
	}

	for _, c := range t.visibleChildren(parent) {
		cn := t.Node(c)
		if cn.Kind == TextNode {
			v.report(Diagnostic{
				Tag:    InvalidNesting,
				Span:   cn.Span,
				Node:   c,
				Reason: "text is not allowed inside <optgroup>",
			})
			st.pastStart = true
			continue
		}
		if cn.Kind != ElementNode {
			continue
		}
		if cn.Tag == atom.Legend {
			if !st.pastStart {
				st.legendIdx = c
				st.pastStart = true
				continue
			}
			v.report(Diagnostic{
				Tag:    WrongSiblingSequence,
				Span:   cn.Span,
				Node:   c,
				Reason: "<legend> must be the first child of <optgroup>",
			})
			st.pastStart = true
			continue
		}
		st.pastStart = true
		if !inAtomSet(optgroupRest, cn.Tag) {
			v.reportChildRejected(parent, lookupNode(t, parent), c)
		}
	}

	if !st.hasLabel && !st.hasLegend() {
		pn := t.Node(parent)
		// Keyed to the element: either source could satisfy the
		// requirement, so no single attribute name applies.
		v.report(Diagnostic{
			Tag:    MissingRequiredAttr,
			Span:   pn.Span,
			Node:   parent,
			Reason: "<optgroup> needs a label attribute or a <legend> child",
		})
	}
}

// optgroupComplete replays the same two-state scan up to the cursor and
// reports what may come next: the rest set always, plus <legend> while the
// sequence is still at its start and no caption exists yet.
func optgroupComplete(t *Tree, parent NodeIdx, offset uint32) []CompletionItem {
	st := optgroupScanPrefix(t, parent, offset)
	var items []CompletionItem
	if !st.pastStart && !st.hasLegend() {
		items = append(items, tagItem(LookupElement(atom.Legend, "legend")))
	}
	for _, a := range optgroupRest {
		items = append(items, tagItem(elementByAtom[a]))
	}
	return items
}

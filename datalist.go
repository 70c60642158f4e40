package htmlint

import (
	"golang.org/x/net/html/atom"
)

// datalistState is the scan state shared by the <datalist> validator and
// completer. A datalist offers its suggestions either as phrasing content
// or as a list of <option> elements; the first decisive child commits the
// element to one of the two, and the state never reverts to searching.
type datalistState uint8

const (
	dlSearching datalistState = iota
	dlPhrasing
	dlOption
)

// datalistNeutral reports children that never influence (and are legal in)
// either state.
func datalistNeutral(tag atom.Atom) bool {
	return tag == atom.Script || tag == atom.Template
}

// datalistStep advances the state for one child, returning the new state
// and whether the child is acceptable in the state it was seen in.
func datalistStep(t *Tree, st datalistState, c NodeIdx) (datalistState, bool) {
	cn := t.Node(c)
	isOption := cn.Kind == ElementNode && cn.Tag == atom.Option
	if cn.Kind == ElementNode && datalistNeutral(cn.Tag) {
		return st, true
	}
	isPhrasing := cn.Kind == TextNode ||
		(cn.Kind == ElementNode && lookupNode(t, c).Categories.IsSet(CategoryPhrasing))

	switch st {
	case dlSearching:
		if isOption {
			return dlOption, true
		}
		if isPhrasing {
			return dlPhrasing, true
		}
		return dlSearching, false
	case dlPhrasing:
		if isOption {
			return dlPhrasing, false
		}
		return dlPhrasing, isPhrasing
	default: // dlOption
		return dlOption, isOption
	}
}

func datalistScanPrefix(t *Tree, parent NodeIdx, limit uint32) datalistState {
	st := dlSearching
	for _, c := range t.visibleChildren(parent) {
		if t.Node(c).Span.End > limit {
			break
		}
		st, _ = datalistStep(t, st, c)
	}
	return st
}

func datalistValidate(v *run, parent NodeIdx) {
	t := v.tree
	st := dlSearching
	for _, c := range t.visibleChildren(parent) {
		next, ok := datalistStep(t, st, c)
		if !ok {
			cn := t.Node(c)
			reason := "only <option>, <script>, and <template> may follow the first <option> of a <datalist>"
			switch {
			case st == dlPhrasing && cn.Kind == ElementNode && cn.Tag == atom.Option:
				reason = "<option> is not allowed once a <datalist> holds phrasing content"
			case st != dlOption:
				reason = "only phrasing content or <option> elements are allowed inside <datalist>"
			}
			v.report(Diagnostic{
				Tag:    InvalidNesting,
				Span:   cn.Span,
				Node:   c,
				Reason: reason,
			})
		}
		st = next
	}
}

func datalistComplete(t *Tree, parent NodeIdx, offset uint32) []CompletionItem {
	st := datalistScanPrefix(t, parent, offset)
	var items []CompletionItem
	for _, d := range Elements() {
		var ok bool
		switch st {
		case dlSearching:
			ok = d.Tag == atom.Option || d.Categories.IsSet(CategoryPhrasing)
		case dlPhrasing:
			ok = d.Categories.IsSet(CategoryPhrasing)
		case dlOption:
			ok = d.Tag == atom.Option || datalistNeutral(d.Tag)
		}
		if ok {
			items = append(items, tagItem(d))
		}
	}
	return items
}

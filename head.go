package htmlint

import (
	"golang.org/x/net/html/atom"
)

// headScan is the scan state shared by the <head> validator and completer:
// the only sequencing fact that matters is whether a <title> has been
// seen, and where.
type headScan struct {
	titleIdx NodeIdx
}

func (s headScan) hasTitle() bool {
	return s.titleIdx != NoNode
}

// headScanPrefix replays the child sequence of parent up to (not
// including) the child starting at or after limit. A limit of NoLimit
// scans the whole sequence.
func headScanPrefix(t *Tree, parent NodeIdx, limit uint32) headScan {
	st := headScan{titleIdx: NoNode}
	for _, c := range t.visibleChildren(parent) {
		cn := t.Node(c)
		if cn.Span.End > limit {
			break
		}
		if cn.Kind == ElementNode && cn.Tag == atom.Title && !st.hasTitle() {
			st.titleIdx = c
		}
	}
	return st
}

// NoLimit scans an entire child sequence instead of a cursor prefix.
const NoLimit = ^uint32(0)

// headValidate enforces the <head> grammar: every child is metadata
// content, exactly one <title>. Duplicate <base> checking is delegated to
// the base element itself and not re-checked here.
func headValidate(v *run, parent NodeIdx) {
	t := v.tree
	st := headScan{titleIdx: NoNode}
	for _, c := range t.visibleChildren(parent) {
		cn := t.Node(c)
		switch cn.Kind {
		case TextNode:
			v.report(Diagnostic{
				Tag:    InvalidNesting,
				Span:   cn.Span,
				Node:   c,
				Reason: "text is not allowed inside <head>",
			})
			continue
		case ElementNode:
		default:
			continue
		}
		cdesc := lookupNode(t, c)
		if !cdesc.Categories.IsSet(CategoryMetadata) {
			v.reportChildRejected(parent, lookupNode(t, parent), c)
			continue
		}
		if cn.Tag == atom.Title {
			if st.hasTitle() {
				first := t.Node(st.titleIdx).Span
				v.report(Diagnostic{
					Tag:     DuplicateChild,
					Span:    cn.Span,
					Node:    c,
					Reason:  "<head> may contain only one <title>",
					Related: &first,
				})
			} else {
				st.titleIdx = c
			}
		}
	}
	if !st.hasTitle() {
		v.report(Diagnostic{
			Tag:    MissingRequiredChild,
			Span:   t.Node(parent).Span,
			Node:   parent,
			Reason: "title",
		})
	}
}

// headComplete reports the metadata elements insertable at offset,
// dropping <title> once one precedes the cursor.
func headComplete(t *Tree, parent NodeIdx, offset uint32) []CompletionItem {
	st := headScanPrefix(t, parent, offset)
	var items []CompletionItem
	for _, d := range Elements() {
		if !d.Categories.IsSet(CategoryMetadata) {
			continue
		}
		if d.Tag == atom.Title && st.hasTitle() {
			continue
		}
		items = append(items, tagItem(d))
	}
	return items
}

package htmlint

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// rootScan is the scan state shared by the document-root validator and
// completer.
type rootScan struct {
	htmlIdx    NodeIdx
	doctypeIdx NodeIdx
	// anyElement is set once any element (html or not) has been seen;
	// suggesting a doctype past that point would be misleading even in
	// fragment mode.
	anyElement bool
}

func rootScanPrefix(t *Tree, limit uint32) rootScan {
	st := rootScan{htmlIdx: NoNode, doctypeIdx: NoNode}
	for _, c := range t.Children(0) {
		cn := t.Node(c)
		if cn.Span.End > limit {
			break
		}
		switch cn.Kind {
		case DoctypeNode:
			if st.doctypeIdx == NoNode {
				st.doctypeIdx = c
			}
		case ElementNode:
			st.anyElement = true
			if cn.Tag == atom.Html && st.htmlIdx == NoNode {
				st.htmlIdx = c
			}
		}
	}
	return st
}

// rootValidate checks the document's top level with two passes. Pass one
// locates an <html> child. If none exists the document is treated as an
// HTML fragment and arbitrary top-level elements are allowed. If <html>
// is present, its only legal siblings are comments and a single
// <!doctype html> preceding it.
func rootValidate(v *run, parent NodeIdx) {
	t := v.tree

	htmlIdx := NoNode
	for _, c := range t.Children(parent) {
		cn := t.Node(c)
		if cn.Kind == ElementNode && cn.Tag == atom.Html {
			htmlIdx = c
			break
		}
	}
	if htmlIdx == NoNode {
		// Fragment: lenient mode, no sibling rules to enforce.
		return
	}

	htmlSpan := t.Node(htmlIdx).Span
	doctypeIdx := NoNode
	for _, c := range t.visibleChildren(parent) {
		cn := t.Node(c)
		switch cn.Kind {
		case DoctypeNode:
			if doctypeIdx != NoNode {
				first := t.Node(doctypeIdx).Span
				v.report(Diagnostic{
					Tag:     DuplicateChild,
					Span:    cn.Span,
					Node:    c,
					Reason:  "a document may hold only one doctype",
					Related: &first,
				})
				continue
			}
			doctypeIdx = c
			if !strings.EqualFold(strings.TrimSpace(cn.Name), "html") {
				v.report(Diagnostic{
					Tag:    UnsupportedDoctype,
					Span:   cn.Span,
					Node:   c,
					Reason: "only <!DOCTYPE html> is supported",
				})
			}
			if cn.Span.Start > htmlSpan.Start {
				v.report(Diagnostic{
					Tag:     WrongPosition,
					Span:    cn.Span,
					Node:    c,
					Reason:  "doctype must precede <html>",
					Related: &htmlSpan,
				})
			}
		case ElementNode:
			if cn.Tag == atom.Html {
				if c != htmlIdx {
					v.report(Diagnostic{
						Tag:     DuplicateChild,
						Span:    cn.Span,
						Node:    c,
						Reason:  "a document may hold only one <html> element",
						Related: &htmlSpan,
					})
				}
				continue
			}
			v.report(Diagnostic{
				Tag:     WrongSiblingSequence,
				Span:    cn.Span,
				Node:    c,
				Reason:  "<" + cn.Name + "> may not be a sibling of <html>",
				Related: &htmlSpan,
			})
		case TextNode:
			v.report(Diagnostic{
				Tag:     WrongSiblingSequence,
				Span:    cn.Span,
				Node:    c,
				Reason:  "text may not be a sibling of <html>",
				Related: &htmlSpan,
			})
		}
	}
}

// doctypeItem is the root-level doctype suggestion; the insert text
// completes the already-typed "<".
func doctypeItem() CompletionItem {
	return CompletionItem{
		Label:  "!DOCTYPE html",
		Desc:   "HTML document type declaration.",
		Insert: "!DOCTYPE html>",
		Kind:   CompletionDoctype,
	}
}

// rootComplete mirrors rootValidate: with an <html> present the only
// insertable sibling is a single doctype before it; without one the
// document is a fragment and any element goes.
func rootComplete(t *Tree, parent NodeIdx, offset uint32) []CompletionItem {
	st := rootScanPrefix(t, NoLimit)
	var items []CompletionItem
	if st.htmlIdx != NoNode {
		if st.doctypeIdx == NoNode && offset <= t.Node(st.htmlIdx).Span.Start {
			items = append(items, doctypeItem())
		}
		return items
	}
	prefix := rootScanPrefix(t, offset)
	if st.doctypeIdx == NoNode && !prefix.anyElement {
		items = append(items, doctypeItem())
	}
	for _, d := range Elements() {
		items = append(items, tagItem(d))
	}
	return items
}

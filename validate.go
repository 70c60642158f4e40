package htmlint

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/net/html/atom"

	"github.com/htmlint/htmlint/internal/debug"
)

// run holds the state of one whole-document validation pass. Everything
// here is scoped to a single document and discarded afterwards; the only
// shared state the pass touches is the read-only descriptor registry.
type run struct {
	tree  *Tree
	diags []Diagnostic

	// seenIDs tracks id attribute values for duplicate detection,
	// cleared at the start of every run.
	seenIDs map[string]Span

	logger *slog.Logger
}

// nestCtx is the per-subtree context threaded down the depth-first walk.
type nestCtx struct {
	// inherited is the acceptance set the nearest non-transparent
	// ancestor resolved to; Transparent policies adopt it.
	inherited CategorySet
	// reject accumulates the Reject sets of every ancestor: a category in
	// here is an error anywhere below, even when the local policy would
	// accept it.
	reject CategorySet
	// forbidden maps tags forbidden at any depth (by some ancestor's
	// Structural policy) to the forbidding ancestor.
	forbidden map[atom.Atom]NodeIdx
}

// Validate runs one synchronous validation pass over t and returns the
// accumulated diagnostics in document order. It never returns an error:
// all findings, including attribute-level ones, are diagnostics.
func Validate(ctx context.Context, t *Tree) []Diagnostic {
	v := &run{
		tree:    t,
		seenIDs: make(map[string]Span),
		logger:  getTraceLogFromContext(ctx),
	}
	v.logger.Debug("validate", slog.Int("nodes", len(t.Nodes)))

	rootValidate(v, 0)
	nc := nestCtx{inherited: flowContent}
	for _, c := range t.Children(0) {
		// Doctype placement at the top level belongs to the document
		// machine, which already ran.
		if t.Node(c).Kind == DoctypeNode {
			continue
		}
		v.validateNode(c, nc)
	}
	return v.diags
}

func (v *run) report(d Diagnostic) {
	if debug.Enabled {
		debug.Printf(" --> diagnostic %s @%d node=%d", d.Tag, d.Span.Start, d.Node)
	}
	v.diags = append(v.diags, d)
}

// categoriesOf resolves a node's own categories: elements from their
// descriptor, text as {text, phrasing, flow}.
func (v *run) categoriesOf(idx NodeIdx) CategorySet {
	n := v.tree.Node(idx)
	switch n.Kind {
	case TextNode:
		return CategoryText | CategoryPhrasing | CategoryFlow
	case ElementNode:
		return lookupNode(v.tree, idx).Categories
	}
	return CategoryNone
}

// validateNode checks one node and recurses into its children.
func (v *run) validateNode(idx NodeIdx, nc nestCtx) {
	n := v.tree.Node(idx)
	switch n.Kind {
	case CommentNode, TextNode:
		// Text acceptance is judged by the parent; comments are
		// structurally invisible everywhere.
		return
	case DoctypeNode:
		// Legal doctype placement is handled by the document machine.
		v.report(Diagnostic{
			Tag:    InvalidNesting,
			Span:   n.Span,
			Node:   idx,
			Reason: "doctype is only allowed at the top of the document",
		})
		return
	case ElementNode:
	default:
		return
	}

	desc := lookupNode(v.tree, idx)

	// Ancestor-imposed constraints: a tag forbidden at any depth, or a
	// category rejected for the whole subtree, is one error per
	// occurrence regardless of how many ancestors impose it.
	if n.Tag != 0 {
		if anc, bad := nc.forbidden[n.Tag]; bad {
			ancNode := v.tree.Node(anc)
			v.report(Diagnostic{
				Tag:     InvalidNesting,
				Span:    n.Span,
				Node:    idx,
				Reason:  fmt.Sprintf("<%s> may not appear anywhere inside <%s>", desc.Name, ancNode.Name),
				Related: &ancNode.Span,
			})
		}
	}
	if desc.Categories.Intersects(nc.reject) {
		v.report(Diagnostic{
			Tag:    InvalidNesting,
			Span:   n.Span,
			Node:   idx,
			Reason: fmt.Sprintf("%s content is not allowed in this subtree", (desc.Categories & nc.reject).String()),
		})
	}

	v.validateAttrs(idx, desc)

	accepts := v.effectiveAccepts(desc, nc)
	n.Model = NodeModel{Categories: desc.Categories, Accepts: accepts}

	childCtx := nestCtx{
		inherited: accepts,
		reject:    nc.reject | desc.Reject,
		forbidden: nc.forbidden,
	}

	switch p := desc.Policy.(type) {
	case ModelOnly:
		v.checkModelChildren(idx, desc, accepts, nil)
	case Structural:
		if len(p.ForbiddenDescendants) > 0 {
			childCtx.forbidden = extendForbidden(nc.forbidden, p.ForbiddenDescendants, idx)
		}
		v.checkStructuralChildren(idx, desc, p, accepts)
	case CustomPolicy:
		p.validate(v, idx)
	case Manual:
		// Checked by a cooperating element.
	case Transparent:
		v.checkModelChildren(idx, desc, accepts, nil)
	}

	for _, c := range v.tree.Children(idx) {
		v.validateNode(c, childCtx)
	}
}

// effectiveAccepts resolves the acceptance set the node's children are
// judged against. Transparent policies inherit; Manual and Custom
// policies expose their widest superset so transparent descendants still
// resolve sensibly.
func (v *run) effectiveAccepts(desc *ElementDesc, nc nestCtx) CategorySet {
	switch desc.Policy.(type) {
	case Transparent:
		return nc.inherited
	case Manual, CustomPolicy:
		return desc.AllCategories
	}
	return desc.acceptedCategories()
}

func extendForbidden(base map[atom.Atom]NodeIdx, tags []atom.Atom, owner NodeIdx) map[atom.Atom]NodeIdx {
	next := make(map[atom.Atom]NodeIdx, len(base)+len(tags))
	for k, val := range base {
		next[k] = val
	}
	for _, tag := range tags {
		// The nearest forbidding ancestor wins for the related span.
		next[tag] = owner
	}
	return next
}

// checkModelChildren applies category-only acceptance: a child is fine
// iff its own categories intersect accepts, or its tag is whitelisted.
func (v *run) checkModelChildren(parent NodeIdx, desc *ElementDesc, accepts CategorySet, extra []atom.Atom) {
	for _, c := range v.tree.visibleChildren(parent) {
		if v.tree.Node(c).Kind == DoctypeNode {
			continue // reported by validateNode
		}
		if inAtomSet(extra, v.tree.Node(c).Tag) {
			continue
		}
		if v.categoriesOf(c).Intersects(accepts) {
			continue
		}
		v.reportChildRejected(parent, desc, c)
	}
}

func (v *run) checkStructuralChildren(parent NodeIdx, desc *ElementDesc, p Structural, accepts CategorySet) {
	parentSpan := v.tree.Node(parent).Span
	for _, c := range v.tree.visibleChildren(parent) {
		cn := v.tree.Node(c)
		if cn.Kind == DoctypeNode {
			continue
		}
		// Forbidden rules reject before the whitelist can accept.
		if cn.Kind == ElementNode && inAtomSet(p.ForbiddenChildren, cn.Tag) {
			v.report(Diagnostic{
				Tag:     InvalidNesting,
				Span:    cn.Span,
				Node:    c,
				Reason:  fmt.Sprintf("<%s> is not allowed as a direct child of <%s>", cn.Name, desc.Name),
				Related: &parentSpan,
			})
			continue
		}
		if cn.Kind == ElementNode && inAtomSet(p.ForbiddenDescendants, cn.Tag) {
			// Direct occurrences are caught by the descendant walk when
			// the child is validated; nothing to do here.
			continue
		}
		if cn.Kind == ElementNode && inAtomSet(p.ExtraChildren, cn.Tag) {
			continue
		}
		if v.categoriesOf(c).Intersects(accepts) {
			continue
		}
		v.reportChildRejected(parent, desc, c)
	}
}

func (v *run) reportChildRejected(parent NodeIdx, desc *ElementDesc, child NodeIdx) {
	cn := v.tree.Node(child)
	parentSpan := v.tree.Node(parent).Span
	var what string
	if cn.Kind == TextNode {
		what = "text"
	} else {
		what = "<" + cn.Name + ">"
	}
	v.report(Diagnostic{
		Tag:     InvalidNesting,
		Span:    cn.Span,
		Node:    child,
		Reason:  fmt.Sprintf("%s is not allowed inside <%s>", what, desc.Name),
		Related: &parentSpan,
	})
}

func inAtomSet(set []atom.Atom, tag atom.Atom) bool {
	if tag == 0 {
		return false
	}
	for _, a := range set {
		if a == tag {
			return true
		}
	}
	return false
}

package htmlint

import (
	"context"
	"log/slog"

	"golang.org/x/net/html/atom"
)

// CompletionKind discriminates what a completion item inserts.
type CompletionKind uint8

const (
	CompletionTag CompletionKind = iota + 1
	CompletionAttrName
	CompletionAttrValue
	CompletionDoctype
)

// CompletionItem is one legal insertion at the queried position.
type CompletionItem struct {
	Label string
	// Desc is the human-readable documentation, sourced from the element
	// descriptor or attribute definition.
	Desc string
	// Insert is the literal text to insert when it differs from Label.
	Insert string
	Kind   CompletionKind
}

func tagItem(d *ElementDesc) CompletionItem {
	return CompletionItem{Label: d.Name, Desc: d.Desc, Kind: CompletionTag}
}

// Complete maps a byte offset to the completions legal there: attribute
// names when the cursor sits inside a start tag, child tags otherwise.
// It is a read-only pass; it may run concurrently with other completions
// over other documents, but callers must not run it while the same
// document is being re-validated.
func Complete(ctx context.Context, t *Tree, offset uint32) []CompletionItem {
	logger := getTraceLogFromContext(ctx)
	logger.Debug("complete", slog.Uint64("offset", uint64(offset)))

	if idx, ok := elementAtStartTag(t, offset); ok {
		return CompleteAttrNames(ctx, t, idx)
	}
	return CompleteChildren(ctx, t, t.NodeAt(offset), offset)
}

// elementAtStartTag finds the element whose start tag contains offset.
func elementAtStartTag(t *Tree, offset uint32) (NodeIdx, bool) {
	for i := range t.Nodes {
		n := &t.Nodes[i]
		if n.Kind == ElementNode && offset > n.Span.Start && offset < n.OpenEnd {
			return NodeIdx(i), true
		}
	}
	return NoNode, false
}

// CompleteChildren enumerates the child tags insertable under parent at
// offset, exactly the set the validator would accept there.
func CompleteChildren(ctx context.Context, t *Tree, parent NodeIdx, offset uint32) []CompletionItem {
	if t.Node(parent).Kind == DocumentNode {
		return rootComplete(t, parent, offset)
	}
	desc := lookupNode(t, parent)
	switch p := desc.Policy.(type) {
	case CustomPolicy:
		return filterByAncestors(t, parent, p.complete(t, parent, offset))
	case Manual:
		// Judged by a cooperating element; nothing to offer here.
		return nil
	case ModelOnly, Structural, Transparent:
		return modelComplete(t, parent, desc)
	}
	return nil
}

// filterByAncestors prunes custom-policy completions the enclosing tree
// would reject anyway: tags an ancestor forbids at any depth, and
// categories an ancestor rejects for its whole subtree. The custom
// policies encode only the parent's own content rule; the ancestors'
// constraints still bind every child.
func filterByAncestors(t *Tree, parent NodeIdx, items []CompletionItem) []CompletionItem {
	env := deriveEnv(t, parent)
	if env.reject == CategoryNone && len(env.forbidden) == 0 {
		return items
	}
	out := items[:0]
	for _, it := range items {
		if it.Kind == CompletionTag {
			if d, ok := elementByName[it.Label]; ok {
				if d.Tag != 0 {
					if _, bad := env.forbidden[d.Tag]; bad {
						continue
					}
				}
				if d.Categories.Intersects(env.reject) {
					continue
				}
			}
		}
		out = append(out, it)
	}
	return out
}

// contentEnv is the acceptance environment of a tree position, derived by
// walking the ancestor chain the same way the validator's depth-first
// pass accumulates it.
type contentEnv struct {
	accepts   CategorySet
	reject    CategorySet
	forbidden map[atom.Atom]struct{}
	extra     []atom.Atom
	forbidDir []atom.Atom // parent's direct-children blacklist
}

func deriveEnv(t *Tree, parent NodeIdx) contentEnv {
	env := contentEnv{forbidden: make(map[atom.Atom]struct{})}

	// The parent's own acceptance, resolving transparent policies
	// against the nearest non-transparent ancestor.
	idx := parent
	for {
		d := lookupNode(t, idx)
		if _, transparent := d.Policy.(Transparent); !transparent {
			switch d.Policy.(type) {
			case Manual, CustomPolicy:
				env.accepts = d.AllCategories
			default:
				env.accepts = d.acceptedCategories()
			}
			break
		}
		up := t.Node(idx).Parent
		if up == NoNode || t.Node(up).Kind != ElementNode {
			// Transparent at the top of a fragment: fall back to flow.
			env.accepts = flowContent
			break
		}
		idx = up
	}

	if p, ok := lookupNode(t, parent).Policy.(Structural); ok {
		env.extra = p.ExtraChildren
		env.forbidDir = p.ForbiddenChildren
	}

	// Ancestor-accumulated constraints, the parent included.
	for idx := parent; idx != NoNode && t.Node(idx).Kind == ElementNode; idx = t.Node(idx).Parent {
		d := lookupNode(t, idx)
		env.reject |= d.Reject
		if p, ok := d.Policy.(Structural); ok {
			for _, a := range p.ForbiddenDescendants {
				env.forbidden[a] = struct{}{}
			}
		}
	}
	return env
}

// modelComplete computes completions for the data-driven policies
// directly from the same descriptor fields the validator reads.
func modelComplete(t *Tree, parent NodeIdx, desc *ElementDesc) []CompletionItem {
	env := deriveEnv(t, parent)
	var items []CompletionItem
	seen := make(map[string]struct{})
	for _, d := range Elements() {
		if _, dup := seen[d.Name]; dup {
			continue
		}
		if d.Tag != 0 {
			if _, bad := env.forbidden[d.Tag]; bad {
				continue
			}
			if inAtomSet(env.forbidDir, d.Tag) {
				continue
			}
		}
		if d.Categories.Intersects(env.reject) {
			continue
		}
		if !inAtomSet(env.extra, d.Tag) && !d.Categories.Intersects(env.accepts) {
			continue
		}
		seen[d.Name] = struct{}{}
		items = append(items, tagItem(d))
	}
	return items
}

// CompleteAttrNames enumerates the attribute names legal on idx that are
// not already present: element-local names first, then the global set,
// minus the element's global carve-outs.
func CompleteAttrNames(ctx context.Context, t *Tree, idx NodeIdx) []CompletionItem {
	desc := lookupNode(t, idx)

	var local *AttrSet
	var rejected []string
	switch p := desc.Attrs.(type) {
	case ManualAttrs:
		return nil
	case DynamicAttrs:
		local = p.Set
	case LocalAttrs:
		local = p.Set
		rejected = p.Reject
	}

	present := make(map[string]struct{}, len(t.Node(idx).Attrs))
	for _, a := range t.Node(idx).Attrs {
		present[a.Name] = struct{}{}
	}

	var items []CompletionItem
	add := func(set *AttrSet) {
		for _, name := range set.Names() {
			if _, have := present[name]; have {
				continue
			}
			skip := false
			for _, r := range rejected {
				if r == name {
					skip = true
					break
				}
			}
			if skip {
				continue
			}
			if local != nil && set != local && local.defs.Has(name) {
				continue // local definition overrides the global one
			}
			def, _ := set.Get(name)
			items = append(items, CompletionItem{
				Label: name,
				Desc:  def.Desc,
				Kind:  CompletionAttrName,
			})
			present[name] = struct{}{}
		}
	}
	if local != nil {
		add(local)
	}
	add(globalAttrs)
	return items
}

// CompleteAttrValues enumerates the legal values of the named attribute on
// idx, for rules whose values form a closed set.
func CompleteAttrValues(ctx context.Context, t *Tree, idx NodeIdx, name string) []CompletionItem {
	desc := lookupNode(t, idx)

	var local *AttrSet
	switch p := desc.Attrs.(type) {
	case ManualAttrs:
		return nil
	case DynamicAttrs:
		local = p.Set
	case LocalAttrs:
		local = p.Set
		for _, r := range p.Reject {
			if r == name {
				return nil
			}
		}
	}

	var def AttrDef
	var ok bool
	if local != nil {
		def, ok = local.Get(name)
	}
	if !ok {
		def, ok = globalAttrs.Get(name)
	}
	if !ok {
		return nil
	}
	enum, ok := def.Rule.(ValueEnumerator)
	if !ok {
		return nil
	}
	var items []CompletionItem
	for _, val := range enum.ValueSet() {
		items = append(items, CompletionItem{
			Label: val,
			Desc:  def.Desc,
			Kind:  CompletionAttrValue,
		})
	}
	return items
}

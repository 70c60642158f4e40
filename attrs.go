package htmlint

import "fmt"

// validateAttrs streams the attributes of idx through the element's
// attribute policy. All attributes are checked even after one fails;
// attribute findings never abort the node scan.
func (v *run) validateAttrs(idx NodeIdx, desc *ElementDesc) {
	switch p := desc.Attrs.(type) {
	case ManualAttrs:
		// Foreign vocabulary, validated elsewhere (or not at all).
	case DynamicAttrs:
		p.validate(v, idx)
	case LocalAttrs:
		v.resolveAttrs(idx, desc, p.Set, p.Reject)
	case GlobalOnly:
		v.resolveAttrs(idx, desc, nil, nil)
	}
}

// resolveAttrs is the default resolution: element-local set first, then
// the global set, then the custom-data passthrough, else the attribute is
// unknown. It finishes by checking required-attribute presence against
// the local set.
func (v *run) resolveAttrs(idx NodeIdx, desc *ElementDesc, local *AttrSet, rejected []string) {
	n := v.tree.Node(idx)
	for _, a := range n.Attrs {
		v.checkAttr(idx, desc, a, local, rejected)
	}
	if local == nil {
		return
	}
	for _, name := range local.Required() {
		if _, ok := v.tree.Attr(idx, name); !ok {
			v.report(Diagnostic{
				Tag:    MissingRequiredAttr,
				Span:   n.Span,
				Node:   idx,
				Reason: name,
			})
		}
	}
}

func (v *run) checkAttr(idx NodeIdx, desc *ElementDesc, a Attr, local *AttrSet, rejected []string) {
	for _, name := range rejected {
		if a.Name == name {
			v.report(Diagnostic{
				Tag:    InvalidAttr,
				Span:   a.NameSpan,
				Node:   idx,
				Reason: fmt.Sprintf("%q is not allowed on <%s>", a.Name, desc.Name),
			})
			return
		}
	}

	var def AttrDef
	var ok bool
	if local != nil {
		def, ok = local.Get(a.Name)
	}
	if !ok {
		def, ok = globalAttrs.Get(a.Name)
	}
	if !ok {
		if isCustomData(a.Name) {
			return // always accepted, never validated
		}
		v.report(Diagnostic{
			Tag:    InvalidAttr,
			Span:   a.NameSpan,
			Node:   idx,
			Reason: fmt.Sprintf("unknown attribute %q", a.Name),
		})
		return
	}

	if err := def.Rule.ValidateAttr(a.Name, a.Value); err != nil {
		v.report(Diagnostic{
			Tag:    InvalidAttrValue,
			Span:   a.ValueSpan,
			Node:   idx,
			Reason: err.Error(),
		})
	}

	if a.Name == "id" && a.Value != "" {
		if prev, dup := v.seenIDs[a.Value]; dup {
			v.report(Diagnostic{
				Tag:     InvalidAttrValue,
				Span:    a.ValueSpan,
				Node:    idx,
				Reason:  fmt.Sprintf("id %q is already used in this document", a.Value),
				Related: &prev,
			})
		} else {
			v.seenIDs[a.Value] = a.ValueSpan
		}
	}
}

// mapValidateAttrs is the dynamic attribute policy of <map>: normal rule
// validation plus a cross-attribute invariant, id (when present) must be
// byte-for-byte equal to name.
func mapValidateAttrs(v *run, idx NodeIdx) {
	desc := lookupNode(v.tree, idx)
	p := desc.Attrs.(DynamicAttrs)
	v.resolveAttrs(idx, desc, p.Set, nil)

	nameAttr, hasName := v.tree.Attr(idx, "name")
	idAttr, hasID := v.tree.Attr(idx, "id")
	if hasName && hasID && idAttr.Value != nameAttr.Value {
		v.report(Diagnostic{
			Tag:     InvalidAttrValue,
			Span:    idAttr.ValueSpan,
			Node:    idx,
			Reason:  fmt.Sprintf("id %q must equal the map's name %q", idAttr.Value, nameAttr.Value),
			Related: &nameAttr.ValueSpan,
		})
	}
}

package htmlint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// candidateMarkup builds a minimal instance of d that carries every
// required attribute, so the only diagnostics it can provoke are the
// structural ones the agreement property is about.
func candidateMarkup(d *ElementDesc) string {
	attrs := ""
	if p, ok := d.Attrs.(LocalAttrs); ok && p.Set != nil {
		for _, name := range p.Set.Required() {
			attrs += ` ` + name + `="x"`
		}
	}
	if p, ok := d.Attrs.(DynamicAttrs); ok && p.Set != nil {
		for _, name := range p.Set.Required() {
			attrs += ` ` + name + `="x"`
		}
	}
	if voidElements[d.Tag] {
		return "<" + d.Name + attrs + ">"
	}
	return "<" + d.Name + attrs + "></" + d.Name + ">"
}

// nestingDiags are the diagnostic tags an inserted child can provoke on
// itself purely by where it sits.
func nestingDiag(tag DiagnosticTag) bool {
	switch tag {
	case InvalidNesting, DuplicateChild, WrongSiblingSequence, WrongPosition:
		return true
	}
	return false
}

// TestCompletionMatchesValidator checks the agreement between the two
// halves of the library: at any position, a tag is offered by completion
// exactly when inserting it there produces no nesting diagnostics on the
// inserted element. Every element in the registry is tried as a candidate
// at every position.
func TestCompletionMatchesValidator(t *testing.T) {
	positions := []struct {
		name   string
		prefix string // source up to the insertion point
		suffix string // closing remainder
	}{
		{"empty ul", `<ul>`, `</ul>`},
		{"ul after li", `<ul><li>x</li>`, `</ul>`},
		{"empty p", `<p>`, `</p>`},
		{"empty dialog", `<dialog>`, `</dialog>`},
		{"empty body", `<body>`, `</body>`},
		{"empty head", `<head>`, `</head>`},
		{"head with title", `<head><title>t</title>`, `</head>`},
		{"empty select", `<select>`, `</select>`},
		{"empty optgroup", `<optgroup label="g">`, `</optgroup>`},
		{"optgroup after option", `<optgroup label="g"><option>a</option>`, `</optgroup>`},
		{"empty datalist", `<datalist>`, `</datalist>`},
		{"datalist with option", `<datalist><option>a</option>`, `</datalist>`},
		{"datalist with text", `<datalist>some text`, `</datalist>`},
		{"empty video", `<video>`, `</video>`},
		{"empty button", `<button>`, `</button>`},
		{"empty table", `<table>`, `</table>`},
		{"empty tr", `<table><tr>`, `</tr></table>`},
		{"link in paragraph", `<p><a href="/x">`, `</a></p>`},
		{"canvas fallback", `<canvas>`, `</canvas>`},
		{"nested form", `<form><div>`, `</div></form>`},
		{"datalist inside a link", `<p><a href="/x"><datalist>`, `</datalist></a></p>`},
		{"datalist inside dfn", `<dfn><datalist>`, `</datalist></dfn>`},
		{"head inside a link", `<a href="/x"><head>`, `</head></a>`},
		{"optgroup inside a link", `<a href="/x"><select><optgroup label="g">`, `</optgroup></select></a>`},
	}

	ctx := context.Background()
	for _, pos := range positions {
		pos := pos
		t.Run(pos.name, func(t *testing.T) {
			offset := uint32(len(pos.prefix))

			base, err := Parse(ctx, []byte(pos.prefix+pos.suffix))
			if !assert.NoError(t, err) {
				return
			}
			offered := labelSet(Complete(ctx, base, offset))

			seen := make(map[string]struct{})
			for _, d := range Elements() {
				if _, dup := seen[d.Name]; dup {
					continue
				}
				seen[d.Name] = struct{}{}
				if _, manual := d.Policy.(Manual); manual {
					// Foreign content carries no agreement contract.
					continue
				}

				src := pos.prefix + candidateMarkup(d) + pos.suffix
				tree, err := Parse(ctx, []byte(src))
				if !assert.NoError(t, err, "parse with %s inserted", d.Name) {
					continue
				}
				cand := NoNode
				for i := range tree.Nodes {
					n := &tree.Nodes[i]
					if n.Kind == ElementNode && n.Span.Start == offset {
						cand = NodeIdx(i)
						break
					}
				}
				if !assert.NotEqual(t, NoNode, cand, "inserted %s found in the tree", d.Name) {
					continue
				}

				accepted := true
				for _, diag := range Validate(ctx, tree) {
					if diag.Node == cand && nestingDiag(diag.Tag) {
						accepted = false
						break
					}
				}
				_, isOffered := offered[d.Name]
				assert.Equal(t, accepted, isOffered,
					"%s: validator and completion disagree on <%s>", pos.name, d.Name)
			}
		})
	}
}

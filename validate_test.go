package htmlint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validateSource(t *testing.T, src string) (*Tree, []Diagnostic) {
	t.Helper()
	tree, err := Parse(context.Background(), []byte(src))
	if !assert.NoError(t, err, "Parse %q", src) {
		t.FailNow()
	}
	return tree, Validate(context.Background(), tree)
}

func diagsByTag(diags []Diagnostic, tag DiagnosticTag) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Tag == tag {
			out = append(out, d)
		}
	}
	return out
}

func TestValidateCleanDocument(t *testing.T) {
	_, diags := validateSource(t, `<!DOCTYPE html><html><head><title>t</title></head><body><p>hello</p></body></html>`)
	assert.Empty(t, diags, "a well-formed document yields no diagnostics")
}

func TestValidateHeadRequiresTitle(t *testing.T) {
	_, diags := validateSource(t, `<head><meta charset="utf-8"></head>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, MissingRequiredChild, diags[0].Tag)
	assert.Equal(t, "title", diags[0].Reason)
}

func TestValidateHeadDuplicateTitle(t *testing.T) {
	tree, diags := validateSource(t, `<head><title>a</title><title>b</title></head>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	d := diags[0]
	assert.Equal(t, DuplicateChild, d.Tag)
	assert.Equal(t, "title", tree.Node(d.Node).Name, "the second title is flagged")
	if !assert.NotNil(t, d.Related, "the first occurrence is related") {
		return
	}
	assert.Equal(t, uint32(len(`<head>`)), d.Related.Start)
}

func TestValidateHeadRejectsText(t *testing.T) {
	_, diags := validateSource(t, `<head><title>a</title>stray</head>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "text is not allowed inside <head>")
}

func TestValidateHeadRejectsNonMetadata(t *testing.T) {
	_, diags := validateSource(t, `<head><title>a</title><div></div></head>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "<div> is not allowed inside <head>")
}

func TestValidateRootDoctype(t *testing.T) {
	t.Run("doctype after html", func(t *testing.T) {
		_, diags := validateSource(t, `<html></html><!DOCTYPE html>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, WrongPosition, diags[0].Tag)
		assert.Contains(t, diags[0].Reason, "must precede <html>")
	})
	t.Run("legacy doctype", func(t *testing.T) {
		_, diags := validateSource(t, `<!DOCTYPE foo><html></html>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, UnsupportedDoctype, diags[0].Tag)
	})
	t.Run("duplicate doctype", func(t *testing.T) {
		_, diags := validateSource(t, `<!DOCTYPE html><!DOCTYPE html><html></html>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, DuplicateChild, diags[0].Tag)
	})
	t.Run("doctype inside an element", func(t *testing.T) {
		_, diags := validateSource(t, `<div><!DOCTYPE html></div>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
		assert.Contains(t, diags[0].Reason, "top of the document")
	})
}

func TestValidateRootSiblingsOfHtml(t *testing.T) {
	t.Run("element sibling", func(t *testing.T) {
		_, diags := validateSource(t, `<html></html><div></div>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, WrongSiblingSequence, diags[0].Tag)
	})
	t.Run("second html", func(t *testing.T) {
		_, diags := validateSource(t, `<html></html><html></html>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, DuplicateChild, diags[0].Tag)
	})
	t.Run("comments are fine", func(t *testing.T) {
		_, diags := validateSource(t, "<!-- a --><html></html><!-- b -->")
		assert.Empty(t, diags)
	})
}

func TestValidateFragmentIsLenient(t *testing.T) {
	_, diags := validateSource(t, `<div>one</div><p>two</p>`)
	assert.Empty(t, diags, "without <html> the top level accepts any elements")
}

func TestValidateForbiddenDescendantOnce(t *testing.T) {
	// One diagnostic per occurrence, no matter how deep the nesting and
	// how many ancestors forbid the tag.
	tree, diags := validateSource(t, `<form><div><form action="/x"></form></div></form>`)
	if !assert.Len(t, diags, 1, "the inner form is flagged exactly once") {
		return
	}
	d := diags[0]
	assert.Equal(t, InvalidNesting, d.Tag)
	assert.Equal(t, "form", tree.Node(d.Node).Name)
	if !assert.NotNil(t, d.Related) {
		return
	}
	assert.Equal(t, uint32(0), d.Related.Start, "related span points at the forbidding ancestor")
}

func TestValidateForbiddenDescendantDirectChild(t *testing.T) {
	_, diags := validateSource(t, `<header><footer></footer></header>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "anywhere inside <header>")
}

func TestValidateRejectedCategories(t *testing.T) {
	t.Run("button rejects interactive children", func(t *testing.T) {
		_, diags := validateSource(t, `<button><a href="/x">go</a></button>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
		assert.Contains(t, diags[0].Reason, "not allowed in this subtree")
	})
	t.Run("reject reaches deep descendants", func(t *testing.T) {
		_, diags := validateSource(t, `<a href="/x"><div><button>hi</button></div></a>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
	})
	t.Run("canvas fallback rejects interactive", func(t *testing.T) {
		_, diags := validateSource(t, `<canvas><select></select></canvas>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
	})
}

func TestValidateListWhitelist(t *testing.T) {
	_, diags := validateSource(t, `<ul><li>ok</li><script></script><div>bad</div></ul>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "<div> is not allowed inside <ul>")
}

func TestValidateCellOutsideRow(t *testing.T) {
	_, diags := validateSource(t, `<table><td>x</td></table>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "not allowed as a direct child of <table>")
}

func TestValidateTransparentContent(t *testing.T) {
	// <a> inside <p> inherits p's phrasing model: a div below the link is
	// an error, a span is not.
	_, diags := validateSource(t, `<p><a href="/x"><span>ok</span></a></p>`)
	assert.Empty(t, diags)

	_, diags = validateSource(t, `<p><a href="/x"><div>bad</div></a></p>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "<div> is not allowed inside <a>")
}

func TestValidateWhitespaceAndCommentsInvisible(t *testing.T) {
	_, diags := validateSource(t, "<ul>\n  <!-- nav -->\n  <li>x</li>\n</ul>")
	assert.Empty(t, diags, "inter-element whitespace and comments never trip content models")
}

func TestValidateBdoDir(t *testing.T) {
	_, diags := validateSource(t, `<bdo>x</bdo>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, MissingRequiredAttr, diags[0].Tag)
	assert.Equal(t, "dir", diags[0].Reason)

	_, diags = validateSource(t, `<bdo dir="up">x</bdo>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidAttrValue, diags[0].Tag)

	_, diags = validateSource(t, `<bdo dir="rtl">x</bdo>`)
	assert.Empty(t, diags)
}

func TestValidateDataValue(t *testing.T) {
	_, diags := validateSource(t, `<data>7</data>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, MissingRequiredAttr, diags[0].Tag)
	assert.Equal(t, "value", diags[0].Reason)

	_, diags = validateSource(t, `<data value="">7</data>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidAttrValue, diags[0].Tag, "present but empty fails the value rule")
}

func TestValidateDialogRejectsTabindex(t *testing.T) {
	_, diags := validateSource(t, `<dialog tabindex="0"></dialog>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidAttr, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "not allowed on <dialog>")

	_, diags = validateSource(t, `<dialog open></dialog>`)
	assert.Empty(t, diags)
}

func TestValidateMapAttrs(t *testing.T) {
	_, diags := validateSource(t, `<map name="shapes" id="shapes"></map>`)
	assert.Empty(t, diags)

	_, diags = validateSource(t, `<map></map>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, MissingRequiredAttr, diags[0].Tag)
	assert.Equal(t, "name", diags[0].Reason)

	_, diags = validateSource(t, `<map name="shapes" id="other"></map>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidAttrValue, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, `must equal the map's name`)
	assert.NotNil(t, diags[0].Related)
}

func TestValidateDatalist(t *testing.T) {
	t.Run("option list", func(t *testing.T) {
		_, diags := validateSource(t, `<datalist><option>a</option><option>b</option></datalist>`)
		assert.Empty(t, diags)
	})
	t.Run("phrasing content", func(t *testing.T) {
		_, diags := validateSource(t, `<datalist>pick <em>one</em></datalist>`)
		assert.Empty(t, diags)
	})
	t.Run("option after phrasing", func(t *testing.T) {
		_, diags := validateSource(t, `<datalist>pick one<option>a</option></datalist>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
		assert.Contains(t, diags[0].Reason, "phrasing content")
	})
	t.Run("phrasing after option", func(t *testing.T) {
		_, diags := validateSource(t, `<datalist><option>a</option><em>x</em></datalist>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
	})
	t.Run("script is neutral", func(t *testing.T) {
		_, diags := validateSource(t, `<datalist><script></script><option>a</option></datalist>`)
		assert.Empty(t, diags)
	})
}

func TestValidateOptgroup(t *testing.T) {
	t.Run("label attribute", func(t *testing.T) {
		_, diags := validateSource(t, `<select><optgroup label="g"><option>a</option></optgroup></select>`)
		assert.Empty(t, diags)
	})
	t.Run("leading legend", func(t *testing.T) {
		_, diags := validateSource(t, `<optgroup><legend>g</legend><option>a</option></optgroup>`)
		assert.Empty(t, diags)
	})
	t.Run("legend too late", func(t *testing.T) {
		_, diags := validateSource(t, `<optgroup><option>a</option><legend>g</legend></optgroup>`)
		if !assert.Len(t, diags, 2) {
			return
		}
		assert.Equal(t, WrongSiblingSequence, diags[0].Tag)
		assert.Equal(t, MissingRequiredAttr, diags[1].Tag, "the late legend does not satisfy the caption requirement")
	})
	t.Run("no caption at all", func(t *testing.T) {
		_, diags := validateSource(t, `<optgroup><option>a</option></optgroup>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, MissingRequiredAttr, diags[0].Tag)
		assert.Contains(t, diags[0].Reason, "label attribute or a <legend> child")
	})
	t.Run("stray child", func(t *testing.T) {
		_, diags := validateSource(t, `<optgroup label="g"><em>x</em></optgroup>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidNesting, diags[0].Tag)
	})
}

func TestValidateDuplicateID(t *testing.T) {
	_, diags := validateSource(t, `<div id="a"></div><span id="a"></span>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidAttrValue, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "already used")
	assert.NotNil(t, diags[0].Related, "points back at the first use")
}

func TestValidateAttrRules(t *testing.T) {
	t.Run("required attr missing", func(t *testing.T) {
		_, diags := validateSource(t, `<img alt="">`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, MissingRequiredAttr, diags[0].Tag)
		assert.Equal(t, "src", diags[0].Reason)
	})
	t.Run("int bounds", func(t *testing.T) {
		_, diags := validateSource(t, `<table><tr><td colspan="0">x</td></tr></table>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidAttrValue, diags[0].Tag)
	})
	t.Run("unknown attribute", func(t *testing.T) {
		_, diags := validateSource(t, `<div frobnicate="1"></div>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidAttr, diags[0].Tag)
		assert.Contains(t, diags[0].Reason, "unknown attribute")
	})
	t.Run("custom data passthrough", func(t *testing.T) {
		_, diags := validateSource(t, `<div data-anything="at all"></div>`)
		assert.Empty(t, diags)
	})
	t.Run("language tag", func(t *testing.T) {
		_, diags := validateSource(t, `<div lang="en-US"></div>`)
		assert.Empty(t, diags)

		_, diags = validateSource(t, `<div lang="not a tag"></div>`)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, InvalidAttrValue, diags[0].Tag)
	})
	t.Run("all attrs checked after a failure", func(t *testing.T) {
		_, diags := validateSource(t, `<div lang="!!" frobnicate="1"></div>`)
		assert.Len(t, diags, 2)
	})
	t.Run("diagnostic span covers the value", func(t *testing.T) {
		src := `<form method="teleport"></form>`
		tree, diags := validateSource(t, src)
		if !assert.Len(t, diags, 1) {
			return
		}
		assert.Equal(t, "teleport", tree.Text(diags[0].Span))
	})
}

func TestValidateVideoSources(t *testing.T) {
	_, diags := validateSource(t, `<video controls><source src="a.mp4"><p>fallback</p></video>`)
	assert.Empty(t, diags)

	_, diags = validateSource(t, `<video><div><audio></audio></div></video>`)
	if !assert.Len(t, diags, 1) {
		return
	}
	assert.Equal(t, InvalidNesting, diags[0].Tag)
	assert.Contains(t, diags[0].Reason, "anywhere inside <video>")
}

func TestValidateModelSlots(t *testing.T) {
	tree, diags := validateSource(t, `<p><em>x</em></p>`)
	if !assert.Empty(t, diags) {
		return
	}
	p := tree.Node(tree.Children(0)[0])
	assert.Equal(t, CategoryFlow, p.Model.Categories, "validation fills the node's model slot")
	assert.True(t, p.Model.Accepts.IsSet(CategoryPhrasing))
}

func TestValidateDiagnosticsInDocumentOrder(t *testing.T) {
	_, diags := validateSource(t, `<ul frobnicate="1"><div>a</div><div>b</div></ul>`)
	if !assert.Len(t, diags, 3, "attribute finding first, then both children") {
		return
	}
	assert.Equal(t, InvalidAttr, diags[0].Tag)
	for i := 1; i < len(diags); i++ {
		assert.LessOrEqual(t, diags[i-1].Span.Start, diags[i].Span.Start)
	}
}

package htmlint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/htmlint/htmlint/internal/orderedmap"
)

// AttrDef couples an attribute name with its validation rule and the
// documentation string surfaced by completion.
type AttrDef struct {
	Name     string
	Rule     AttrRule
	Desc     string
	Required bool
}

// AttrSet is an ordered, name-unique table of attribute definitions. One
// global set is shared by every element; elements may carry a local set
// that is consulted first and may override global entries.
type AttrSet struct {
	defs *orderedmap.Map[string, AttrDef]
}

// NewAttrSet builds a set from defs. Duplicate names are a programming
// error in the static registry, so they panic at process start rather
// than surfacing at validation time.
func NewAttrSet(defs ...AttrDef) *AttrSet {
	s := &AttrSet{defs: orderedmap.New[string, AttrDef]()}
	for _, d := range defs {
		if err := s.defs.Set(d.Name, d); err != nil {
			panic(fmt.Sprintf("attribute %q defined twice", d.Name))
		}
	}
	return s
}

func (s *AttrSet) Get(name string) (AttrDef, bool) {
	return s.defs.Get(name)
}

func (s *AttrSet) Names() []string {
	return s.defs.Keys()
}

// Required returns the names of required attributes, in table order.
func (s *AttrSet) Required() []string {
	var out []string
	for name, def := range s.defs.Range() {
		if def.Required {
			out = append(out, name)
		}
	}
	return out
}

// isCustomData reports whether name is a custom-data attribute, which is
// always accepted and never validated.
func isCustomData(name string) bool {
	return strings.HasPrefix(name, "data-") && len(name) > len("data-")
}

// integerRule accepts any base-10 integer, including negative ones
// (tabindex). The closed rule vocabulary only carries a non-negative
// variant, so this lives as a custom predicate.
func integerRule(name, value string) error {
	if _, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err != nil {
		return fmt.Errorf("%q is not a valid integer", value)
	}
	return nil
}

// globalAttrs is the attribute set every element shares. Element-local
// sets are consulted before it; elements may also reject individual
// global names (dialog rejects tabindex).
var globalAttrs = NewAttrSet(
	AttrDef{Name: "id", Rule: IDRule{}, Desc: "Unique identifier for the element."},
	AttrDef{Name: "class", Rule: ManualRule{}, Desc: "Space-separated list of style classes."},
	AttrDef{Name: "style", Rule: ManualRule{}, Desc: "Inline CSS declarations."},
	AttrDef{Name: "title", Rule: ManualRule{}, Desc: "Advisory information, usually shown as a tooltip."},
	AttrDef{Name: "lang", Rule: LangRule{}, Desc: "Language of the element's content (BCP 47 tag)."},
	AttrDef{Name: "dir", Rule: EnumRule{Tokens: []string{"ltr", "rtl", "auto"}, Card: One}, Desc: "Text directionality."},
	AttrDef{Name: "tabindex", Rule: FuncRule{Fn: integerRule}, Desc: "Position in sequential focus navigation."},
	AttrDef{Name: "hidden", Rule: EnumRule{Tokens: []string{"hidden", "until-found"}, Card: ZeroOrOne}, Desc: "Marks the element as not (yet) relevant."},
	AttrDef{Name: "accesskey", Rule: NonEmptyRule{}, Desc: "Keyboard shortcut to activate or focus the element."},
	AttrDef{Name: "autocapitalize", Rule: EnumRule{Tokens: []string{"off", "none", "on", "sentences", "words", "characters"}, Card: One}, Desc: "Autocapitalization behavior for editable text."},
	AttrDef{Name: "autofocus", Rule: BoolRule{}, Desc: "Focus the element as soon as the page loads."},
	AttrDef{Name: "contenteditable", Rule: EnumRule{Tokens: []string{"true", "false", "plaintext-only"}, Card: ZeroOrOne}, Desc: "Whether the element's text is editable."},
	AttrDef{Name: "draggable", Rule: EnumRule{Tokens: []string{"true", "false"}, Card: One}, Desc: "Whether the element can be dragged."},
	AttrDef{Name: "enterkeyhint", Rule: EnumRule{Tokens: []string{"enter", "done", "go", "next", "previous", "search", "send"}, Card: One}, Desc: "Action label for the virtual-keyboard enter key."},
	AttrDef{Name: "inert", Rule: BoolRule{}, Desc: "Makes the element and its subtree non-interactive."},
	AttrDef{Name: "inputmode", Rule: EnumRule{Tokens: []string{"none", "text", "tel", "url", "email", "numeric", "decimal", "search"}, Card: One}, Desc: "Virtual-keyboard input hint."},
	AttrDef{Name: "is", Rule: NonEmptyRule{}, Desc: "Name of a customized built-in element."},
	AttrDef{Name: "itemid", Rule: URLRule{}, Desc: "Microdata: global identifier of the item."},
	AttrDef{Name: "itemprop", Rule: NonEmptyRule{}, Desc: "Microdata: property names the element adds to an item."},
	AttrDef{Name: "itemref", Rule: NonEmptyRule{}, Desc: "Microdata: further elements contributing to the item."},
	AttrDef{Name: "itemscope", Rule: BoolRule{}, Desc: "Microdata: introduces a new item."},
	AttrDef{Name: "itemtype", Rule: NonEmptyRule{}, Desc: "Microdata: item vocabulary URLs."},
	AttrDef{Name: "nonce", Rule: NonEmptyRule{}, Desc: "Cryptographic nonce for Content Security Policy."},
	AttrDef{Name: "popover", Rule: EnumRule{Tokens: []string{"auto", "manual", "hint"}, Card: ZeroOrOne}, Desc: "Makes the element a popover."},
	AttrDef{Name: "slot", Rule: NonEmptyRule{}, Desc: "Shadow-tree slot the element is assigned to."},
	AttrDef{Name: "spellcheck", Rule: EnumRule{Tokens: []string{"true", "false"}, Card: ZeroOrOne}, Desc: "Whether spelling should be checked."},
	AttrDef{Name: "translate", Rule: EnumRule{Tokens: []string{"yes", "no"}, Card: ZeroOrOne}, Desc: "Whether the content should be localized."},
	AttrDef{Name: "writingsuggestions", Rule: EnumRule{Tokens: []string{"true", "false"}, Card: ZeroOrOne}, Desc: "Whether browser writing suggestions apply."},
)

// GlobalAttrs exposes the shared global attribute set.
func GlobalAttrs() *AttrSet {
	return globalAttrs
}

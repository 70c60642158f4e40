package htmlint

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// Convenience sets for the two content models almost everything uses.
// Text nodes carry {text, phrasing, flow}, so they uniformly satisfy both.
const (
	phrasingContent = CategoryPhrasing | CategoryText
	flowContent     = CategoryFlow | CategoryPhrasing | CategoryText
)

func floatRule(name, value string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return fmt.Errorf("%q is not a valid floating-point number", value)
	}
	return nil
}

var referrerPolicyRule = EnumRule{Tokens: []string{
	"no-referrer", "no-referrer-when-downgrade", "same-origin", "origin",
	"strict-origin", "origin-when-cross-origin",
	"strict-origin-when-cross-origin", "unsafe-url",
}, Card: ZeroOrOne}

var crossOriginRule = EnumRule{Tokens: []string{"anonymous", "use-credentials"}, Card: ZeroOrOne}

// linkedResourceAttrs are shared by a and area.
func linkedResourceAttrs(extra ...AttrDef) *AttrSet {
	defs := []AttrDef{
		{Name: "href", Rule: URLRule{}, Desc: "Destination of the hyperlink."},
		{Name: "target", Rule: NonEmptyRule{}, Desc: "Browsing context the link opens in."},
		{Name: "download", Rule: ManualRule{}, Desc: "Download the resource instead of navigating; optional filename."},
		{Name: "ping", Rule: NonEmptyRule{}, Desc: "Space-separated URLs to ping on follow."},
		{Name: "rel", Rule: NonEmptyRule{}, Desc: "Relationship of the destination to this document."},
		{Name: "referrerpolicy", Rule: referrerPolicyRule, Desc: "Referrer policy for fetches caused by the link."},
	}
	return NewAttrSet(append(defs, extra...)...)
}

// elementTable is the static per-tag registry. It is populated from init
// rather than a package-level literal: the custom policies in the table
// refer back to the registry through Elements, and a literal initializer
// would close an initialization cycle. Order matters: completion items are
// emitted in table order.
var elementTable []ElementDesc

func init() {
	elementTable = makeElementTable()
	buildElementIndex()
}

func makeElementTable() []ElementDesc {
	return []ElementDesc{
		// Document structure.
		{Tag: atom.Html, Name: "html", Categories: CategoryNone,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Head, atom.Body}},
			Attrs:  GlobalOnly{},
			Desc:   "Root element of an HTML document."},
		{Tag: atom.Head, Name: "head", Categories: CategoryNone,
			Policy:        CustomPolicy{validate: headValidate, complete: headComplete},
			AllCategories: CategoryMetadata,
			Attrs:         GlobalOnly{},
			Desc:          "Container for document metadata."},
		{Tag: atom.Body, Name: "body", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: flowContent},
			Attrs:  GlobalOnly{},
			Desc:   "Document body."},
		{Tag: atom.Title, Name: "title", Categories: CategoryMetadata,
			Policy: ModelOnly{Accepts: CategoryText},
			Attrs:  GlobalOnly{},
			Desc:   "Document title; text only."},
		{Tag: atom.Base, Name: "base", Categories: CategoryMetadata,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "href", Rule: URLRule{}, Desc: "Base URL for relative URLs in the document."},
				AttrDef{Name: "target", Rule: NonEmptyRule{}, Desc: "Default browsing context for navigation."},
			)},
			Desc: "Base URL and default navigation target. Void."},
		{Tag: atom.Link, Name: "link", Categories: CategoryMetadata,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "href", Rule: URLRule{}, Required: true, Desc: "Address of the linked resource."},
				AttrDef{Name: "rel", Rule: NonEmptyRule{}, Desc: "Relationship of the linked resource."},
				AttrDef{Name: "as", Rule: NonEmptyRule{}, Desc: "Destination for rel=preload."},
				AttrDef{Name: "type", Rule: MIMERule{}, Desc: "MIME type of the linked resource."},
				AttrDef{Name: "media", Rule: NonEmptyRule{}, Desc: "Media query the resource applies to."},
				AttrDef{Name: "sizes", Rule: NonEmptyRule{}, Desc: "Icon sizes for rel=icon."},
				AttrDef{Name: "hreflang", Rule: LangRule{}, Desc: "Language of the linked resource."},
				AttrDef{Name: "integrity", Rule: NonEmptyRule{}, Desc: "Subresource integrity hash."},
				AttrDef{Name: "crossorigin", Rule: crossOriginRule, Desc: "CORS mode for the fetch."},
				AttrDef{Name: "referrerpolicy", Rule: referrerPolicyRule, Desc: "Referrer policy for the fetch."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disables a stylesheet link."},
			)},
			Desc: "Link to an external resource. Void."},
		{Tag: atom.Meta, Name: "meta", Categories: CategoryMetadata,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Metadata name."},
				AttrDef{Name: "content", Rule: ManualRule{}, Desc: "Metadata value."},
				AttrDef{Name: "charset", Rule: NonEmptyRule{}, Desc: "Document character encoding."},
				AttrDef{Name: "http-equiv", Rule: NonEmptyRule{}, Desc: "Pragma directive name."},
				AttrDef{Name: "media", Rule: NonEmptyRule{}, Desc: "Media query for theme-color."},
			)},
			Desc: "Document metadata. Void."},
		{Tag: atom.Style, Name: "style", Categories: CategoryMetadata,
			Policy: ModelOnly{Accepts: CategoryText},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "media", Rule: NonEmptyRule{}, Desc: "Media query the styles apply to."},
				AttrDef{Name: "blocking", Rule: EnumRule{Tokens: []string{"render"}, Card: ZeroOrOne}, Desc: "Operations blocked on the stylesheet."},
			)},
			Desc: "Embedded CSS."},
		{Tag: atom.Script, Name: "script", Categories: CategoryMetadata | CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: CategoryText},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Address of an external script."},
				AttrDef{Name: "type", Rule: ManualRule{}, Desc: "Script type: module, importmap, or a MIME type."},
				AttrDef{Name: "async", Rule: BoolRule{}, Desc: "Execute the script asynchronously."},
				AttrDef{Name: "defer", Rule: BoolRule{}, Desc: "Defer execution until the document is parsed."},
				AttrDef{Name: "nomodule", Rule: BoolRule{}, Desc: "Skip in module-supporting browsers."},
				AttrDef{Name: "integrity", Rule: NonEmptyRule{}, Desc: "Subresource integrity hash."},
				AttrDef{Name: "crossorigin", Rule: crossOriginRule, Desc: "CORS mode for the fetch."},
				AttrDef{Name: "referrerpolicy", Rule: referrerPolicyRule, Desc: "Referrer policy for the fetch."},
			)},
			Desc: "Embedded or external script."},
		{Tag: atom.Noscript, Name: "noscript", Categories: CategoryMetadata | CategoryFlow | CategoryPhrasing,
			Policy: Transparent{},
			Attrs:  GlobalOnly{},
			Desc:   "Fallback content when scripting is disabled."},
		{Tag: atom.Template, Name: "template", Categories: CategoryMetadata | CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: CategoryAll},
			Attrs:  GlobalOnly{},
			Desc:   "Inert fragment cloned by scripts; accepts any content."},
		{Tag: 0, Name: "slot", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Transparent{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Slot name."},
			)},
			Desc: "Shadow-tree insertion point."},

		// Sections and headings.
		{Tag: atom.Article, Name: "article", Categories: CategoryFlow | CategorySectioning,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Self-contained composition."},
		{Tag: atom.Section, Name: "section", Categories: CategoryFlow | CategorySectioning,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Generic document section."},
		{Tag: atom.Nav, Name: "nav", Categories: CategoryFlow | CategorySectioning,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Navigation links."},
		{Tag: atom.Aside, Name: "aside", Categories: CategoryFlow | CategorySectioning,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Tangential content."},
		{Tag: atom.H1, Name: "h1", Categories: CategoryFlow | CategoryHeading,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Heading, level 1."},
		{Tag: atom.H2, Name: "h2", Categories: CategoryFlow | CategoryHeading,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Heading, level 2."},
		{Tag: atom.H3, Name: "h3", Categories: CategoryFlow | CategoryHeading,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Heading, level 3."},
		{Tag: atom.H4, Name: "h4", Categories: CategoryFlow | CategoryHeading,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Heading, level 4."},
		{Tag: atom.H5, Name: "h5", Categories: CategoryFlow | CategoryHeading,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Heading, level 5."},
		{Tag: atom.H6, Name: "h6", Categories: CategoryFlow | CategoryHeading,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Heading, level 6."},
		{Tag: atom.Hgroup, Name: "hgroup", Categories: CategoryFlow | CategoryHeading,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.P, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{},
			Desc:   "Heading group: a heading with subheading paragraphs."},
		{Tag: atom.Header, Name: "header", Categories: CategoryFlow,
			Policy: Structural{Accepts: flowContent, ForbiddenDescendants: []atom.Atom{atom.Header, atom.Footer}},
			Attrs:  GlobalOnly{},
			Desc:   "Introductory content for its nearest ancestor section."},
		{Tag: atom.Footer, Name: "footer", Categories: CategoryFlow,
			Policy: Structural{Accepts: flowContent, ForbiddenDescendants: []atom.Atom{atom.Header, atom.Footer}},
			Attrs:  GlobalOnly{},
			Desc:   "Footer for its nearest ancestor section."},
		{Tag: atom.Address, Name: "address", Categories: CategoryFlow,
			Policy: Structural{Accepts: flowContent, ForbiddenDescendants: []atom.Atom{atom.Address, atom.Header, atom.Footer}},
			Attrs:  GlobalOnly{},
			Desc:   "Contact information."},
		{Tag: atom.Main, Name: "main", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Dominant content of the document."},
		{Tag: 0, Name: "search", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Search or filtering controls."},

		// Grouping content.
		{Tag: atom.P, Name: "p", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{},
			Desc: "Paragraph."},
		{Tag: atom.Hr, Name: "hr", Categories: CategoryFlow,
			Policy: ModelOnly{}, Attrs: GlobalOnly{},
			Desc: "Thematic break. Void."},
		{Tag: atom.Pre, Name: "pre", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{},
			Desc: "Preformatted text."},
		{Tag: atom.Blockquote, Name: "blockquote", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: flowContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "cite", Rule: URLRule{}, Desc: "Source of the quotation."},
			)},
			Desc: "Quoted section."},
		{Tag: atom.Ol, Name: "ol", Categories: CategoryFlow,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Li, atom.Script, atom.Template}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "reversed", Rule: BoolRule{}, Desc: "Number the list downwards."},
				AttrDef{Name: "start", Rule: FuncRule{Fn: integerRule}, Desc: "Ordinal value of the first item."},
				AttrDef{Name: "type", Rule: EnumRule{Tokens: []string{"1", "a", "A", "i", "I"}, Card: One}, Desc: "Numbering style."},
			)},
			Desc: "Ordered list."},
		{Tag: atom.Ul, Name: "ul", Categories: CategoryFlow,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Li, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{},
			Desc:   "Unordered list."},
		{Tag: atom.Menu, Name: "menu", Categories: CategoryFlow,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Li, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{},
			Desc:   "Toolbar or list of commands."},
		{Tag: atom.Li, Name: "li", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: flowContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "value", Rule: FuncRule{Fn: integerRule}, Desc: "Ordinal value of the item."},
			)},
			Desc: "List item; only valid inside ol, ul, or menu."},
		{Tag: atom.Dl, Name: "dl", Categories: CategoryFlow,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Dt, atom.Dd, atom.Div, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{},
			Desc:   "Description list."},
		{Tag: atom.Dt, Name: "dt", Categories: CategoryNone,
			Policy: Structural{Accepts: flowContent, ForbiddenDescendants: []atom.Atom{atom.Header, atom.Footer}},
			Attrs:  GlobalOnly{},
			Desc:   "Term in a description list."},
		{Tag: atom.Dd, Name: "dd", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Description in a description list."},
		{Tag: atom.Figure, Name: "figure", Categories: CategoryFlow,
			Policy: Structural{Accepts: flowContent, ExtraChildren: []atom.Atom{atom.Figcaption}},
			Attrs:  GlobalOnly{},
			Desc:   "Self-contained figure, optionally captioned."},
		{Tag: atom.Figcaption, Name: "figcaption", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Caption for a figure."},
		{Tag: atom.Div, Name: "div", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: flowContent}, Attrs: GlobalOnly{},
			Desc: "Generic flow container."},

		// Text-level semantics.
		{Tag: atom.A, Name: "a", Categories: CategoryFlow | CategoryPhrasing | CategoryInteractive,
			Policy: Transparent{}, Reject: CategoryInteractive,
			Attrs: LocalAttrs{Set: linkedResourceAttrs(
				AttrDef{Name: "hreflang", Rule: LangRule{}, Desc: "Language of the destination."},
				AttrDef{Name: "type", Rule: MIMERule{}, Desc: "MIME type of the destination."},
			)},
			Desc: "Hyperlink; transparent content, no interactive descendants."},
		{Tag: atom.Em, Name: "em", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Stress emphasis."},
		{Tag: atom.Strong, Name: "strong", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Strong importance."},
		{Tag: atom.Small, Name: "small", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Side comment, fine print."},
		{Tag: atom.S, Name: "s", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "No longer accurate content."},
		{Tag: atom.Cite, Name: "cite", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Title of a work."},
		{Tag: atom.Q, Name: "q", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "cite", Rule: URLRule{}, Desc: "Source of the quotation."},
			)},
			Desc: "Inline quotation."},
		{Tag: atom.Dfn, Name: "dfn", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Structural{Accepts: phrasingContent, ForbiddenDescendants: []atom.Atom{atom.Dfn}},
			Attrs:  GlobalOnly{},
			Desc:   "Defining instance of a term."},
		{Tag: atom.Abbr, Name: "abbr", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Abbreviation."},
		{Tag: atom.Ruby, Name: "ruby", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Structural{Accepts: phrasingContent, ExtraChildren: []atom.Atom{atom.Rt, atom.Rp}},
			Attrs:  GlobalOnly{},
			Desc:   "Ruby annotation container."},
		{Tag: atom.Rt, Name: "rt", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Ruby text."},
		{Tag: atom.Rp, Name: "rp", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: CategoryText}, Attrs: GlobalOnly{}, Desc: "Ruby fallback parenthesis."},
		{Tag: atom.Data, Name: "data", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "value", Rule: NonEmptyRule{}, Required: true, Desc: "Machine-readable form of the content."},
			)},
			Desc: "Content with a machine-readable value; requires value."},
		{Tag: atom.Time, Name: "time", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "datetime", Rule: NonEmptyRule{}, Desc: "Machine-readable date/time."},
			)},
			Desc: "Date or time."},
		{Tag: atom.Code, Name: "code", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Fragment of computer code."},
		{Tag: atom.Var, Name: "var", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Variable."},
		{Tag: atom.Samp, Name: "samp", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Sample program output."},
		{Tag: atom.Kbd, Name: "kbd", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "User input."},
		{Tag: atom.Sub, Name: "sub", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Subscript."},
		{Tag: atom.Sup, Name: "sup", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Superscript."},
		{Tag: atom.I, Name: "i", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Alternate voice or mood."},
		{Tag: atom.B, Name: "b", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Attention without importance."},
		{Tag: atom.U, Name: "u", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Unarticulated annotation."},
		{Tag: atom.Mark, Name: "mark", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Highlighted relevance."},
		{Tag: atom.Bdi, Name: "bdi", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Bidirectional isolation."},
		{Tag: atom.Bdo, Name: "bdo", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "dir", Rule: EnumRule{Tokens: []string{"ltr", "rtl"}, Card: One}, Required: true, Desc: "Explicit text direction override."},
			)},
			Desc: "Bidirectional override; requires dir."},
		{Tag: atom.Span, Name: "span", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{}, Desc: "Generic phrasing container."},
		{Tag: atom.Br, Name: "br", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{}, Attrs: GlobalOnly{}, Desc: "Line break. Void."},
		{Tag: atom.Wbr, Name: "wbr", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{}, Attrs: GlobalOnly{}, Desc: "Line-break opportunity. Void."},

		// Edits.
		{Tag: atom.Ins, Name: "ins", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Transparent{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "cite", Rule: URLRule{}, Desc: "Source explaining the change."},
				AttrDef{Name: "datetime", Rule: NonEmptyRule{}, Desc: "When the change was made."},
			)},
			Desc: "Inserted content."},
		{Tag: atom.Del, Name: "del", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Transparent{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "cite", Rule: URLRule{}, Desc: "Source explaining the change."},
				AttrDef{Name: "datetime", Rule: NonEmptyRule{}, Desc: "When the change was made."},
			)},
			Desc: "Removed content."},

		// Embedded content.
		{Tag: atom.Picture, Name: "picture", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Source, atom.Img, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{},
			Desc:   "Image with multiple sources."},
		{Tag: atom.Source, Name: "source", Categories: CategoryNone,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Address of the media resource."},
				AttrDef{Name: "type", Rule: MIMERule{}, Desc: "MIME type of the resource."},
				AttrDef{Name: "srcset", Rule: NonEmptyRule{}, Desc: "Candidate images for a picture."},
				AttrDef{Name: "sizes", Rule: NonEmptyRule{}, Desc: "Rendered size hints."},
				AttrDef{Name: "media", Rule: NonEmptyRule{}, Desc: "Media query the source applies to."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Intrinsic width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Intrinsic height in pixels."},
			)},
			Desc: "Media source for picture, audio, or video. Void."},
		{Tag: atom.Img, Name: "img", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded | CategoryInteractive,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Required: true, Desc: "Address of the image."},
				AttrDef{Name: "alt", Rule: ManualRule{}, Desc: "Replacement text; may legitimately be empty."},
				AttrDef{Name: "srcset", Rule: NonEmptyRule{}, Desc: "Candidate images."},
				AttrDef{Name: "sizes", Rule: NonEmptyRule{}, Desc: "Rendered size hints."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Rendered width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Rendered height in pixels."},
				AttrDef{Name: "usemap", Rule: NonEmptyRule{}, Desc: "Image map to use, as #name."},
				AttrDef{Name: "ismap", Rule: BoolRule{}, Desc: "Server-side image map."},
				AttrDef{Name: "crossorigin", Rule: crossOriginRule, Desc: "CORS mode for the fetch."},
				AttrDef{Name: "decoding", Rule: EnumRule{Tokens: []string{"sync", "async", "auto"}, Card: One}, Desc: "Decoding hint."},
				AttrDef{Name: "loading", Rule: EnumRule{Tokens: []string{"lazy", "eager"}, Card: One}, Desc: "Lazy-loading hint."},
				AttrDef{Name: "fetchpriority", Rule: EnumRule{Tokens: []string{"high", "low", "auto"}, Card: One}, Desc: "Fetch priority hint."},
				AttrDef{Name: "referrerpolicy", Rule: referrerPolicyRule, Desc: "Referrer policy for the fetch."},
			)},
			Desc: "Image; requires src. Void."},
		{Tag: atom.Iframe, Name: "iframe", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded | CategoryInteractive,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Address of the nested page."},
				AttrDef{Name: "srcdoc", Rule: ManualRule{}, Desc: "Inline document source."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Browsing-context name."},
				AttrDef{Name: "sandbox", Rule: EnumRule{Tokens: []string{
					"allow-downloads", "allow-forms", "allow-modals", "allow-orientation-lock",
					"allow-pointer-lock", "allow-popups", "allow-popups-to-escape-sandbox",
					"allow-presentation", "allow-same-origin", "allow-scripts",
					"allow-top-navigation", "allow-top-navigation-by-user-activation",
					"allow-top-navigation-to-custom-protocols",
				}, Card: ManyUnique}, Desc: "Sandbox restrictions to lift."},
				AttrDef{Name: "allow", Rule: ManualRule{}, Desc: "Permissions policy."},
				AttrDef{Name: "allowfullscreen", Rule: BoolRule{}, Desc: "Allow requestFullscreen."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Rendered width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Rendered height in pixels."},
				AttrDef{Name: "loading", Rule: EnumRule{Tokens: []string{"lazy", "eager"}, Card: One}, Desc: "Lazy-loading hint."},
				AttrDef{Name: "referrerpolicy", Rule: referrerPolicyRule, Desc: "Referrer policy for the fetch."},
			)},
			Desc: "Nested browsing context; no content."},
		{Tag: atom.Embed, Name: "embed", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded | CategoryInteractive,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Address of the resource."},
				AttrDef{Name: "type", Rule: MIMERule{}, Desc: "MIME type of the resource."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Rendered width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Rendered height in pixels."},
			)},
			Desc: "External plugin content. Void."},
		{Tag: atom.Object, Name: "object", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded,
			Policy: Transparent{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "data", Rule: URLRule{}, Desc: "Address of the resource."},
				AttrDef{Name: "type", Rule: MIMERule{}, Desc: "MIME type of the resource."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Browsing-context name."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Rendered width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Rendered height in pixels."},
			)},
			Desc: "External resource with fallback content."},
		{Tag: atom.Video, Name: "video", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded | CategoryInteractive,
			Policy: Structural{Accepts: flowContent,
				ExtraChildren:        []atom.Atom{atom.Source, atom.Track},
				ForbiddenDescendants: []atom.Atom{atom.Audio, atom.Video}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Address of the media resource."},
				AttrDef{Name: "poster", Rule: URLRule{}, Desc: "Frame to show before playback."},
				AttrDef{Name: "preload", Rule: EnumRule{Tokens: []string{"none", "metadata", "auto"}, Card: ZeroOrOne}, Desc: "Preload hint."},
				AttrDef{Name: "autoplay", Rule: BoolRule{}, Desc: "Start playback automatically."},
				AttrDef{Name: "playsinline", Rule: BoolRule{}, Desc: "Play inline rather than fullscreen."},
				AttrDef{Name: "loop", Rule: BoolRule{}, Desc: "Loop playback."},
				AttrDef{Name: "muted", Rule: BoolRule{}, Desc: "Mute by default."},
				AttrDef{Name: "controls", Rule: BoolRule{}, Desc: "Show playback controls."},
				AttrDef{Name: "crossorigin", Rule: crossOriginRule, Desc: "CORS mode for the fetch."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Rendered width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Rendered height in pixels."},
			)},
			Desc: "Video player; no nested media elements."},
		{Tag: atom.Audio, Name: "audio", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded | CategoryInteractive,
			Policy: Structural{Accepts: flowContent,
				ExtraChildren:        []atom.Atom{atom.Source, atom.Track},
				ForbiddenDescendants: []atom.Atom{atom.Audio, atom.Video}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Address of the media resource."},
				AttrDef{Name: "preload", Rule: EnumRule{Tokens: []string{"none", "metadata", "auto"}, Card: ZeroOrOne}, Desc: "Preload hint."},
				AttrDef{Name: "autoplay", Rule: BoolRule{}, Desc: "Start playback automatically."},
				AttrDef{Name: "loop", Rule: BoolRule{}, Desc: "Loop playback."},
				AttrDef{Name: "muted", Rule: BoolRule{}, Desc: "Mute by default."},
				AttrDef{Name: "controls", Rule: BoolRule{}, Desc: "Show playback controls."},
				AttrDef{Name: "crossorigin", Rule: crossOriginRule, Desc: "CORS mode for the fetch."},
			)},
			Desc: "Audio player; no nested media elements."},
		{Tag: atom.Track, Name: "track", Categories: CategoryNone,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "src", Rule: URLRule{}, Required: true, Desc: "Address of the text track."},
				AttrDef{Name: "kind", Rule: EnumRule{Tokens: []string{"subtitles", "captions", "descriptions", "chapters", "metadata"}, Card: One}, Desc: "Kind of text track."},
				AttrDef{Name: "srclang", Rule: LangRule{}, Desc: "Language of the track text."},
				AttrDef{Name: "label", Rule: NonEmptyRule{}, Desc: "User-visible track title."},
				AttrDef{Name: "default", Rule: BoolRule{}, Desc: "Enable unless preferences say otherwise."},
			)},
			Desc: "Timed text track. Void."},
		{Tag: atom.Map, Name: "map", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Transparent{},
			Attrs: DynamicAttrs{
				Set: NewAttrSet(
					AttrDef{Name: "name", Rule: NonEmptyRule{}, Required: true, Desc: "Name the map is referenced by."},
				),
				validate: mapValidateAttrs,
			},
			Desc: "Image map; requires a name, and id (if present) must equal it."},
		{Tag: atom.Area, Name: "area", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: linkedResourceAttrs(
				AttrDef{Name: "alt", Rule: ManualRule{}, Desc: "Replacement text for the area."},
				AttrDef{Name: "coords", Rule: NonEmptyRule{}, Desc: "Shape coordinates."},
				AttrDef{Name: "shape", Rule: EnumRule{Tokens: []string{"circle", "default", "poly", "rect"}, Card: One}, Desc: "Kind of shape."},
			)},
			Desc: "Hyperlink region in an image map. Void."},
		{Tag: atom.Canvas, Name: "canvas", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded,
			Policy: Transparent{}, Reject: CategoryInteractive,
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Bitmap width in pixels."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Bitmap height in pixels."},
			)},
			Desc: "Scriptable bitmap; fallback subtree allows no interactive content."},
		{Tag: atom.Svg, Name: "svg", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded,
			Policy: Manual{}, AllCategories: CategoryAll,
			Attrs: ManualAttrs{},
			Desc:  "Inline SVG; foreign content, validated elsewhere."},
		{Tag: atom.Math, Name: "math", Categories: CategoryFlow | CategoryPhrasing | CategoryEmbedded,
			Policy: Manual{}, AllCategories: CategoryAll,
			Attrs: ManualAttrs{},
			Desc:  "Inline MathML; foreign content, validated elsewhere."},

		// Tabular data.
		{Tag: atom.Table, Name: "table", Categories: CategoryFlow,
			Policy: Structural{
				ExtraChildren: []atom.Atom{atom.Caption, atom.Colgroup, atom.Thead, atom.Tbody, atom.Tfoot, atom.Tr, atom.Script, atom.Template},
				// Cells outside a row get a pointed message instead of the
				// generic category rejection.
				ForbiddenChildren: []atom.Atom{atom.Td, atom.Th},
			},
			Attrs: GlobalOnly{},
			Desc:  "Table."},
		{Tag: atom.Caption, Name: "caption", Categories: CategoryNone,
			Policy: Structural{Accepts: flowContent, ForbiddenDescendants: []atom.Atom{atom.Table}},
			Attrs:  GlobalOnly{},
			Desc:   "Table caption."},
		{Tag: atom.Colgroup, Name: "colgroup", Categories: CategoryNone,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Col, atom.Template}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "span", Rule: IntRule{Min: 1, Max: 1000}, Desc: "Number of columns spanned."},
			)},
			Desc: "Group of table columns."},
		{Tag: atom.Col, Name: "col", Categories: CategoryNone,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "span", Rule: IntRule{Min: 1, Max: 1000}, Desc: "Number of columns spanned."},
			)},
			Desc: "Table column. Void."},
		{Tag: atom.Thead, Name: "thead", Categories: CategoryNone,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Tr, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{}, Desc: "Table header row group."},
		{Tag: atom.Tbody, Name: "tbody", Categories: CategoryNone,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Tr, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{}, Desc: "Table body row group."},
		{Tag: atom.Tfoot, Name: "tfoot", Categories: CategoryNone,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Tr, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{}, Desc: "Table footer row group."},
		{Tag: atom.Tr, Name: "tr", Categories: CategoryNone,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Td, atom.Th, atom.Script, atom.Template}},
			Attrs:  GlobalOnly{}, Desc: "Table row."},
		{Tag: atom.Td, Name: "td", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: flowContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "colspan", Rule: IntRule{Min: 1, Max: 1000}, Desc: "Columns spanned by the cell."},
				AttrDef{Name: "rowspan", Rule: IntRule{Max: 65534}, Desc: "Rows spanned by the cell."},
				AttrDef{Name: "headers", Rule: NonEmptyRule{}, Desc: "Header cells this cell relates to."},
			)},
			Desc: "Data cell; placement is checked by its row."},
		{Tag: atom.Th, Name: "th", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: flowContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "colspan", Rule: IntRule{Min: 1, Max: 1000}, Desc: "Columns spanned by the cell."},
				AttrDef{Name: "rowspan", Rule: IntRule{Max: 65534}, Desc: "Rows spanned by the cell."},
				AttrDef{Name: "headers", Rule: NonEmptyRule{}, Desc: "Header cells this cell relates to."},
				AttrDef{Name: "scope", Rule: EnumRule{Tokens: []string{"row", "col", "rowgroup", "colgroup"}, Card: One}, Desc: "Cells the header applies to."},
				AttrDef{Name: "abbr", Rule: NonEmptyRule{}, Desc: "Short label for referencing cells."},
			)},
			Desc: "Header cell; placement is checked by its row."},

		// Forms.
		{Tag: atom.Form, Name: "form", Categories: CategoryFlow,
			Policy: Structural{Accepts: flowContent, ForbiddenDescendants: []atom.Atom{atom.Form}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "action", Rule: URLRule{}, Desc: "URL to submit to."},
				AttrDef{Name: "method", Rule: EnumRule{Tokens: []string{"get", "post", "dialog"}, Card: One}, Desc: "HTTP method to submit with."},
				AttrDef{Name: "enctype", Rule: EnumRule{Tokens: []string{"application/x-www-form-urlencoded", "multipart/form-data", "text/plain"}, Card: One}, Desc: "Entry-list encoding."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Form name."},
				AttrDef{Name: "accept-charset", Rule: NonEmptyRule{}, Desc: "Submission character encoding."},
				AttrDef{Name: "autocomplete", Rule: EnumRule{Tokens: []string{"on", "off"}, Card: One}, Desc: "Default autofill behavior."},
				AttrDef{Name: "novalidate", Rule: BoolRule{}, Desc: "Skip constraint validation on submit."},
				AttrDef{Name: "target", Rule: NonEmptyRule{}, Desc: "Browsing context for the response."},
				AttrDef{Name: "rel", Rule: NonEmptyRule{}, Desc: "Relationship of the target resource."},
			)},
			Desc: "Form; forms do not nest."},
		{Tag: atom.Label, Name: "label", Categories: CategoryFlow | CategoryPhrasing | CategoryInteractive,
			Policy: Structural{Accepts: phrasingContent, ForbiddenDescendants: []atom.Atom{atom.Label}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "for", Rule: NonEmptyRule{}, Desc: "id of the labeled control."},
			)},
			Desc: "Caption for a form control; labels do not nest."},
		{Tag: atom.Input, Name: "input", Categories: CategoryFlow | CategoryPhrasing | CategoryInteractive,
			Policy: ModelOnly{},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "type", Rule: EnumRule{Tokens: []string{
					"hidden", "text", "search", "tel", "url", "email", "password",
					"date", "month", "week", "time", "datetime-local", "number",
					"range", "color", "checkbox", "radio", "file", "submit",
					"image", "reset", "button",
				}, Card: One}, Desc: "Control type."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Name for form submission."},
				AttrDef{Name: "value", Rule: ManualRule{}, Desc: "Initial value; syntax depends on type."},
				AttrDef{Name: "placeholder", Rule: ManualRule{}, Desc: "Hint shown while empty."},
				AttrDef{Name: "required", Rule: BoolRule{}, Desc: "Value required for submission."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable the control."},
				AttrDef{Name: "readonly", Rule: BoolRule{}, Desc: "Value cannot be edited."},
				AttrDef{Name: "checked", Rule: BoolRule{}, Desc: "Checked by default."},
				AttrDef{Name: "multiple", Rule: BoolRule{}, Desc: "Allow multiple values."},
				AttrDef{Name: "min", Rule: ManualRule{}, Desc: "Minimum value; syntax depends on type."},
				AttrDef{Name: "max", Rule: ManualRule{}, Desc: "Maximum value; syntax depends on type."},
				AttrDef{Name: "step", Rule: ManualRule{}, Desc: "Value granularity."},
				AttrDef{Name: "minlength", Rule: IntRule{}, Desc: "Minimum value length."},
				AttrDef{Name: "maxlength", Rule: IntRule{}, Desc: "Maximum value length."},
				AttrDef{Name: "size", Rule: IntRule{Min: 1}, Desc: "Visible width in characters."},
				AttrDef{Name: "pattern", Rule: NonEmptyRule{}, Desc: "Regular expression the value must match."},
				AttrDef{Name: "accept", Rule: NonEmptyRule{}, Desc: "Accepted file types."},
				AttrDef{Name: "autocomplete", Rule: ManualRule{}, Desc: "Autofill detail tokens."},
				AttrDef{Name: "list", Rule: NonEmptyRule{}, Desc: "id of a datalist of suggestions."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
				AttrDef{Name: "src", Rule: URLRule{}, Desc: "Image address for type=image."},
				AttrDef{Name: "alt", Rule: ManualRule{}, Desc: "Replacement text for type=image."},
				AttrDef{Name: "width", Rule: IntRule{}, Desc: "Rendered width for type=image."},
				AttrDef{Name: "height", Rule: IntRule{}, Desc: "Rendered height for type=image."},
			)},
			Desc: "Form control. Void."},
		{Tag: atom.Button, Name: "button", Categories: CategoryFlow | CategoryPhrasing | CategoryInteractive,
			Policy: ModelOnly{Accepts: phrasingContent}, Reject: CategoryInteractive,
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "type", Rule: EnumRule{Tokens: []string{"submit", "reset", "button"}, Card: One}, Desc: "Button behavior."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Name for form submission."},
				AttrDef{Name: "value", Rule: ManualRule{}, Desc: "Value for form submission."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable the control."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
				AttrDef{Name: "formaction", Rule: URLRule{}, Desc: "Submission URL override."},
				AttrDef{Name: "formmethod", Rule: EnumRule{Tokens: []string{"get", "post", "dialog"}, Card: One}, Desc: "Submission method override."},
				AttrDef{Name: "formnovalidate", Rule: BoolRule{}, Desc: "Skip validation on submit."},
				AttrDef{Name: "formtarget", Rule: NonEmptyRule{}, Desc: "Submission target override."},
				AttrDef{Name: "popovertarget", Rule: NonEmptyRule{}, Desc: "id of the popover to toggle."},
				AttrDef{Name: "popovertargetaction", Rule: EnumRule{Tokens: []string{"toggle", "show", "hide"}, Card: One}, Desc: "Action on the target popover."},
			)},
			Desc: "Button; no interactive descendants."},
		{Tag: atom.Select, Name: "select", Categories: CategoryFlow | CategoryPhrasing | CategoryInteractive,
			Policy: Structural{ExtraChildren: []atom.Atom{atom.Option, atom.Optgroup, atom.Hr, atom.Script, atom.Template}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Name for form submission."},
				AttrDef{Name: "multiple", Rule: BoolRule{}, Desc: "Allow selecting several options."},
				AttrDef{Name: "required", Rule: BoolRule{}, Desc: "Selection required for submission."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable the control."},
				AttrDef{Name: "size", Rule: IntRule{Min: 1}, Desc: "Rows to show."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
				AttrDef{Name: "autocomplete", Rule: ManualRule{}, Desc: "Autofill detail tokens."},
			)},
			Desc: "Option-selection control."},
		{Tag: atom.Optgroup, Name: "optgroup", Categories: CategoryNone,
			Policy:        CustomPolicy{validate: optgroupValidate, complete: optgroupComplete},
			AllCategories: CategoryNone,
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "label", Rule: NonEmptyRule{}, Desc: "Group label; substitutes for a legend child."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable the whole group."},
			)},
			Desc: "Group of options; needs a label attribute or a legend child."},
		{Tag: atom.Option, Name: "option", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: CategoryText},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "label", Rule: NonEmptyRule{}, Desc: "User-visible label."},
				AttrDef{Name: "value", Rule: ManualRule{}, Desc: "Value for form submission."},
				AttrDef{Name: "selected", Rule: BoolRule{}, Desc: "Selected by default."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable the option."},
			)},
			Desc: "Option in a select or datalist."},
		{Tag: atom.Datalist, Name: "datalist", Categories: CategoryFlow | CategoryPhrasing,
			Policy:        CustomPolicy{validate: datalistValidate, complete: datalistComplete},
			AllCategories: phrasingContent,
			Attrs:         GlobalOnly{},
			Desc:          "Predefined options for other controls: either phrasing content or option elements, not both."},
		{Tag: atom.Textarea, Name: "textarea", Categories: CategoryFlow | CategoryPhrasing | CategoryInteractive,
			Policy: ModelOnly{Accepts: CategoryText},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Name for form submission."},
				AttrDef{Name: "rows", Rule: IntRule{Min: 1}, Desc: "Visible text rows."},
				AttrDef{Name: "cols", Rule: IntRule{Min: 1}, Desc: "Visible width in characters."},
				AttrDef{Name: "placeholder", Rule: ManualRule{}, Desc: "Hint shown while empty."},
				AttrDef{Name: "required", Rule: BoolRule{}, Desc: "Value required for submission."},
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable the control."},
				AttrDef{Name: "readonly", Rule: BoolRule{}, Desc: "Value cannot be edited."},
				AttrDef{Name: "minlength", Rule: IntRule{}, Desc: "Minimum value length."},
				AttrDef{Name: "maxlength", Rule: IntRule{}, Desc: "Maximum value length."},
				AttrDef{Name: "wrap", Rule: EnumRule{Tokens: []string{"soft", "hard"}, Card: One}, Desc: "Line-wrapping for submission."},
				AttrDef{Name: "autocomplete", Rule: ManualRule{}, Desc: "Autofill detail tokens."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
			)},
			Desc: "Multiline text control; text only."},
		{Tag: atom.Output, Name: "output", Categories: CategoryFlow | CategoryPhrasing,
			Policy: ModelOnly{Accepts: phrasingContent},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "for", Rule: NonEmptyRule{}, Desc: "ids of the contributing controls."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Name for form submission."},
			)},
			Desc: "Result of a calculation."},
		{Tag: atom.Progress, Name: "progress", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Structural{Accepts: phrasingContent, ForbiddenDescendants: []atom.Atom{atom.Progress}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "value", Rule: FuncRule{Fn: floatRule}, Desc: "Current progress."},
				AttrDef{Name: "max", Rule: FuncRule{Fn: floatRule}, Desc: "Value meaning complete."},
			)},
			Desc: "Task progress; progress bars do not nest."},
		{Tag: atom.Meter, Name: "meter", Categories: CategoryFlow | CategoryPhrasing,
			Policy: Structural{Accepts: phrasingContent, ForbiddenDescendants: []atom.Atom{atom.Meter}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "value", Rule: FuncRule{Fn: floatRule}, Required: true, Desc: "Measured value."},
				AttrDef{Name: "min", Rule: FuncRule{Fn: floatRule}, Desc: "Lower bound."},
				AttrDef{Name: "max", Rule: FuncRule{Fn: floatRule}, Desc: "Upper bound."},
				AttrDef{Name: "low", Rule: FuncRule{Fn: floatRule}, Desc: "Upper bound of the low range."},
				AttrDef{Name: "high", Rule: FuncRule{Fn: floatRule}, Desc: "Lower bound of the high range."},
				AttrDef{Name: "optimum", Rule: FuncRule{Fn: floatRule}, Desc: "Optimal value."},
			)},
			Desc: "Scalar gauge; requires value, meters do not nest."},
		{Tag: atom.Fieldset, Name: "fieldset", Categories: CategoryFlow,
			Policy: Structural{Accepts: flowContent, ExtraChildren: []atom.Atom{atom.Legend}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "disabled", Rule: BoolRule{}, Desc: "Disable all contained controls."},
				AttrDef{Name: "form", Rule: NonEmptyRule{}, Desc: "Associated form element id."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Name for form submission."},
			)},
			Desc: "Group of form controls."},
		{Tag: atom.Legend, Name: "legend", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{},
			Desc: "Caption for a fieldset or optgroup."},

		// Interactive elements.
		{Tag: atom.Details, Name: "details", Categories: CategoryFlow | CategoryInteractive,
			Policy: Structural{Accepts: flowContent, ExtraChildren: []atom.Atom{atom.Summary}},
			Attrs: LocalAttrs{Set: NewAttrSet(
				AttrDef{Name: "open", Rule: BoolRule{}, Desc: "Show the details."},
				AttrDef{Name: "name", Rule: NonEmptyRule{}, Desc: "Exclusive-accordion group name."},
			)},
			Desc: "Disclosure widget."},
		{Tag: atom.Summary, Name: "summary", Categories: CategoryNone,
			Policy: ModelOnly{Accepts: phrasingContent}, Attrs: GlobalOnly{},
			Desc: "Caption for a details element."},
		{Tag: atom.Dialog, Name: "dialog", Categories: CategoryFlow,
			Policy: ModelOnly{Accepts: flowContent},
			Attrs: LocalAttrs{
				Set: NewAttrSet(
					AttrDef{Name: "open", Rule: BoolRule{}, Desc: "Show the dialog."},
				),
				// Focus order of a dialog is managed by the user agent.
				Reject: []string{"tabindex"},
			},
			Desc: "Dialog box; tabindex is not allowed here."},
	}
}

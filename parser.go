package htmlint

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// voidElements never hold content and never push onto the open-element
// stack.
var voidElements = map[atom.Atom]bool{
	atom.Area: true, atom.Base: true, atom.Br: true, atom.Col: true,
	atom.Embed: true, atom.Hr: true, atom.Img: true, atom.Input: true,
	atom.Link: true, atom.Meta: true, atom.Param: true, atom.Source: true,
	atom.Track: true, atom.Wbr: true,
}

// Parse tokenizes src and builds the arena tree. Offsets are tracked from
// the raw length of each token, so every node and attribute carries a
// byte span into src. The builder is deliberately literal: it nests
// elements exactly as written and performs no tag-soup repair.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	logger := getTraceLogFromContext(ctx)
	logger.Debug("parse", slog.Int("bytes", len(src)))

	if uint64(len(src)) > uint64(^uint32(0)) {
		return nil, ErrSourceTooLarge
	}

	b := &treeBuilder{
		tree: &Tree{Source: src},
	}
	b.push(b.append(Node{
		Kind:   DocumentNode,
		Span:   Span{Start: 0, End: uint32(len(src))},
		Parent: NoNode,
	}, NoNode))

	z := html.NewTokenizer(bytes.NewReader(src))
	offset := uint32(0)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			break
		}
		raw := z.Raw()
		start := offset
		offset += uint32(len(raw))
		span := Span{Start: start, End: offset}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			n := Node{
				Kind:       ElementNode,
				Name:       string(name),
				Span:       span,
				OpenEnd:    span.End,
				CloseStart: span.End,
			}
			n.Tag = atom.Lookup(name)
			if hasAttr {
				n.Attrs = collectAttrs(z, raw, start)
			}
			idx := b.append(n, b.top())
			if tt == html.StartTagToken && !voidElements[n.Tag] {
				b.push(idx)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			b.close(string(name), span)
		case html.TextToken:
			b.append(Node{
				Kind:       TextNode,
				Span:       span,
				OpenEnd:    span.Start,
				CloseStart: span.End,
			}, b.top())
		case html.CommentToken:
			b.append(Node{
				Kind:       CommentNode,
				Span:       span,
				OpenEnd:    span.Start,
				CloseStart: span.End,
			}, b.top())
		case html.DoctypeToken:
			b.append(Node{
				Kind:       DoctypeNode,
				Name:       string(z.Text()),
				Span:       span,
				OpenEnd:    span.Start,
				CloseStart: span.End,
			}, b.top())
		}
	}

	// Unclosed elements stretch to the end of the input.
	for len(b.stack) > 1 {
		n := b.tree.Node(b.stack[len(b.stack)-1])
		n.Span.End = uint32(len(src))
		n.CloseStart = uint32(len(src))
		b.pop()
	}
	return b.tree, nil
}

// treeBuilder appends nodes into the arena, maintaining the
// first-child/next-sibling links and the open-element stack.
type treeBuilder struct {
	tree      *Tree
	stack     []NodeIdx
	lastChild []NodeIdx // parallel to stack: last child appended so far
}

func (b *treeBuilder) append(n Node, parent NodeIdx) NodeIdx {
	n.Parent = parent
	n.FirstChild = NoNode
	n.Next = NoNode
	idx := NodeIdx(len(b.tree.Nodes))
	b.tree.Nodes = append(b.tree.Nodes, n)

	if parent != NoNode {
		top := len(b.stack) - 1
		if prev := b.lastChild[top]; prev == NoNode {
			b.tree.Node(parent).FirstChild = idx
		} else {
			b.tree.Node(prev).Next = idx
		}
		b.lastChild[top] = idx
	}
	return idx
}

func (b *treeBuilder) push(idx NodeIdx) {
	b.stack = append(b.stack, idx)
	b.lastChild = append(b.lastChild, NoNode)
}

func (b *treeBuilder) pop() {
	b.stack = b.stack[:len(b.stack)-1]
	b.lastChild = b.lastChild[:len(b.lastChild)-1]
}

func (b *treeBuilder) top() NodeIdx {
	return b.stack[len(b.stack)-1]
}

// close pops the open-element stack down to the named element, closing it
// and any elements left open inside it. Stray end tags are ignored.
func (b *treeBuilder) close(name string, endTag Span) {
	match := -1
	for i := len(b.stack) - 1; i >= 1; i-- {
		if strings.EqualFold(b.tree.Node(b.stack[i]).Name, name) {
			match = i
			break
		}
	}
	if match < 0 {
		return
	}
	for len(b.stack) > match {
		n := b.tree.Node(b.stack[len(b.stack)-1])
		n.CloseStart = endTag.Start
		n.Span.End = endTag.End
		b.pop()
	}
}

// collectAttrs pairs the tokenizer's unescaped attribute name/value pairs
// with the byte spans scanned out of the raw start tag. When the raw scan
// disagrees with the tokenizer (exotic malformed input), spans fall back
// to the whole tag.
func collectAttrs(z *html.Tokenizer, raw []byte, base uint32) []Attr {
	spans := scanRawAttrs(raw, base)
	var attrs []Attr
	for i := 0; ; i++ {
		key, val, more := z.TagAttr()
		a := Attr{Name: string(key), Value: string(val)}
		if i < len(spans) {
			a.NameSpan = spans[i].name
			a.ValueSpan = spans[i].value
		} else {
			whole := Span{Start: base, End: base + uint32(len(raw))}
			a.NameSpan, a.ValueSpan = whole, whole
		}
		attrs = append(attrs, a)
		if !more {
			break
		}
	}
	return attrs
}

type rawAttrSpan struct {
	name  Span
	value Span
}

// scanRawAttrs walks the raw bytes of a start tag and records where each
// attribute name and value sits. Attributes without a value get a
// zero-width value span at the end of the name.
func scanRawAttrs(raw []byte, base uint32) []rawAttrSpan {
	isSpace := func(c byte) bool {
		return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
	}
	i := 1 // skip '<'
	for i < len(raw) && !isSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++ // tag name
	}
	var out []rawAttrSpan
	for i < len(raw) {
		for i < len(raw) && (isSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}
		nameStart := i
		for i < len(raw) && !isSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		sp := rawAttrSpan{
			name: Span{Start: base + uint32(nameStart), End: base + uint32(i)},
		}
		sp.value = Span{Start: sp.name.End, End: sp.name.End}
		j := i
		for j < len(raw) && isSpace(raw[j]) {
			j++
		}
		if j < len(raw) && raw[j] == '=' {
			j++
			for j < len(raw) && isSpace(raw[j]) {
				j++
			}
			valStart := j
			if j < len(raw) && (raw[j] == '"' || raw[j] == '\'') {
				quote := raw[j]
				j++
				valStart = j
				for j < len(raw) && raw[j] != quote {
					j++
				}
				sp.value = Span{Start: base + uint32(valStart), End: base + uint32(j)}
				if j < len(raw) {
					j++ // closing quote
				}
			} else {
				for j < len(raw) && !isSpace(raw[j]) && raw[j] != '>' {
					j++
				}
				sp.value = Span{Start: base + uint32(valStart), End: base + uint32(j)}
			}
			i = j
		}
		out = append(out, sp)
	}
	return out
}

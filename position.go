package htmlint

import (
	"bytes"

	"github.com/lestrrat-go/strcursor"
)

// Position is the human-oriented form of a byte offset, for renderers
// that report diagnostics to people rather than machines.
type Position struct {
	Line   int
	Column int
	// LineText is the source line the offset falls on.
	LineText string
}

// PositionOf maps a byte offset in src to a line/column position. The
// scan is linear from the start of the document; rendering is rare enough
// that simplicity wins over an index.
func PositionOf(src []byte, offset uint32) Position {
	cur := strcursor.NewByteCursor(bytes.NewReader(src))
	for pos := uint32(0); pos < offset && !cur.Done(); pos++ {
		cur.Advance(1)
	}
	return Position{
		Line:     cur.LineNumber(),
		Column:   cur.Column(),
		LineText: cur.Line(),
	}
}

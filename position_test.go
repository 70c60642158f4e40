package htmlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionOf(t *testing.T) {
	src := []byte("<div>\n  <p>hi</p>\n</div>\n")

	p := PositionOf(src, 0)
	assert.Equal(t, 1, p.Line)
	assert.Equal(t, 1, p.Column)

	p = PositionOf(src, uint32(len("<div>\n  ")))
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, 3, p.Column)
	assert.Contains(t, p.LineText, "<p>hi</p>")

	p = PositionOf(src, uint32(len("<div>\n  <p>hi</p>\n")))
	assert.Equal(t, 3, p.Line)
}

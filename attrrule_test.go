package htmlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoolRule(t *testing.T) {
	r := BoolRule{}
	assert.NoError(t, r.ValidateAttr("disabled", ""))
	assert.NoError(t, r.ValidateAttr("disabled", "disabled"))
	assert.NoError(t, r.ValidateAttr("disabled", "DISABLED"))
	assert.Error(t, r.ValidateAttr("disabled", "true"))
}

func TestIntRule(t *testing.T) {
	r := IntRule{Min: 1, Max: 1000}
	assert.NoError(t, r.ValidateAttr("colspan", "1"))
	assert.NoError(t, r.ValidateAttr("colspan", " 42 "))
	assert.Error(t, r.ValidateAttr("colspan", "0"), "below the minimum")
	assert.Error(t, r.ValidateAttr("colspan", "1001"), "above the maximum")
	assert.Error(t, r.ValidateAttr("colspan", "-1"))
	assert.Error(t, r.ValidateAttr("colspan", "x"))

	unbounded := IntRule{}
	assert.NoError(t, unbounded.ValidateAttr("width", "99999"), "zero max means unbounded")
}

func TestURLRule(t *testing.T) {
	r := URLRule{}
	assert.NoError(t, r.ValidateAttr("href", "/relative"))
	assert.NoError(t, r.ValidateAttr("href", "https://example.com/a?b=c"))
	assert.Error(t, r.ValidateAttr("href", ""))
	assert.Error(t, r.ValidateAttr("href", "   "))
	assert.Error(t, r.ValidateAttr("href", "http://bad\x7f.example"))
}

func TestMIMERule(t *testing.T) {
	r := MIMERule{}
	assert.NoError(t, r.ValidateAttr("type", "text/css"))
	assert.NoError(t, r.ValidateAttr("type", "image/svg+xml"))
	assert.Error(t, r.ValidateAttr("type", "not a mime type"))
	assert.Error(t, r.ValidateAttr("type", ""))
}

func TestLangRule(t *testing.T) {
	r := LangRule{}
	assert.NoError(t, r.ValidateAttr("lang", ""), "empty means unknown language")
	assert.NoError(t, r.ValidateAttr("lang", "en"))
	assert.NoError(t, r.ValidateAttr("lang", "pt-BR"))
	assert.Error(t, r.ValidateAttr("lang", "not a tag"))
}

func TestIDRule(t *testing.T) {
	r := IDRule{}
	assert.NoError(t, r.ValidateAttr("id", "a-1"))
	assert.Error(t, r.ValidateAttr("id", ""))
	assert.Error(t, r.ValidateAttr("id", "a b"))
}

func TestEnumRule(t *testing.T) {
	t.Run("one", func(t *testing.T) {
		r := EnumRule{Tokens: []string{"ltr", "rtl"}, Card: One}
		assert.NoError(t, r.ValidateAttr("dir", "ltr"))
		assert.NoError(t, r.ValidateAttr("dir", "RTL"), "matching is case-insensitive")
		assert.Error(t, r.ValidateAttr("dir", ""))
		assert.Error(t, r.ValidateAttr("dir", "ltr rtl"))
		assert.Error(t, r.ValidateAttr("dir", "up"))
	})
	t.Run("zero or one", func(t *testing.T) {
		r := EnumRule{Tokens: []string{"hidden", "until-found"}, Card: ZeroOrOne}
		assert.NoError(t, r.ValidateAttr("hidden", ""))
		assert.NoError(t, r.ValidateAttr("hidden", "until-found"))
		assert.Error(t, r.ValidateAttr("hidden", "hidden until-found"))
	})
	t.Run("many unique", func(t *testing.T) {
		r := EnumRule{Tokens: []string{"a", "b", "c"}, Card: ManyUnique}
		assert.NoError(t, r.ValidateAttr("x", ""))
		assert.NoError(t, r.ValidateAttr("x", "a c"))
		assert.Error(t, r.ValidateAttr("x", "a a"), "repeated token")
		assert.Error(t, r.ValidateAttr("x", "a d"))
	})
	t.Run("enumerates its tokens", func(t *testing.T) {
		r := EnumRule{Tokens: []string{"ltr", "rtl"}, Card: One}
		assert.Equal(t, []string{"ltr", "rtl"}, r.ValueSet())
	})
}

func TestFuncRule(t *testing.T) {
	r := FuncRule{Fn: integerRule}
	assert.NoError(t, r.ValidateAttr("tabindex", "-1"))
	assert.NoError(t, r.ValidateAttr("tabindex", "0"))
	assert.Error(t, r.ValidateAttr("tabindex", "1.5"))
}

func TestManualRule(t *testing.T) {
	assert.NoError(t, ManualRule{}.ValidateAttr("class", "anything goes here"))
}

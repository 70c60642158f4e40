package htmlint

import (
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// AttrRule validates the raw value of one attribute. Implementations that
// draw from a fixed vocabulary also implement ValueEnumerator so the
// completion oracle can offer their values.
type AttrRule interface {
	// ValidateAttr checks value against the rule. A non-nil error carries
	// the rule-specific reason used for the invalid-attribute-value
	// diagnostic. name is the attribute name as written (lowercased).
	ValidateAttr(name, value string) error
}

// ValueEnumerator is implemented by rules whose legal values form a small
// closed set worth offering in completion.
type ValueEnumerator interface {
	ValueSet() []string
}

// BoolRule matches HTML boolean attributes: the value must be empty or a
// case-insensitive match of the attribute's own name.
type BoolRule struct{}

func (BoolRule) ValidateAttr(name, value string) error {
	if value == "" || strings.EqualFold(value, name) {
		return nil
	}
	return fmt.Errorf("boolean attribute %q takes no value (or %[1]q itself)", name)
}

// IntRule matches non-negative integers. Max of zero means unbounded.
type IntRule struct {
	Min uint64
	Max uint64
}

func (r IntRule) ValidateAttr(name, value string) error {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a valid non-negative integer", value)
	}
	if n < r.Min {
		return fmt.Errorf("value %d is below the minimum %d", n, r.Min)
	}
	if r.Max > 0 && n > r.Max {
		return fmt.Errorf("value %d is above the maximum %d", n, r.Max)
	}
	return nil
}

// NonEmptyRule matches any non-empty string.
type NonEmptyRule struct{}

func (NonEmptyRule) ValidateAttr(name, value string) error {
	if value == "" {
		return fmt.Errorf("attribute %q must not be empty", name)
	}
	return nil
}

// URLRule matches non-empty strings that parse as a URL reference.
type URLRule struct{}

func (URLRule) ValidateAttr(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("attribute %q must be a non-empty URL", name)
	}
	if _, err := url.Parse(strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%q is not a valid URL: %v", value, err)
	}
	return nil
}

// MIMERule matches valid MIME type strings.
type MIMERule struct{}

func (MIMERule) ValidateAttr(name, value string) error {
	if _, _, err := mime.ParseMediaType(value); err != nil {
		return fmt.Errorf("%q is not a valid MIME type", value)
	}
	return nil
}

// LangRule matches BCP 47 language tags. The empty string is legal (it
// means the language is unknown).
type LangRule struct{}

func (LangRule) ValidateAttr(name, value string) error {
	if value == "" {
		return nil
	}
	if _, err := language.Parse(value); err != nil {
		return fmt.Errorf("%q is not a valid BCP 47 language tag", value)
	}
	return nil
}

// IDRule matches document-unique identifiers: non-empty, no whitespace.
// Uniqueness across the document is tracked by the validation run, not by
// the rule itself.
type IDRule struct{}

func (IDRule) ValidateAttr(name, value string) error {
	if value == "" {
		return fmt.Errorf("attribute %q must not be empty", name)
	}
	if strings.ContainsAny(value, " \t\n\r\f") {
		return fmt.Errorf("attribute %q must not contain whitespace", name)
	}
	return nil
}

// Cardinality constrains how many tokens an EnumRule value may carry.
type Cardinality uint8

const (
	// One requires exactly one token from the set.
	One Cardinality = iota + 1
	// ZeroOrOne allows an empty value or one token from the set.
	ZeroOrOne
	// ManyUnique allows any number of tokens from the set, each at most
	// once.
	ManyUnique
)

// EnumRule matches values drawn from a closed token set, split on ASCII
// whitespace, subject to the rule's cardinality.
type EnumRule struct {
	Tokens []string
	Card   Cardinality
}

func (r EnumRule) ValidateAttr(name, value string) error {
	fields := strings.Fields(strings.ToLower(value))
	switch r.Card {
	case One:
		if len(fields) != 1 {
			return fmt.Errorf("attribute %q requires exactly one of %s", name, strings.Join(r.Tokens, ", "))
		}
	case ZeroOrOne:
		if len(fields) > 1 {
			return fmt.Errorf("attribute %q takes at most one of %s", name, strings.Join(r.Tokens, ", "))
		}
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !r.member(f) {
			return fmt.Errorf("%q is not one of %s", f, strings.Join(r.Tokens, ", "))
		}
		if r.Card == ManyUnique {
			if _, dup := seen[f]; dup {
				return fmt.Errorf("token %q appears more than once", f)
			}
			seen[f] = struct{}{}
		}
	}
	return nil
}

func (r EnumRule) member(token string) bool {
	for _, t := range r.Tokens {
		if t == token {
			return true
		}
	}
	return false
}

func (r EnumRule) ValueSet() []string {
	return r.Tokens
}

// FuncRule delegates to an arbitrary predicate.
type FuncRule struct {
	Fn func(name, value string) error
}

func (r FuncRule) ValidateAttr(name, value string) error {
	return r.Fn(name, value)
}

// ManualRule marks an attribute whose value is validated elsewhere (by a
// dynamic element policy or a cooperating element); the driver accepts any
// value.
type ManualRule struct{}

func (ManualRule) ValidateAttr(name, value string) error {
	return nil
}

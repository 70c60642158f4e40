package htmlint

import "strings"

// CategorySet is a set of HTML content categories, represented as bit
// flags so that membership tests stay allocation free.
type CategorySet uint16

const (
	CategoryFlow CategorySet = 1 << iota
	CategoryPhrasing
	CategoryMetadata
	CategorySectioning
	CategoryHeading
	CategoryInteractive
	CategoryEmbedded
	CategoryText

	categoryMax
)

// CategoryNone is the empty set: nothing intersects with it.
const CategoryNone CategorySet = 0

// CategoryAll has every flag set: every non-empty set intersects with it.
const CategoryAll = categoryMax - 1

func (c *CategorySet) Set(n CategorySet) {
	*c = *c | n
}

func (c CategorySet) IsSet(n CategorySet) bool {
	return c&n != 0
}

func (c CategorySet) Union(o CategorySet) CategorySet {
	return c | o
}

// Intersects reports whether the two sets share at least one category.
func (c CategorySet) Intersects(o CategorySet) bool {
	return c&o != 0
}

var categoryNames = map[CategorySet]string{
	CategoryFlow:        "flow",
	CategoryPhrasing:    "phrasing",
	CategoryMetadata:    "metadata",
	CategorySectioning:  "sectioning",
	CategoryHeading:     "heading",
	CategoryInteractive: "interactive",
	CategoryEmbedded:    "embedded",
	CategoryText:        "text",
}

func (c CategorySet) String() string {
	if c == CategoryNone {
		return "none"
	}
	var names []string
	for bit := CategorySet(1); bit < categoryMax; bit <<= 1 {
		if c.IsSet(bit) {
			names = append(names, categoryNames[bit])
		}
	}
	return strings.Join(names, "|")
}

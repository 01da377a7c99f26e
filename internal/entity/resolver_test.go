package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const resolverFragment = `<div>
	<span class="number">Order # 112-5939971-8962610</span>
	<span class="placed">Ordered on December 3, 2024 Order # 112-5939971-8962610</span>
	<span class="seller">Sold by: Kitchen Co</span>
	<span class="other-seller">Kitchen Co</span>
	<span class="not-a-date">Arriving soon</span>
	<a class="link" href="/gp/product/B0001">  Product  </a>
</div>`

func TestResolve(t *testing.T) {
	sel := parse(t, resolverFragment)

	cases := []struct {
		name     string
		field    Field
		expected Value
		ok       bool
	}{
		{
			name:     "fuzzy prefix",
			field:    Field{Selectors: []string{"span.number"}, PrefixSplit: "#", PrefixFuzzy: true},
			expected: Value{Text: "112-5939971-8962610"},
			ok:       true,
		},
		{
			name:     "fuzzy prefix keeps text without marker",
			field:    Field{Selectors: []string{"span.other-seller"}, PrefixSplit: "Sold by:", PrefixFuzzy: true},
			expected: Value{Text: "Kitchen Co"},
			ok:       true,
		},
		{
			name:     "exact prefix rejects candidate without marker",
			field:    Field{Selectors: []string{"span.other-seller", "span.seller"}, PrefixSplit: "Sold by:"},
			expected: Value{Text: "Kitchen Co"},
			ok:       true,
		},
		{
			name: "fuzzy suffix with date",
			field: Field{
				Selectors:   []string{"span.placed"},
				SuffixSplit: "order #",
				SuffixFuzzy: true,
				ParseDate:   true,
			},
			expected: Value{
				Text: "Ordered on December 3, 2024",
				Date: time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC),
			},
			ok: true,
		},
		{
			name:     "date field skips candidates without a date",
			field:    Field{Selectors: []string{"span.not-a-date", "span.placed"}, SuffixSplit: "Order #", SuffixFuzzy: true, ParseDate: true},
			expected: Value{Text: "Ordered on December 3, 2024", Date: time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC)},
			ok:       true,
		},
		{
			name:     "attribute",
			field:    Field{Selectors: []string{"a.link"}, Attr: "href"},
			expected: Value{Text: "/gp/product/B0001"},
			ok:       true,
		},
		{
			name:     "text is collapsed and trimmed",
			field:    Field{Selectors: []string{"a.link"}},
			expected: Value{Text: "Product"},
			ok:       true,
		},
		{
			name:  "missing attribute",
			field: Field{Selectors: []string{"span.number"}, Attr: "href"},
			ok:    false,
		},
		{
			name:  "nothing matches",
			field: Field{Selectors: []string{"div.missing", "[[invalid"}},
			ok:    false,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			value, ok := Resolve(sel, test.field)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.expected, value)
		})
	}
}

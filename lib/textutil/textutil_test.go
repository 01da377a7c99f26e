package textutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		text     string
		expected float64
		ok       bool
	}{
		{text: "", ok: false},
		{text: "   ", ok: false},
		{text: "not currency", ok: false},
		{text: "1,234.99", expected: 1234.99, ok: true},
		{text: "$1,234.99", expected: 1234.99, ok: true},
		{text: "  $99.99  ", expected: 99.99, ok: true},
		{text: "-$0.05", expected: -0.05, ok: true},
		{text: "$-2.99", expected: -2.99, ok: true},
		{text: "($2.00)", expected: -2.00, ok: true},
		{text: "Total: $12.00", expected: 12.00, ok: true},
		{text: "Grand Total: $7,777.99", expected: 7777.99, ok: true},
		{text: "1234", expected: 1234, ok: true},
		{text: "£15.78", expected: 15.78, ok: true},
		{text: "Order Total (2 items): $5.01", expected: 5.01, ok: true},
	}

	for _, test := range cases {
		t.Run(test.text, func(t *testing.T) {
			value, ok := ParseCurrency(test.text)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.expected, value)
		})
	}
}

func TestParseCurrencyDecimalAccumulates(t *testing.T) {
	a, ok := ParseCurrencyDecimal("-$1.00")
	require.True(t, ok)
	b, ok := ParseCurrencyDecimal("-$2.89")
	require.True(t, ok)

	sum, _ := a.Add(b).Float64()
	require.Equal(t, -3.89, sum)
}

func TestParseDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	cases := []struct {
		text     string
		expected time.Time
		ok       bool
	}{
		{text: "December 3, 2024", expected: day(2024, time.December, 3), ok: true},
		{text: "Ordered on December 3, 2024", expected: day(2024, time.December, 3), ok: true},
		{text: "Order placed Oct 28, 2024", expected: day(2024, time.October, 28), ok: true},
		{text: "11 October 2024", expected: day(2024, time.October, 11), ok: true},
		{text: "Digital Order: Sept. 5, 2023", expected: day(2023, time.September, 5), ok: true},
		{text: "2025-02-28", expected: day(2025, time.February, 28), ok: true},
		{text: "placed 1/3/2025", expected: day(2025, time.January, 3), ok: true},
		{text: "Return window closed on Feb 2, 2019", expected: day(2019, time.February, 2), ok: true},
		{text: "no date here", ok: false},
		{text: "", ok: false},
	}

	for _, test := range cases {
		t.Run(test.text, func(t *testing.T) {
			value, ok := ParseDate(test.text)
			require.Equal(t, test.ok, ok)
			if test.ok {
				require.Equal(t, test.expected, value)
			}
		})
	}
}

func TestFuzzySplit(t *testing.T) {
	require.Equal(t, " 112-5939971-8962610", AfterFuzzy("Order # 112-5939971-8962610", "#"))
	require.Equal(t, "Ordered on December 3, 2024 ", BeforeFuzzy("Ordered on December 3, 2024 Order # 112-5939971-8962610", "Order #"))
	require.Equal(t, "Ordered on December 3, 2024 ", BeforeFuzzy("Ordered on December 3, 2024 ORDER#112", "order #"))
	require.Equal(t, " 1234", AfterFuzzy("Visa ending  in 1234", "ending in"))
	require.Equal(t, "untouched", AfterFuzzy("untouched", "missing"))

	after, found := After("Sold by: Amazon", "Sold by:")
	require.True(t, found)
	require.Equal(t, " Amazon", after)

	_, found = Before("Sold by Amazon", "Sold by:")
	require.False(t, found)
}

func TestContainsLabel(t *testing.T) {
	require.True(t, ContainsLabel("Item(s)\n   Subtotal:", "subtotal"))
	require.True(t, ContainsLabel("Total  before\ttax:", "total before tax"))
	require.False(t, ContainsLabel("Estimated tax", "refund total"))
}

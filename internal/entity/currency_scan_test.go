package entity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanCurrencyTextFallback(t *testing.T) {
	cfg, _ := testConfig()
	sel := parse(t, `<div class="summary">
		<p>Item(s) Subtotal: $40.00</p>
		<p>Tax (HST): $5.20</p>
		<p>Tax (PST): $1,000.00</p>
		<p>Environmental Fee: $0.10</p>
		<p>Gift wrap fee: $2.00</p>
		<p>Order count: 3</p>
	</div>`)
	p := NewParsable(context.Background(), sel, cfg, "Order")

	cases := []struct {
		label    string
		combine  bool
		expected float64
		ok       bool
	}{
		{label: "subtotal", expected: 40, ok: true},
		{label: "estimated tax", expected: 5.20, ok: true},
		{label: "hst", expected: 5.20, ok: true},
		{label: "pst", expected: 1000, ok: true},
		{label: "fee", expected: 0.10, ok: true},
		{label: "fee", combine: true, expected: 2.10, ok: true},
		{label: "count", ok: false},
		{label: "refund total", ok: false},
	}

	for _, test := range cases {
		t.Run(test.label, func(t *testing.T) {
			value, ok := ScanCurrency(p, test.label, test.combine)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.expected, value)
		})
	}
}

func TestScanCurrencyRowsWinOverText(t *testing.T) {
	cfg, _ := testConfig()
	sel := parse(t, `<div id="od-subtotals">
		<div class="a-row"><div class="a-column">Refund Total:</div><div class="a-column a-span-last">$12.00</div></div>
		<div class="a-row"><div class="a-column">Refund Total:</div><div class="a-column a-span-last">$8.00</div></div>
		<div class="a-row"><div class="a-column">Refund Total:</div></div>
	</div>`)
	p := NewParsable(context.Background(), sel, cfg, "Order")

	value, ok := ScanCurrency(p, "refund total", false)
	require.True(t, ok)
	require.Equal(t, 12.0, value)

	value, ok = ScanCurrency(p, "refund total", true)
	require.True(t, ok)
	require.Equal(t, 20.0, value)
}

func TestScanCurrencyJurisdictionWordBoundary(t *testing.T) {
	cfg, _ := testConfig()

	cases := []struct {
		name     string
		html     string
		label    string
		expected float64
		ok       bool
	}{
		{
			name:  "hst inside a longer word",
			html:  `<div><p>Tax (CHST): $3.00</p><p>Tax (PSTR): $4.00</p></div>`,
			label: "hst",
		},
		{
			name:  "pst inside a longer word",
			html:  `<div><p>Tax (CHST): $3.00</p><p>Tax (PSTR): $4.00</p></div>`,
			label: "pst",
		},
		{
			name:     "hst after a longer word",
			html:     `<div><p>Tax (CHST): $3.00</p><p>Tax (HST): $1.50</p></div>`,
			label:    "hst",
			expected: 1.50,
			ok:       true,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			p := NewParsable(context.Background(), parse(t, test.html), cfg, "Order")
			value, ok := ScanCurrency(p, test.label, false)
			require.Equal(t, test.ok, ok)
			require.Equal(t, test.expected, value)
		})
	}
}

package entity

import (
	"fmt"
	"regexp"
	"strings"

	"amazonorders/lib/htmlutil"
	"amazonorders/lib/textutil"

	"github.com/shopspring/decimal"
)

var estimatedTaxRegex = regexp.MustCompile(`(?i)Tax \(.*?\):\s*([$\d.,]+)`)

// jurisdiction taxes are listed as "Tax (HST):" style rows
var jurisdictionLabels = map[string]bool{
	"hst": true,
	"pst": true,
}

// ScanCurrency looks through the subtotal rows of the order for rows whose text
// contains label. With combine every matching row is summed, otherwise the
// first row with an amount wins. When no row matches, the page text is searched
// for "<label>: <amount>".
func ScanCurrency(p Parsable, label string, combine bool) (float64, bool) {
	s := p.Config.Selectors
	total := decimal.Zero
	found := false

	rows := htmlutil.Select(p.Sel, s.SubtotalsRow)
	for i := range rows.Nodes {
		row := rows.Eq(i)
		if !textutil.ContainsLabel(htmlutil.GetText(row.Nodes[0]), label) {
			continue
		}
		if htmlutil.Select(row, s.SubtotalsPreload).Length() > 0 {
			continue
		}
		inner := htmlutil.SelectOne(row, s.SubtotalsInner...)
		if inner.Length() == 0 {
			continue
		}

		amount, ok := textutil.ParseCurrencyDecimal(htmlutil.CleanText(inner))
		if ok {
			total = total.Add(amount)
			found = true
		}
		if !combine {
			break
		}
	}

	if !found {
		total, found = scanCurrencyText(htmlutil.JoinedText(p.Sel, " "), label, combine)
		if found {
			p.Config.tel().ReportDebug("currency fell back to page text", label)
		}
	}
	if !found {
		return 0, false
	}
	value, _ := total.Float64()
	return value, true
}

func currencyTextRegex(label string) *regexp.Regexp {
	label = textutil.NormalizeLabel(label)
	if label == "estimated tax" {
		return estimatedTaxRegex
	}
	quoted := regexp.QuoteMeta(label)
	if jurisdictionLabels[label] {
		return regexp.MustCompile(fmt.Sprintf(`(?i)Tax[^$\n]*\b%s\b[^$\d]*:\s*([$\d.,]+)`, quoted))
	}
	return regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b[^$\d]*:\s*([$\d.,]+)`, quoted))
}

func scanCurrencyText(text, label string, combine bool) (decimal.Decimal, bool) {
	total := decimal.Zero
	found := false
	for _, match := range currencyTextRegex(label).FindAllStringSubmatch(text, -1) {
		amount := match[1]
		if !strings.ContainsAny(amount, ".$,") {
			continue
		}
		value, ok := textutil.ParseCurrencyDecimal(amount)
		if ok {
			total = total.Add(value)
			found = true
		}
		if !combine {
			break
		}
	}
	return total, found
}

// CurrencyLabel is ScanCurrency as a Strategy.
func CurrencyLabel(label string, combine bool) Strategy[float64] {
	return func(p Parsable) (float64, bool) {
		return ScanCurrency(p, label, combine)
	}
}

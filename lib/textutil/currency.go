package textutil

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	symbolAmountRegex = regexp.MustCompile(`([-−(]?)\s*[$£€]\s*(-?)\s*(\d[\d,]*(?:\.\d+)?)`)
	bareAmountRegex   = regexp.MustCompile(`([-−(]?)\s*()(\d[\d,]*(?:\.\d+)?)`)
)

// ParseCurrencyDecimal extracts the first monetary amount out of free-form text such as
// "$1,234.99", "Total: -$0.05" or "($2.00)". Amounts written with a currency symbol are
// preferred over bare numbers. The second return is false when the text carries no
// numeric content.
func ParseCurrencyDecimal(text string) (decimal.Decimal, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return decimal.Zero, false
	}

	loc := symbolAmountRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		loc = bareAmountRegex.FindStringSubmatchIndex(text)
	}
	if loc == nil {
		return decimal.Zero, false
	}

	sign := text[loc[2]:loc[3]]
	innerSign := text[loc[4]:loc[5]]
	number := strings.ReplaceAll(text[loc[6]:loc[7]], ",", "")
	rest := strings.TrimSpace(text[loc[7]:])

	value, err := decimal.NewFromString(number)
	if err != nil {
		return decimal.Zero, false
	}

	negative := sign == "-" || sign == "−" || innerSign == "-" ||
		(sign == "(" && strings.HasPrefix(rest, ")"))
	if negative {
		value = value.Neg()
	}
	return value, true
}

// ParseCurrency is ParseCurrencyDecimal converted to a float64.
func ParseCurrency(text string) (float64, bool) {
	value, ok := ParseCurrencyDecimal(text)
	if !ok {
		return 0, false
	}
	f, _ := value.Float64()
	return f, true
}

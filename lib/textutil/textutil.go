package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// CollapseSpace trims the string and replaces every run of whitespace with a single space.
func CollapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// NormalizeLabel lowercases a label and collapses its whitespace so that
// "Item(s)  Subtotal:" and "item(s) subtotal:" compare equal.
func NormalizeLabel(label string) string {
	return CollapseSpace(strings.ToLower(label))
}

// ContainsLabel reports whether text contains label, ignoring case and whitespace layout.
func ContainsLabel(text, label string) bool {
	return strings.Contains(NormalizeLabel(text), NormalizeLabel(label))
}

func fuzzyMarker(marker string) *regexp.Regexp {
	parts := whitespaceRegex.Split(strings.TrimSpace(marker), -1)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)` + strings.Join(parts, `\s*`))
}

// AfterFuzzy returns everything after the first occurrence of marker. Case and
// whitespace inside the marker are not significant. If the marker is absent the
// text is returned as is.
func AfterFuzzy(text, marker string) string {
	if strings.TrimSpace(marker) == "" {
		return text
	}
	loc := fuzzyMarker(marker).FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[loc[1]:]
}

// BeforeFuzzy returns everything before the first occurrence of marker, with the
// same matching rules as AfterFuzzy.
func BeforeFuzzy(text, marker string) string {
	if strings.TrimSpace(marker) == "" {
		return text
	}
	loc := fuzzyMarker(marker).FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]]
}

// After returns the text after the first exact occurrence of marker.
func After(text, marker string) (string, bool) {
	_, after, found := strings.Cut(text, marker)
	return after, found
}

// Before returns the text before the first exact occurrence of marker.
func Before(text, marker string) (string, bool) {
	before, _, found := strings.Cut(text, marker)
	return before, found
}

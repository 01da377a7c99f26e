package entity

import (
	"strings"
	"time"

	"amazonorders/lib/htmlutil"
	"amazonorders/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// Field describes how to read one value out of a fragment.
type Field struct {
	// Selectors are tried in order, the first one producing a usable value wins.
	Selectors []string
	// Attr reads an attribute of the matched node instead of its text.
	Attr string

	PrefixSplit string
	PrefixFuzzy bool
	SuffixSplit string
	SuffixFuzzy bool

	// ParseDate rejects candidates that do not contain a date.
	ParseDate bool
}

type Value struct {
	Text string
	// Date is only set when the field has ParseDate.
	Date time.Time
}

// Resolve reads a Field from sel. Exact prefix/suffix splits reject a candidate
// whose text does not contain the marker, fuzzy splits keep the text as is.
func Resolve(sel *goquery.Selection, field Field) (Value, bool) {
	for _, selector := range field.Selectors {
		node := sel.Find(selector).First()
		if node.Length() == 0 {
			continue
		}

		var text string
		if field.Attr != "" {
			attr, ok := node.Attr(field.Attr)
			if !ok {
				continue
			}
			text = attr
		} else {
			text = textutil.CollapseSpace(htmlutil.GetText(node.Nodes[0]))
		}

		text, ok := splitCandidate(text, field)
		if !ok || text == "" {
			continue
		}

		if !field.ParseDate {
			return Value{Text: text}, true
		}
		date, ok := textutil.ParseDate(text)
		if !ok {
			continue
		}
		return Value{Text: text, Date: date}, true
	}
	return Value{}, false
}

func splitCandidate(text string, field Field) (string, bool) {
	if field.PrefixSplit != "" {
		if field.PrefixFuzzy {
			text = textutil.AfterFuzzy(text, field.PrefixSplit)
		} else {
			after, found := textutil.After(text, field.PrefixSplit)
			if !found {
				return "", false
			}
			text = after
		}
	}
	if field.SuffixSplit != "" {
		if field.SuffixFuzzy {
			text = textutil.BeforeFuzzy(text, field.SuffixSplit)
		} else {
			before, found := textutil.Before(text, field.SuffixSplit)
			if !found {
				return "", false
			}
			text = before
		}
	}
	return strings.TrimSpace(text), true
}

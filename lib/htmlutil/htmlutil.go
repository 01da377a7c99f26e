package htmlutil

import (
	"bytes"
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("amazonorders.lib.htmlutil")

// GetText concatenates every text node under node, script and style contents excluded.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer, "")
	return buffer.String()
}

// JoinedText returns the trimmed, non-empty text nodes of the selection joined by sep.
func JoinedText(sel *goquery.Selection, sep string) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer, sep)
	}
	return strings.TrimSuffix(buffer.String(), sep)
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer, sep string) {
	if node == nil {
		return
	}
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	if node.Type == html.TextNode {
		if sep == "" {
			buffer.WriteString(node.Data)
			return
		}
		text := strings.TrimSpace(node.Data)
		if text != "" {
			buffer.WriteString(text)
			buffer.WriteString(sep)
		}
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer, sep)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText is the visible text of a selection with non-printable characters removed
// and inner whitespace collapsed.
func CleanText(sel *goquery.Selection) string {
	var buffer bytes.Buffer
	for _, n := range sel.Nodes {
		getTextRecursive(n, &buffer, "")
	}
	return cleanString(buffer.String())
}

func cleanString(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	s = removeNonPrintable(s)
	s = strings.TrimSpace(s)
	return innerWhitespace.ReplaceAllString(s, " ")
}

// Select runs each selector in order and returns the matches of the first one that
// finds anything. goquery treats an invalid selector as matching nothing.
func Select(sel *goquery.Selection, selectors []string) *goquery.Selection {
	for _, s := range selectors {
		found := sel.Find(s)
		if found.Length() > 0 {
			return found
		}
	}
	return sel.Slice(0, 0)
}

// SelectOne is Select narrowed to the first match.
func SelectOne(sel *goquery.Selection, selectors ...string) *goquery.Selection {
	return Select(sel, selectors).First()
}

// Root returns the topmost ancestor of the selection's first node as a selection.
func Root(sel *goquery.Selection) *goquery.Selection {
	if sel.Length() == 0 {
		return sel
	}
	node := sel.Nodes[0]
	for node.Parent != nil {
		node = node.Parent
	}
	return goquery.NewDocumentFromNode(node).Selection
}

// Parse parses an html fragment into a document selection.
func Parse(fragment string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	return doc.Selection, nil
}

type Anchor struct {
	Name string
	Href string
}

// GetAnchors reads the text and href of every node in sel, relative hrefs are
// resolved against base when base is non-nil.
func GetAnchors(ctx context.Context, base *url.URL, sel *goquery.Selection) []Anchor {
	_, span := tracer.Start(ctx, "GetAnchors")
	defer span.End()

	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}

		link, err := url.Parse(href)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "got error while parsing url")
			continue
		}
		if base != nil && href != "" {
			link = base.ResolveReference(link)
		}

		name := cleanString(GetText(n))

		linkStr := link.String()
		anchors = append(anchors, Anchor{
			Name: name,
			Href: linkStr,
		})
		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("name", name),
			attribute.String("url", linkStr),
		))
	}

	return anchors
}

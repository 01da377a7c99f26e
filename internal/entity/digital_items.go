package entity

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"amazonorders/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	itemsOrderedRegex  = regexp.MustCompile(`(?i)Items Ordered`)
	digitalQtyRegex    = regexp.MustCompile(`Qty:\s*(\d+)`)
	digitalSellerRegex = regexp.MustCompile(`Sold\s+By:\s*([^\n<]+)`)
)

type digitalItemRow struct {
	title  string
	link   string
	price  string
	seller string
	qty    string
}

// fragment renders the row in the markup the item selectors understand.
func (r digitalItemRow) fragment() string {
	var out strings.Builder
	out.WriteString("<div class='yohtmlc-item'><span data-component='itemTitle'>")
	if r.link != "" {
		fmt.Fprintf(&out, "<a href='%s'>%s</a>", html.EscapeString(r.link), html.EscapeString(r.title))
	} else {
		fmt.Fprintf(&out, "<a>%s</a>", html.EscapeString(r.title))
	}
	fmt.Fprintf(&out, "</span><span class='a-color-price'>%s</span>", html.EscapeString(r.price))
	if r.seller != "" {
		fmt.Fprintf(&out, "<div data-component='orderedMerchant'>Sold by: %s</div>", html.EscapeString(r.seller))
	}
	fmt.Fprintf(&out, "<span class='od-item-view-qty'>%s</span></div>", html.EscapeString(r.qty))
	return out.String()
}

func readDigitalItemRow(p Parsable, row *goquery.Selection) (digitalItemRow, bool) {
	cols := row.Find("td")
	if cols.Length() < 2 {
		return digitalItemRow{}, false
	}
	left, right := cols.Eq(0), cols.Eq(1)

	out := digitalItemRow{qty: "1"}
	if anchor := left.Find("a").First(); anchor.Length() > 0 {
		out.title = htmlutil.CleanText(anchor)
		if href, ok := anchor.Attr("href"); ok && href != "" && href != "#" {
			out.link = p.WithBaseURL(href)
		}
	} else if bold := left.Find("b").First(); bold.Length() > 0 {
		out.title = htmlutil.CleanText(bold)
	} else {
		out.title = htmlutil.CleanText(left)
	}

	leftText := left.Text()
	if match := digitalQtyRegex.FindStringSubmatch(leftText); match != nil {
		out.qty = match[1]
	}
	if match := digitalSellerRegex.FindStringSubmatch(leftText); match != nil {
		out.seller = strings.TrimSpace(match[1])
	}
	out.price = htmlutil.CleanText(right)
	return out, true
}

// parseDigitalItems rebuilds the items of a legacy digital order, which lists
// them as rows of a table headed by a bold "Items Ordered" label.
func parseDigitalItems(p Parsable) []*Item {
	factory := p.Config.itemFactory()
	items := []*Item{}

	headers := p.Sel.Find("b").FilterFunction(func(_ int, b *goquery.Selection) bool {
		return itemsOrderedRegex.MatchString(b.Text())
	})
	for i := range headers.Nodes {
		header := headers.Eq(i)
		if header.Closest("table").Length() == 0 {
			continue
		}

		header.Closest("tr").NextAllFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
			row, ok := readDigitalItemRow(p, tr)
			if !ok {
				return
			}
			fragment, err := htmlutil.Parse(row.fragment())
			if err != nil {
				p.Config.tel().ReportWarning("order.digital-items", err)
				return
			}
			item, err := factory(p.Context(), fragment, p.Config)
			if err != nil {
				p.Config.tel().ReportWarning("order.digital-items", err)
				return
			}
			items = append(items, item)
		})
		break
	}

	if len(items) > 0 {
		p.Config.tel().ReportDebug("items rebuilt from legacy digital order table", len(items))
	}
	return items
}

package entity

import (
	"encoding/json"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"slices"
	"strings"
	"time"

	"amazonorders/lib/htmlutil"
	"amazonorders/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

var (
	orderIDRegex           = regexp.MustCompile(`[A-Z0-9]{3}-\d{7}-\d{7}`)
	digitalOrderDateRegex  = regexp.MustCompile(`Digital Order:\s*(.*)`)
	grandTotalTextRegex    = regexp.MustCompile(`(Order Total|Total for this Order)[^$\d]*([$\d.,]+)`)
	recipientTextRegex     = regexp.MustCompile(`Recipient:\s*([^\n]+)`)
	legacyGrandTotalMarker = "Total for this Order"
)

func parseShipments(p Parsable) ([]*Shipment, error) {
	s := p.Config.Selectors
	if htmlutil.Select(p.Sel, s.OrderSkipItems).Length() > 0 {
		return []*Shipment{}, nil
	}

	factory := p.Config.shipmentFactory()
	matches := htmlutil.Select(p.Sel, s.ShipmentEntity)
	shipments := []*Shipment{}
	for i := range matches.Nodes {
		shipment, err := factory(p.Context(), matches.Eq(i), p.Config)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, shipment)
	}
	slices.SortStableFunc(shipments, CompareShipments)
	return shipments, nil
}

func parseItems(p Parsable) ([]*Item, error) {
	s := p.Config.Selectors
	if htmlutil.Select(p.Sel, s.OrderSkipItems).Length() > 0 {
		return []*Item{}, nil
	}

	items, err := buildItems(p.Context(), htmlutil.Select(p.Sel, s.ItemEntity), p.Config)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		return items, nil
	}

	items = parseDigitalItems(p)
	slices.SortStableFunc(items, CompareItems)
	return items, nil
}

func orderIDFromText(p Parsable) (string, bool) {
	match := orderIDRegex.FindString(htmlutil.JoinedText(p.Sel, " "))
	return match, match != ""
}

func synthesizedLink(orderID, path, param string) Strategy[string] {
	return func(p Parsable) (string, bool) {
		if orderID == "" {
			return "", false
		}
		return fmt.Sprintf("%s%s?%s=%s", p.BaseURL(), path, param, url.QueryEscape(orderID)), true
	}
}

// invoiceFromPopover reads the `url` key out of the json stored in the
// invoice popover's data-a-popover attribute.
func invoiceFromPopover(p Parsable) (string, bool) {
	popover := htmlutil.SelectOne(p.Sel, p.Config.Selectors.OrderInvoicePopover...)
	data, ok := popover.Attr("data-a-popover")
	if !ok {
		return "", false
	}

	var parsed struct {
		URL string `json:"url"`
	}
	err := json.Unmarshal([]byte(html.UnescapeString(data)), &parsed)
	if err != nil {
		p.Config.tel().ReportWarning("order.invoice-popover", err)
		return "", false
	}
	if parsed.URL == "" {
		return "", false
	}
	return p.WithBaseURL(parsed.URL), true
}

func stripTotalLabel(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(strings.ToLower(text), "total") {
		return strings.TrimSpace(text[len("total"):])
	}
	return text
}

func grandTotalFromSelector(p Parsable) (float64, bool) {
	value, ok := p.Resolve(Field{Selectors: p.Config.Selectors.OrderGrandTotal})
	if !ok {
		return 0, false
	}
	return ToCurrency(stripTotalLabel(value.Text))
}

func grandTotalFromLegacyTable(p Parsable) (float64, bool) {
	cells := htmlutil.Select(p.Sel, p.Config.Selectors.OrderLegacyTotal)
	for i := range cells.Nodes {
		text := htmlutil.CleanText(cells.Eq(i))
		if !strings.Contains(text, legacyGrandTotalMarker) {
			continue
		}
		parts := strings.Split(text, ":")
		return ToCurrency(stripTotalLabel(parts[len(parts)-1]))
	}
	return 0, false
}

func grandTotalFromText(p Parsable) (float64, bool) {
	match := grandTotalTextRegex.FindStringSubmatch(htmlutil.JoinedText(p.Sel, " "))
	if match == nil {
		return 0, false
	}
	return ToCurrency(match[2])
}

func legacyDigitalOrderDate(p Parsable) (time.Time, bool) {
	tag := htmlutil.SelectOne(p.Sel, p.Config.Selectors.OrderLegacyDate...)
	if tag.Length() == 0 {
		return time.Time{}, false
	}
	match := digitalOrderDateRegex.FindStringSubmatch(htmlutil.CleanText(tag))
	if match == nil {
		return time.Time{}, false
	}
	return textutil.ParseDate(match[1])
}

// parseRecipient returns nil for gift card orders and when no strategy
// finds an address block.
func parseRecipient(p Parsable) *Recipient {
	s := p.Config.Selectors
	if htmlutil.Select(p.Sel, s.OrderGiftCard).Length() > 0 {
		return nil
	}

	fragment, ok := FirstOf[*goquery.Selection](p,
		recipientFromAddress,
		recipientFromPopover,
		recipientFromScript,
		recipientFromText,
	)
	if !ok {
		return nil
	}

	recipient, err := NewRecipient(p.Context(), fragment, p.Config)
	if err != nil {
		p.Config.tel().ReportWarning("order.recipient", err)
		return nil
	}
	return recipient
}

func recipientFromAddress(p Parsable) (*goquery.Selection, bool) {
	address := htmlutil.SelectOne(p.Sel, p.Config.Selectors.OrderAddress...)
	return address, address.Length() > 0
}

// recipientFromPopover parses the html kept in the `inlineContent` key of the
// recipient popover. The value may itself be a json encoded string.
func recipientFromPopover(p Parsable) (*goquery.Selection, bool) {
	popover := htmlutil.SelectOne(p.Sel, p.Config.Selectors.OrderAddressPopover...)
	data, ok := popover.Attr("data-a-popover")
	if !ok {
		return nil, false
	}

	var parsed struct {
		InlineContent string `json:"inlineContent"`
	}
	err := json.Unmarshal([]byte(data), &parsed)
	if err != nil || parsed.InlineContent == "" {
		return nil, false
	}

	content := parsed.InlineContent
	var decoded string
	if json.Unmarshal([]byte(content), &decoded) == nil {
		content = decoded
	}

	fragment, err := htmlutil.Parse(content)
	if err != nil {
		return nil, false
	}
	return fragment, true
}

// recipientFromScript reads the address out of the `shipToData` script that
// sits next to the order in the history page.
func recipientFromScript(p Parsable) (*goquery.Selection, bool) {
	parent := p.Sel.Parent()
	if parent.Length() == 0 {
		return nil, false
	}
	script := htmlutil.SelectOne(parent, p.Config.Selectors.OrderAddressScript...)
	if script.Length() == 0 {
		return nil, false
	}
	content := strings.TrimSpace(script.Text())
	if content == "" {
		return nil, false
	}

	fragment, err := htmlutil.Parse(content)
	if err != nil {
		return nil, false
	}
	p.Config.tel().ReportDebug("recipient read from shipToData script")
	return fragment, true
}

func recipientFromText(p Parsable) (*goquery.Selection, bool) {
	match := recipientTextRegex.FindStringSubmatch(htmlutil.JoinedText(p.Sel, "\n"))
	if match == nil {
		return nil, false
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return nil, false
	}

	fragment, err := htmlutil.Parse(fmt.Sprintf("<div><div>%s</div></div>", html.EscapeString(name)))
	if err != nil {
		return nil, false
	}
	return fragment, true
}

func currencyPtr(p Parsable, label string, combine bool) *float64 {
	value, ok := ScanCurrency(p, label, combine)
	if !ok {
		return nil
	}
	return &value
}

func parseFullDetails(p Parsable, order *Order) {
	s := p.Config.Selectors

	order.PaymentMethod, _ = FirstOf(p, TextOf(Field{Selectors: s.OrderPaymentMethod, Attr: "alt"}))
	order.PaymentMethodLast4, _ = FirstOf(p, TextOf(Field{
		Selectors:   s.OrderPaymentLast4,
		PrefixSplit: "ending in",
		PrefixFuzzy: true,
	}))

	order.ItemSubtotal = currencyPtr(p, "subtotal", false)
	order.ShippingTotal = currencyPtr(p, "shipping", false)
	order.FreeShipping = currencyPtr(p, "free shipping", false)
	order.Promotion = currencyPtr(p, "promotion", true)
	order.CouponSavings = currencyPtr(p, "coupon", true)
	order.SubscriptionDiscount = currencyPtr(p, "subscribe", false)
	order.OtherPromotions = currencyPtr(p, "amount paid by amazon", true)
	order.TotalBeforeTax = currencyPtr(p, "total before tax", false)
	order.EstimatedTax = currencyPtr(p, "estimated tax", false)
	order.FederalTax = currencyPtr(p, "hst", false)
	order.ProvincialTax = currencyPtr(p, "pst", false)
	order.RegulatoryFee = currencyPtr(p, "fee", false)
	order.RefundTotal = currencyPtr(p, "refund total", false)
}

func valueOrZero(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}

package entity

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("amazonorders.internal.entity")
	meter  = otel.Meter("amazonorders.internal.entity")

	ordersParsed, _ = meter.Int64Counter(
		"amazonorders.orders.parsed",
		metric.WithDescription("orders built successfully"),
	)
	ordersFailed, _ = meter.Int64Counter(
		"amazonorders.orders.failed",
		metric.WithDescription("orders that failed on a required field"),
	)
)

type Order struct {
	OrderID            string `json:"order_id"`
	PaymentReferenceID string `json:"payment_reference_id"`
	// Index is where the order appeared in the history page it was read from,
	// it shifts whenever a new order is placed.
	Index       *int      `json:"index,omitempty"`
	OrderDate   time.Time `json:"order_date"`
	PaymentDate time.Time `json:"payment_date"`
	GrandTotal  float64   `json:"grand_total"`
	FullDetails bool      `json:"full_details"`

	Items        []*Item     `json:"items"`
	Shipments    []*Shipment `json:"shipments"`
	Recipient    *Recipient  `json:"recipient,omitempty"`
	Title        string      `json:"title"`
	ItemQuantity int         `json:"item_quantity"`

	OrderDetailsLink string `json:"order_details_link,omitempty"`
	InvoiceLink      string `json:"invoice_link,omitempty"`

	// fields below are only populated with full details
	PaymentMethod      string `json:"payment_method,omitempty"`
	PaymentMethodLast4 string `json:"payment_method_last_4,omitempty"`

	ItemSubtotal         *float64 `json:"item_subtotal,omitempty"`
	ShippingTotal        *float64 `json:"shipping_total,omitempty"`
	FreeShipping         *float64 `json:"free_shipping,omitempty"`
	Promotion            *float64 `json:"promotion,omitempty"`
	CouponSavings        *float64 `json:"coupon_savings,omitempty"`
	SubscriptionDiscount *float64 `json:"subscription_discount,omitempty"`
	OtherPromotions      *float64 `json:"other_promotions,omitempty"`
	TotalBeforeTax       *float64 `json:"total_before_tax,omitempty"`
	EstimatedTax         *float64 `json:"estimated_tax,omitempty"`
	FederalTax           *float64 `json:"federal_tax,omitempty"`
	ProvincialTax        *float64 `json:"provincial_tax,omitempty"`
	RegulatoryFee        *float64 `json:"regulatory_fee,omitempty"`
	RefundTotal          *float64 `json:"refund_total,omitempty"`

	ItemShippingAndHandling float64 `json:"item_shipping_and_handling"`
	ItemPromotion           float64 `json:"item_promotion"`
}

type OrderOptions struct {
	// FullDetails is set when the fragment comes from an order details page,
	// it enables the payment and pricing breakdown fields.
	FullDetails bool
	// Clone is an order previously read from the history page, its values
	// fill in whatever the fragment does not have.
	Clone *Order
	Index *int
}

// NewOrder builds an Order out of an order card of the history page or the
// order container of a details page.
func NewOrder(ctx context.Context, sel *goquery.Selection, cfg *Config, opts OrderOptions) (*Order, error) {
	ctx, span := tracer.Start(ctx, "NewOrder")
	defer span.End()

	span.SetAttributes(
		attribute.Bool("full_details", opts.FullDetails),
		attribute.Bool("clone", opts.Clone != nil),
	)

	order, err := newOrder(ctx, sel, cfg, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		ordersFailed.Add(ctx, 1)
		return nil, err
	}

	span.SetAttributes(attribute.String("order_id", order.OrderID))
	ordersParsed.Add(ctx, 1)
	return order, nil
}

func newOrder(ctx context.Context, sel *goquery.Selection, cfg *Config, opts OrderOptions) (*Order, error) {
	p := NewParsable(ctx, sel, cfg, "Order")
	s := cfg.Selectors
	clone := opts.Clone

	order := &Order{FullDetails: opts.FullDetails}
	if opts.Index != nil {
		index := *opts.Index
		order.Index = &index
	}

	shipments, err := parseShipments(p)
	if err != nil {
		return nil, err
	}
	if len(shipments) == 0 && clone != nil {
		shipments = slices.Clone(clone.Shipments)
	}
	order.Shipments = shipments

	items, err := parseItems(p)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 && clone != nil && !opts.FullDetails {
		items = slices.Clone(clone.Items)
	}
	order.Items = items

	titles := make([]string, len(order.Items))
	for i, item := range order.Items {
		titles[i] = item.Title
	}
	order.Title = strings.Join(titles, " + ")
	order.ItemQuantity = max(len(order.Items), 1)

	orderID, ok, err := SafeParse(p, "order_id", s.OrderNumber, clone == nil,
		TextOf(Field{Selectors: s.OrderNumber, PrefixSplit: "#", PrefixFuzzy: true}),
		TextOf(Field{Selectors: s.OrderSearchInput, Attr: "value"}),
		orderIDFromText,
	)
	if err != nil {
		return nil, err
	}
	if !ok && clone != nil {
		orderID = clone.OrderID
	}
	order.OrderID = orderID
	order.PaymentReferenceID = orderID
	if order.Index != nil {
		order.PaymentReferenceID = fmt.Sprintf("%s-%d", orderID, *order.Index)
	}

	order.OrderDetailsLink, ok = FirstOf(p,
		TextOf(Field{Selectors: s.OrderDetailsLink, Attr: "href"}),
		synthesizedLink(orderID, cfg.Constants.OrderDetailsPath, "orderID"),
	)
	if !ok && clone != nil {
		order.OrderDetailsLink = clone.OrderDetailsLink
	}

	order.InvoiceLink, ok = FirstOf(p,
		TextOf(Field{Selectors: s.OrderInvoiceLink, Attr: "href"}),
		invoiceFromPopover,
		synthesizedLink(orderID, cfg.Constants.InvoiceMenuPath, "orderId"),
	)
	if !ok && clone != nil {
		order.InvoiceLink = clone.InvoiceLink
	}

	grandTotal, _, err := SafeParse(p, "grand_total", s.OrderGrandTotal, true,
		grandTotalFromSelector,
		grandTotalFromLegacyTable,
		grandTotalFromText,
		CurrencyLabel("grand total", false),
	)
	if err != nil {
		return nil, err
	}
	order.GrandTotal = grandTotal

	orderDate, ok, err := SafeParse(p, "order_date", s.OrderPlacedDate, clone == nil,
		DateOf(Field{Selectors: s.OrderPlacedDate, SuffixSplit: "Order #", SuffixFuzzy: true}),
		legacyDigitalOrderDate,
	)
	if err != nil {
		return nil, err
	}
	if !ok && clone != nil {
		orderDate = clone.OrderDate
	}
	order.OrderDate = orderDate
	order.PaymentDate = orderDate.AddDate(0, 0, 1)

	order.Recipient = parseRecipient(p)
	if order.Recipient == nil && clone != nil && clone.Recipient != nil {
		recipient := *clone.Recipient
		order.Recipient = &recipient
	}

	if opts.FullDetails {
		parseFullDetails(p, order)
	}
	order.ItemShippingAndHandling = valueOrZero(order.ShippingTotal) + valueOrZero(order.FreeShipping)
	order.ItemPromotion = valueOrZero(order.Promotion) +
		valueOrZero(order.CouponSavings) +
		valueOrZero(order.SubscriptionDiscount) +
		valueOrZero(order.OtherPromotions)

	return order, nil
}

func (o *Order) String() string {
	return fmt.Sprintf("Order #%s: %q", o.OrderID, o.Title)
}

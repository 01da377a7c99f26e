package entity

import (
	"context"
	"errors"
	"fmt"

	"amazonorders/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// ParseHistoryPage builds an Order for every order card on an order history
// page. startIndex is the index of the first card on the page (history pages
// are offset by `startIndex` in their url). Orders that fail are left out and
// their errors joined.
func ParseHistoryPage(ctx context.Context, doc *goquery.Selection, cfg *Config, startIndex int) ([]*Order, error) {
	ctx, span := tracer.Start(ctx, "ParseHistoryPage")
	defer span.End()

	cards := htmlutil.Select(doc, cfg.Selectors.OrderHistoryEntity)
	orders := []*Order{}
	var errs []error
	for i := range cards.Nodes {
		index := startIndex + i
		order, err := NewOrder(ctx, cards.Eq(i), cfg, OrderOptions{Index: &index})
		if err != nil {
			errs = append(errs, fmt.Errorf("order at index %d: %w", index, err))
			continue
		}
		orders = append(orders, order)
	}
	cfg.tel().ReportCount("order_history.orders", int64(len(orders)))

	return orders, errors.Join(errs...)
}

// ParseDetailsPage builds a fully detailed Order out of an order details page.
// clone may be nil.
func ParseDetailsPage(ctx context.Context, doc *goquery.Selection, cfg *Config, clone *Order) (*Order, error) {
	ctx, span := tracer.Start(ctx, "ParseDetailsPage")
	defer span.End()

	container := htmlutil.SelectOne(doc, cfg.Selectors.OrderDetailsEntity...)
	if container.Length() == 0 {
		err := &EntityError{
			Entity:    "Order",
			Field:     "order_details",
			Selectors: cfg.Selectors.OrderDetailsEntity,
		}
		cfg.tel().ReportBroken("order.order_details", err)
		return nil, err
	}

	opts := OrderOptions{
		FullDetails: true,
		Clone:       clone,
	}
	if clone != nil {
		opts.Index = clone.Index
	}
	return NewOrder(ctx, container, cfg, opts)
}

package entity

import (
	"cmp"
	"context"
	"slices"

	"amazonorders/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Shipment struct {
	Items          []*Item `json:"items"`
	DeliveryStatus string  `json:"delivery_status,omitempty"`
	TrackingLink   string  `json:"tracking_link,omitempty"`
}

// NewShipment is the default ShipmentFactory.
func NewShipment(ctx context.Context, sel *goquery.Selection, cfg *Config) (*Shipment, error) {
	p := NewParsable(ctx, sel, cfg, "Shipment")
	s := cfg.Selectors

	items, err := buildItems(ctx, htmlutil.Select(sel, s.ItemEntity), cfg)
	if err != nil {
		return nil, err
	}

	shipment := &Shipment{Items: items}
	shipment.DeliveryStatus, _ = FirstOf(p, TextOf(Field{Selectors: s.ShipmentStatus}))
	shipment.TrackingLink, _ = FirstOf(p, TextOf(Field{Selectors: s.ShipmentTrackingLink, Attr: "href"}))
	return shipment, nil
}

func buildItems(ctx context.Context, sel *goquery.Selection, cfg *Config) ([]*Item, error) {
	factory := cfg.itemFactory()
	items := []*Item{}
	for i := range sel.Nodes {
		item, err := factory(ctx, sel.Eq(i), cfg)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	slices.SortStableFunc(items, CompareItems)
	return items, nil
}

// CompareShipments orders shipments by delivery status, then by tracking link.
func CompareShipments(a, b *Shipment) int {
	return cmp.Or(
		cmp.Compare(a.DeliveryStatus, b.DeliveryStatus),
		cmp.Compare(a.TrackingLink, b.TrackingLink),
	)
}

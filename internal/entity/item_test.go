package entity

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestItemPriceStripped(t *testing.T) {
	cfg, _ := testConfig()
	sel := parse(t, `
<div class="a-fixed-left-grid-col yohtmlc-item a-col-right" style="padding-left:1.5%;float:left;">
<div class="a-row">
<a class="a-link-normal" href="/gp/product/B0018CJYCO/ref=ppx_od_dt_b_asin_title_s00?ie=UTF8&amp;psc=1">
        Item Title
    </a>
</div>
<div class="a-row">
<span class="a-size-small">
<div class="a-row a-size-small">Return window closed on Feb 2, 2019</div>
</span>
</div>
<div class="a-row">
<span class="a-size-small a-color-price">
    $1,234.99
</span>
</div>
</div>
`)

	item, err := NewItem(context.Background(), sel, cfg)
	require.NoError(t, err)

	expected := &Item{
		Title:              "Item Title",
		Link:               "https://www.amazon.com/gp/product/B0018CJYCO/ref=ppx_od_dt_b_asin_title_s00?ie=UTF8&psc=1",
		Price:              ptr(1234.99),
		Quantity:           1,
		ReturnEligibleDate: ptr(time.Date(2019, time.February, 2, 0, 0, 0, 0, time.UTC)),
	}
	if diff := cmp.Diff(expected, item); diff != "" {
		t.Fatal(diff)
	}
}

func TestItemTitleStartsWithAmpersand(t *testing.T) {
	cfg, _ := testConfig()
	sel := parse(t, `
<div class="a-fixed-left-grid-col yohtmlc-item a-col-right">
<div class="a-row">
    <a class="a-link-normal" href="/dp/B0CW5Y6PKG?ref_=ppx_hzod_title_dt_b_fed_asin_title_0_0">&amp;And Per Se Lined</a>
</div>
</div>
`)

	item, err := NewItem(context.Background(), sel, cfg)
	require.NoError(t, err)
	require.Equal(t, "&And Per Se Lined", item.Title)
	require.Nil(t, item.Price)
}

func TestItemImageLink(t *testing.T) {
	cfg, _ := testConfig()
	cases := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name: "data component",
			html: `<div class="yohtmlc-item">
<div data-component="itemImage"><a href="/dp/B0001"><img src="https://m.media-amazon.com/images/I/brush.jpg"></a></div>
<div data-component="itemTitle"><a href="/dp/B0001">Pastry Brush</a></div>
</div>`,
			expected: "https://m.media-amazon.com/images/I/brush.jpg",
		},
		{
			name: "relative src in product anchor",
			html: `<div class="yohtmlc-item">
<a class="a-link-normal" href="/gp/product/B0002"><img src="/images/I/sheet.jpg"></a>
<div class="yohtmlc-product-title">Baking Sheet</div>
</div>`,
			expected: "https://www.amazon.com/images/I/sheet.jpg",
		},
		{
			name: "no image",
			html: `<div class="yohtmlc-item"><a class="a-link-normal" href="/dp/B0003">Coffee Filters</a></div>`,
		},
	}

	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			item, err := NewItem(context.Background(), parse(t, test.html), cfg)
			require.NoError(t, err)
			require.Equal(t, test.expected, item.ImageLink)
			require.NotEqual(t, item.Link, item.ImageLink)
		})
	}
}

func TestItemTitleRequired(t *testing.T) {
	cfg, tel := testConfig()
	sel := parse(t, `<div class="yohtmlc-item"><span class="a-color-price">$1.00</span></div>`)

	_, err := NewItem(context.Background(), sel, cfg)
	require.ErrorIs(t, err, ErrFieldRequired)
	require.Equal(t, []string{"item.title"}, tel.broken())
}

func TestItemOrdering(t *testing.T) {
	items := []*Item{
		{Title: "b", Link: "2"},
		{Title: "a", Link: "2"},
		{Title: "b", Link: "1"},
	}
	slices.SortFunc(items, CompareItems)
	require.Equal(t, []*Item{
		{Title: "a", Link: "2"},
		{Title: "b", Link: "1"},
		{Title: "b", Link: "2"},
	}, items)
}

func TestShipmentOrdering(t *testing.T) {
	shipments := []*Shipment{
		{DeliveryStatus: "Delivered", TrackingLink: "b"},
		{DeliveryStatus: "Arriving", TrackingLink: "z"},
		{DeliveryStatus: "Delivered", TrackingLink: "a"},
	}
	slices.SortFunc(shipments, CompareShipments)
	require.Equal(t, []*Shipment{
		{DeliveryStatus: "Arriving", TrackingLink: "z"},
		{DeliveryStatus: "Delivered", TrackingLink: "a"},
		{DeliveryStatus: "Delivered", TrackingLink: "b"},
	}, shipments)
}

func TestRecipientFromAddressBlock(t *testing.T) {
	cfg, _ := testConfig()
	sel := parse(t, `<div class="displayAddressDiv"><ul>
		<li class="displayAddressFullName">Alex Laird</li>
		<li class="displayAddressAddressLine1">123 Main St</li>
		<li class="displayAddressAddressLine2">  Apt 4  </li>
		<li class="displayAddressCityStateOrRegionPostalCode">Toronto, ON M5V 2T6</li>
	</ul></div>`)

	recipient, err := NewRecipient(context.Background(), sel, cfg)
	require.NoError(t, err)
	require.Equal(t, &Recipient{
		Name:    "Alex Laird",
		Address: "123 Main St\nApt 4\nToronto, ON M5V 2T6",
	}, recipient)
}

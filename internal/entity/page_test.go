package entity

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseHistoryPage(t *testing.T) {
	cfg, tel := testConfig()

	orders, err := ParseHistoryPage(context.Background(), parse(t, historyPage), cfg, 10)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	first := orders[0]
	require.Equal(t, "112-5939971-8962610", first.OrderID)
	require.Equal(t, ptr(10), first.Index)
	require.Equal(t, "112-5939971-8962610-10", first.PaymentReferenceID)
	require.Equal(t, time.Date(2024, time.December, 3, 0, 0, 0, 0, time.UTC), first.OrderDate)
	require.Equal(t, 25.99, first.GrandTotal)
	require.False(t, first.FullDetails)
	require.Nil(t, first.ItemSubtotal)
	require.Equal(t, "Baking Sheet + Pastry Brush", first.Title)
	require.Equal(t, 2, first.ItemQuantity)
	require.Equal(t, "https://www.amazon.ca/gp/your-account/order-details?orderID=112-5939971-8962610", first.OrderDetailsLink)
	require.Equal(t, "https://www.amazon.ca/your-orders/invoice/popover?orderId=112-5939971-8962610", first.InvoiceLink)

	expectedRecipient := &Recipient{
		Name:    "Alex Laird",
		Address: "123 Main St\nToronto, ON M5V 2T6\nCanada",
	}
	if diff := cmp.Diff(expectedRecipient, first.Recipient); diff != "" {
		t.Fatal(diff)
	}

	brush := &Item{
		Title:     "Pastry Brush",
		Link:      "https://www.amazon.ca/gp/product/B0001",
		ImageLink: "https://m.media-amazon.com/images/I/brush.jpg",
		Price:     ptr(12.99),
		Seller:    "Kitchen Co",
		Quantity:  1,
	}
	sheet := &Item{
		Title:    "Baking Sheet",
		Link:     "https://www.amazon.ca/gp/product/B0002",
		Price:    ptr(10.0),
		Quantity: 2,
	}
	expectedShipments := []*Shipment{
		{
			Items:          []*Item{sheet, brush},
			DeliveryStatus: "Delivered December 5",
			TrackingLink:   "https://www.amazon.ca/progress-tracker/package?orderId=112-5939971-8962610&shipmentId=A1",
		},
	}
	if diff := cmp.Diff(expectedShipments, first.Shipments); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]*Item{sheet, brush}, first.Items); diff != "" {
		t.Fatal(diff)
	}

	giftCard := orders[1]
	require.Equal(t, "113-1111111-2222222", giftCard.OrderID)
	require.Equal(t, "113-1111111-2222222-11", giftCard.PaymentReferenceID)
	require.Nil(t, giftCard.Recipient)
	require.Equal(t, 50.0, giftCard.GrandTotal)
	require.Equal(t, "https://www.amazon.ca/gp/your-account/order-details?orderID=113-1111111-2222222", giftCard.OrderDetailsLink)

	popover := orders[2]
	require.Equal(t, ptr(12), popover.Index)
	require.Equal(t, &Recipient{Name: "Sam Smith", Address: "1 Elm St"}, popover.Recipient)
	require.Equal(t, time.Date(2024, time.October, 28, 0, 0, 0, 0, time.UTC), popover.OrderDate)
	require.Equal(t, time.Date(2024, time.October, 29, 0, 0, 0, 0, time.UTC), popover.PaymentDate)
	require.Equal(t, "https://www.amazon.ca/gp/product/B0003", popover.Items[0].Link)

	require.Empty(t, tel.broken())
}

func TestParseHistoryPageCollectsErrors(t *testing.T) {
	cfg, _ := testConfig()
	sel := parse(t, `<div>
		<div class="order-card">
			<div class="yohtmlc-order-id"><span dir="ltr">112-5939971-8962610</span></div>
			<div class="order-header__header-list-item"><span class="a-size-base">December 3, 2024</span></div>
			<div class="yohtmlc-order-total"><span class="value">$3.00</span></div>
		</div>
		<div class="order-card">
			<div class="yohtmlc-order-id"><span dir="ltr">113-5939971-8962610</span></div>
			<div class="order-header__header-list-item"><span class="a-size-base">December 4, 2024</span></div>
		</div>
	</div>`)

	orders, err := ParseHistoryPage(context.Background(), sel, cfg, 0)
	require.Len(t, orders, 1)
	require.Equal(t, "112-5939971-8962610-0", orders[0].PaymentReferenceID)
	require.ErrorIs(t, err, ErrFieldRequired)
	require.Contains(t, err.Error(), "order at index 1")
}

func TestParseDetailsPageWithoutContainer(t *testing.T) {
	cfg, tel := testConfig()

	_, err := ParseDetailsPage(context.Background(), parse(t, `<div>nothing here</div>`), cfg, nil)

	var entityErr *EntityError
	require.ErrorAs(t, err, &entityErr)
	require.Equal(t, "order_details", entityErr.Field)
	require.Equal(t, []string{"order.order_details"}, tel.broken())
}

package entity

// Selectors holds the css selectors tried (in order) for every entity and field.
type Selectors struct {
	OrderHistoryEntity []string `json:"order_history_entity"`
	OrderDetailsEntity []string `json:"order_details_entity"`
	ItemEntity         []string `json:"item_entity"`
	ShipmentEntity     []string `json:"shipment_entity"`
	OrderSkipItems     []string `json:"order_skip_items"`

	OrderNumber          []string `json:"order_number"`
	OrderSearchInput     []string `json:"order_search_input"`
	OrderPlacedDate      []string `json:"order_placed_date"`
	OrderLegacyDate      []string `json:"order_legacy_date"`
	OrderDetailsLink     []string `json:"order_details_link"`
	OrderInvoiceLink     []string `json:"order_invoice_link"`
	OrderInvoicePopover  []string `json:"order_invoice_popover"`
	OrderGrandTotal      []string `json:"order_grand_total"`
	OrderLegacyTotal     []string `json:"order_legacy_total"`
	OrderGiftCard        []string `json:"order_gift_card"`
	OrderAddress         []string `json:"order_address"`
	OrderAddressPopover  []string `json:"order_address_popover"`
	OrderAddressScript   []string `json:"order_address_script"`
	OrderPaymentMethod   []string `json:"order_payment_method"`
	OrderPaymentLast4    []string `json:"order_payment_last_4"`
	SubtotalsRow         []string `json:"subtotals_row"`
	SubtotalsPreload     []string `json:"subtotals_preload"`
	SubtotalsInner       []string `json:"subtotals_inner"`

	ItemTitle    []string `json:"item_title"`
	ItemLink     []string `json:"item_link"`
	ItemImgLink  []string `json:"item_img_link"`
	ItemPrice    []string `json:"item_price"`
	ItemSeller   []string `json:"item_seller"`
	ItemQuantity []string `json:"item_quantity"`
	ItemReturn   []string `json:"item_return"`

	ShipmentStatus       []string `json:"shipment_status"`
	ShipmentTrackingLink []string `json:"shipment_tracking_link"`

	RecipientName    []string `json:"recipient_name"`
	RecipientAddress []string `json:"recipient_address"`
}

func defaultSelectors() Selectors {
	return Selectors{
		OrderHistoryEntity: []string{"div.order-card", "div.js-order-card", "div.order"},
		OrderDetailsEntity: []string{"div#orderDetails", "div#ordersContainer", "div[data-component='orderCard']"},
		ItemEntity: []string{
			"div[data-component='purchasedItems'] div.yohtmlc-item",
			"div.yohtmlc-item",
			"div.item-box",
		},
		ShipmentEntity: []string{
			"div[data-component='shipments'] div.a-box",
			"div.shipment",
			"div.delivery-box",
		},
		OrderSkipItems: []string{"div[data-component='cancelledOrder']", "div.order-skip-items"},

		OrderNumber: []string{
			"[data-component='orderId']",
			"div.yohtmlc-order-id span[dir='ltr']",
			"div.yohtmlc-order-id bdi[dir='ltr']",
			"span.order-date-invoice-item bdi[dir='ltr']",
		},
		OrderSearchInput: []string{"#searchOrdersInput"},
		OrderPlacedDate: []string{
			"[data-component='orderDate']",
			"span.order-date-invoice-item",
			"div.order-info div.a-span3 span.value",
			"div.order-header__header-list-item span.a-size-base",
		},
		OrderLegacyDate:     []string{"td[bgcolor='#ddddcc'] > b"},
		OrderDetailsLink:    []string{"a.yohtmlc-order-details-link", "a[href*='order-details']"},
		OrderInvoiceLink:    []string{"a[href*='/gp/css/summary/print.html']", "a[href*='/documents/download/']"},
		OrderInvoicePopover: []string{"div.yohtmlc-order-level-connections span[data-a-popover]", "[data-component='invoice'] span[data-a-popover]"},
		OrderGrandTotal: []string{
			"div.yohtmlc-order-total span.value",
			"div.yohtmlc-order-total span.a-color-base",
			"[data-component='orderTotal'] span.a-color-base",
		},
		OrderLegacyTotal:    []string{"td.a-text-right b"},
		OrderGiftCard:       []string{"div.gift-card-instance", "[data-component='giftCardInstance']"},
		OrderAddress:        []string{"div.displayAddressDiv", "[data-component='shippingAddress'] ul"},
		OrderAddressPopover: []string{"div.recipient span[data-a-popover]", "div.yohtmlc-recipient span[data-a-popover]"},
		OrderAddressScript:  []string{"script[id^='shipToData']"},
		OrderPaymentMethod: []string{
			"img.pmts-payment-credit-card-instrument-logo",
			"[data-component='paymentMethods'] img",
		},
		OrderPaymentLast4: []string{
			"div.pmts-payments-instrument-detail-box-paystationpaymentmethod span.a-color-base",
			"[data-component='paymentMethods'] span.a-color-base",
		},
		SubtotalsRow:     []string{"div#od-subtotals div.a-row", "[data-component='chargeSummary'] div.od-line-item-row"},
		SubtotalsPreload: []string{"div.a-popover-preload"},
		SubtotalsInner:   []string{"div.a-span-last", "div.od-line-item-row-content"},

		ItemTitle: []string{
			"[data-component='itemTitle']",
			"div.yohtmlc-product-title",
			"a.a-link-normal",
		},
		ItemLink: []string{
			"[data-component='itemTitle'] a",
			"div.yohtmlc-product-title a",
			"a.a-link-normal",
		},
		ItemImgLink: []string{"[data-component='itemImage'] img", "a img"},
		ItemPrice: []string{
			"[data-component='unitPrice'] span.a-offscreen",
			"span.a-color-price",
		},
		ItemSeller: []string{
			"[data-component='orderedMerchant']",
			"span.a-size-small.a-color-secondary",
		},
		ItemQuantity: []string{
			"[data-component='itemQuantity']",
			"span.item-view-qty",
			"span.od-item-view-qty",
		},
		ItemReturn: []string{
			"[data-component='itemReturnEligibility']",
			"div.a-row.a-size-small",
		},

		ShipmentStatus: []string{
			"[data-component='shipmentStatus']",
			"div.js-shipment-info-container div.a-row",
			"span.delivery-box__primary-text",
		},
		ShipmentTrackingLink: []string{
			"span.track-package-button a",
			"[data-component='shipmentTrackingLink'] a",
		},

		RecipientName: []string{
			"li.displayAddressFullName",
			"div.displayAddressFullName",
			"div > div:first-child",
		},
		RecipientAddress: []string{
			"li.displayAddressAddressLine1, li.displayAddressAddressLine2, li.displayAddressCityStateOrRegionPostalCode, li.displayAddressCountryName",
			"div > div:nth-child(n+2)",
		},
	}
}

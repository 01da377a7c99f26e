package entity

import (
	"strconv"
	"time"
)

const recordDateLayout = time.DateOnly

// Record is an Order flattened into a single row.
type Record struct {
	OrderID                 string   `json:"order_id"`
	PaymentReferenceID      string   `json:"payment_reference_id"`
	Index                   *int     `json:"index,omitempty"`
	OrderDate               string   `json:"order_date"`
	PaymentDate             string   `json:"payment_date"`
	Title                   string   `json:"title"`
	ItemQuantity            int      `json:"item_quantity"`
	GrandTotal              float64  `json:"grand_total"`
	Recipient               string   `json:"recipient,omitempty"`
	OrderDetailsLink        string   `json:"order_details_link,omitempty"`
	InvoiceLink             string   `json:"invoice_link,omitempty"`
	PaymentMethod           string   `json:"payment_method,omitempty"`
	PaymentMethodLast4      string   `json:"payment_method_last_4,omitempty"`
	ItemSubtotal            *float64 `json:"item_subtotal,omitempty"`
	ItemShippingAndHandling float64  `json:"item_shipping_and_handling"`
	ItemPromotion           float64  `json:"item_promotion"`
	TotalBeforeTax          *float64 `json:"total_before_tax,omitempty"`
	EstimatedTax            *float64 `json:"estimated_tax,omitempty"`
	FederalTax              *float64 `json:"federal_tax,omitempty"`
	ProvincialTax           *float64 `json:"provincial_tax,omitempty"`
	RegulatoryFee           *float64 `json:"regulatory_fee,omitempty"`
	RefundTotal             *float64 `json:"refund_total,omitempty"`
	FullDetails             bool     `json:"full_details"`
}

func NewRecord(o *Order) Record {
	record := Record{
		OrderID:                 o.OrderID,
		PaymentReferenceID:      o.PaymentReferenceID,
		Index:                   o.Index,
		Title:                   o.Title,
		ItemQuantity:            o.ItemQuantity,
		GrandTotal:              o.GrandTotal,
		OrderDetailsLink:        o.OrderDetailsLink,
		InvoiceLink:             o.InvoiceLink,
		PaymentMethod:           o.PaymentMethod,
		PaymentMethodLast4:      o.PaymentMethodLast4,
		ItemSubtotal:            o.ItemSubtotal,
		ItemShippingAndHandling: o.ItemShippingAndHandling,
		ItemPromotion:           o.ItemPromotion,
		TotalBeforeTax:          o.TotalBeforeTax,
		EstimatedTax:            o.EstimatedTax,
		FederalTax:              o.FederalTax,
		ProvincialTax:           o.ProvincialTax,
		RegulatoryFee:           o.RegulatoryFee,
		RefundTotal:             o.RefundTotal,
		FullDetails:             o.FullDetails,
	}
	if !o.OrderDate.IsZero() {
		record.OrderDate = o.OrderDate.Format(recordDateLayout)
		record.PaymentDate = o.PaymentDate.Format(recordDateLayout)
	}
	if o.Recipient != nil {
		record.Recipient = o.Recipient.Name
	}
	return record
}

// RecordHeader lists the csv columns in the order CSV writes them.
func RecordHeader() []string {
	return []string{
		"order_id",
		"payment_reference_id",
		"index",
		"order_date",
		"payment_date",
		"title",
		"item_quantity",
		"grand_total",
		"recipient",
		"order_details_link",
		"invoice_link",
		"payment_method",
		"payment_method_last_4",
		"item_subtotal",
		"item_shipping_and_handling",
		"item_promotion",
		"total_before_tax",
		"estimated_tax",
		"federal_tax",
		"provincial_tax",
		"regulatory_fee",
		"refund_total",
		"full_details",
	}
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func formatOptionalAmount(value *float64) string {
	if value == nil {
		return ""
	}
	return formatAmount(*value)
}

// CSV renders the record as a row matching RecordHeader, nil amounts are
// written as empty cells.
func (r Record) CSV() []string {
	index := ""
	if r.Index != nil {
		index = strconv.Itoa(*r.Index)
	}
	return []string{
		r.OrderID,
		r.PaymentReferenceID,
		index,
		r.OrderDate,
		r.PaymentDate,
		r.Title,
		strconv.Itoa(r.ItemQuantity),
		formatAmount(r.GrandTotal),
		r.Recipient,
		r.OrderDetailsLink,
		r.InvoiceLink,
		r.PaymentMethod,
		r.PaymentMethodLast4,
		formatOptionalAmount(r.ItemSubtotal),
		formatAmount(r.ItemShippingAndHandling),
		formatAmount(r.ItemPromotion),
		formatOptionalAmount(r.TotalBeforeTax),
		formatOptionalAmount(r.EstimatedTax),
		formatOptionalAmount(r.FederalTax),
		formatOptionalAmount(r.ProvincialTax),
		formatOptionalAmount(r.RegulatoryFee),
		formatOptionalAmount(r.RefundTotal),
		strconv.FormatBool(r.FullDetails),
	}
}

package db

import (
	"database/sql"
)

type ExportRun struct {
	ID         string
	StartedAt  int64
	OrderCount int64
}

type AmazonOrder struct {
	PaymentReferenceID      string
	OrderID                 string
	RunID                   string
	Position                sql.NullInt64
	OrderDate               sql.NullString
	PaymentDate             sql.NullString
	Title                   string
	ItemQuantity            int64
	GrandTotal              float64
	Recipient               sql.NullString
	OrderDetailsLink        sql.NullString
	InvoiceLink             sql.NullString
	PaymentMethod           sql.NullString
	PaymentMethodLast4      sql.NullString
	ItemSubtotal            sql.NullFloat64
	ItemShippingAndHandling float64
	ItemPromotion           float64
	TotalBeforeTax          sql.NullFloat64
	EstimatedTax            sql.NullFloat64
	FederalTax              sql.NullFloat64
	ProvincialTax           sql.NullFloat64
	RegulatoryFee           sql.NullFloat64
	RefundTotal             sql.NullFloat64
	FullDetails             bool
}

type AmazonOrderItem struct {
	PaymentReferenceID string
	Position           int64
	Title              string
	Link               sql.NullString
	Price              sql.NullFloat64
	Seller             sql.NullString
	Quantity           int64
}

package db

import (
	"context"
	"database/sql"
)

const createExportRun = `-- name: CreateExportRun :exec
insert into export_run(id, started_at, order_count) values (?, ?, ?)
`

type CreateExportRunParams struct {
	ID         string
	StartedAt  int64
	OrderCount int64
}

func (q *Queries) CreateExportRun(ctx context.Context, arg CreateExportRunParams) error {
	_, err := q.db.ExecContext(ctx, createExportRun, arg.ID, arg.StartedAt, arg.OrderCount)
	return err
}

const upsertOrder = `-- name: UpsertOrder :exec
insert into amazon_order(
    payment_reference_id, order_id, run_id, position, order_date, payment_date,
    title, item_quantity, grand_total, recipient, order_details_link, invoice_link,
    payment_method, payment_method_last_4, item_subtotal, item_shipping_and_handling,
    item_promotion, total_before_tax, estimated_tax, federal_tax, provincial_tax,
    regulatory_fee, refund_total, full_details
) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
on conflict(payment_reference_id) do update set
    order_id = excluded.order_id,
    run_id = excluded.run_id,
    position = excluded.position,
    order_date = excluded.order_date,
    payment_date = excluded.payment_date,
    title = excluded.title,
    item_quantity = excluded.item_quantity,
    grand_total = excluded.grand_total,
    recipient = excluded.recipient,
    order_details_link = excluded.order_details_link,
    invoice_link = excluded.invoice_link,
    payment_method = excluded.payment_method,
    payment_method_last_4 = excluded.payment_method_last_4,
    item_subtotal = excluded.item_subtotal,
    item_shipping_and_handling = excluded.item_shipping_and_handling,
    item_promotion = excluded.item_promotion,
    total_before_tax = excluded.total_before_tax,
    estimated_tax = excluded.estimated_tax,
    federal_tax = excluded.federal_tax,
    provincial_tax = excluded.provincial_tax,
    regulatory_fee = excluded.regulatory_fee,
    refund_total = excluded.refund_total,
    full_details = excluded.full_details
`

type UpsertOrderParams struct {
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

func (q *Queries) UpsertOrder(ctx context.Context, arg UpsertOrderParams) error {
	_, err := q.db.ExecContext(ctx, upsertOrder,
		arg.PaymentReferenceID,
		arg.OrderID,
		arg.RunID,
		arg.Position,
		arg.OrderDate,
		arg.PaymentDate,
		arg.Title,
		arg.ItemQuantity,
		arg.GrandTotal,
		arg.Recipient,
		arg.OrderDetailsLink,
		arg.InvoiceLink,
		arg.PaymentMethod,
		arg.PaymentMethodLast4,
		arg.ItemSubtotal,
		arg.ItemShippingAndHandling,
		arg.ItemPromotion,
		arg.TotalBeforeTax,
		arg.EstimatedTax,
		arg.FederalTax,
		arg.ProvincialTax,
		arg.RegulatoryFee,
		arg.RefundTotal,
		arg.FullDetails,
	)
	return err
}

const deleteOrderItems = `-- name: DeleteOrderItems :exec
delete from amazon_order_item where payment_reference_id = ?
`

func (q *Queries) DeleteOrderItems(ctx context.Context, paymentReferenceID string) error {
	_, err := q.db.ExecContext(ctx, deleteOrderItems, paymentReferenceID)
	return err
}

const createOrderItem = `-- name: CreateOrderItem :exec
insert into amazon_order_item(
    payment_reference_id, position, title, link, price, seller, quantity
) values (?, ?, ?, ?, ?, ?, ?)
`

type CreateOrderItemParams struct {
	PaymentReferenceID string
	Position           int64
	Title              string
	Link               sql.NullString
	Price              sql.NullFloat64
	Seller             sql.NullString
	Quantity           int64
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) error {
	_, err := q.db.ExecContext(ctx, createOrderItem,
		arg.PaymentReferenceID,
		arg.Position,
		arg.Title,
		arg.Link,
		arg.Price,
		arg.Seller,
		arg.Quantity,
	)
	return err
}

const getOrders = `-- name: GetOrders :many
select payment_reference_id, order_id, run_id, position, order_date, payment_date, title, item_quantity, grand_total, recipient, order_details_link, invoice_link, payment_method, payment_method_last_4, item_subtotal, item_shipping_and_handling, item_promotion, total_before_tax, estimated_tax, federal_tax, provincial_tax, regulatory_fee, refund_total, full_details from amazon_order order by order_date desc, payment_reference_id
`

func (q *Queries) GetOrders(ctx context.Context) ([]AmazonOrder, error) {
	rows, err := q.db.QueryContext(ctx, getOrders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AmazonOrder
	for rows.Next() {
		var i AmazonOrder
		if err := rows.Scan(
			&i.PaymentReferenceID,
			&i.OrderID,
			&i.RunID,
			&i.Position,
			&i.OrderDate,
			&i.PaymentDate,
			&i.Title,
			&i.ItemQuantity,
			&i.GrandTotal,
			&i.Recipient,
			&i.OrderDetailsLink,
			&i.InvoiceLink,
			&i.PaymentMethod,
			&i.PaymentMethodLast4,
			&i.ItemSubtotal,
			&i.ItemShippingAndHandling,
			&i.ItemPromotion,
			&i.TotalBeforeTax,
			&i.EstimatedTax,
			&i.FederalTax,
			&i.ProvincialTax,
			&i.RegulatoryFee,
			&i.RefundTotal,
			&i.FullDetails,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getOrderItems = `-- name: GetOrderItems :many
select payment_reference_id, position, title, link, price, seller, quantity from amazon_order_item where payment_reference_id = ? order by position
`

func (q *Queries) GetOrderItems(ctx context.Context, paymentReferenceID string) ([]AmazonOrderItem, error) {
	rows, err := q.db.QueryContext(ctx, getOrderItems, paymentReferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AmazonOrderItem
	for rows.Next() {
		var i AmazonOrderItem
		if err := rows.Scan(
			&i.PaymentReferenceID,
			&i.Position,
			&i.Title,
			&i.Link,
			&i.Price,
			&i.Seller,
			&i.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getExportRun = `-- name: GetExportRun :one
select id, started_at, order_count from export_run where id = ?
`

func (q *Queries) GetExportRun(ctx context.Context, id string) (ExportRun, error) {
	row := q.db.QueryRowContext(ctx, getExportRun, id)
	var i ExportRun
	err := row.Scan(&i.ID, &i.StartedAt, &i.OrderCount)
	return i, err
}

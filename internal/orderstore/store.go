package orderstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"amazonorders/internal/chrono"
	"amazonorders/internal/entity"
	"amazonorders/internal/orderstore/db"
	configlibsql "amazonorders/lib/configutil/libsql"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("amazonorders.internal.orderstore")

type Store struct {
	db     *sql.DB
	qry    *db.Queries
	makeTx db.MakeTx
	clock  chrono.TimeAPI
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:     database,
		qry:    db.New(database),
		makeTx: db.NewMakeTx(database),
		clock:  chrono.StandardTime{},
	}
}

// WithClock returns a copy of the store that stamps export runs using clock.
func (s Store) WithClock(clock chrono.TimeAPI) Store {
	s.clock = clock
	return s
}

// Open connects to a sqlite file or a libsql url and makes sure the schema exists.
func Open(ctx context.Context, target string) (Store, error) {
	database, err := configlibsql.FromTarget(target).OpenDB()
	if err != nil {
		return Store{}, err
	}
	_, err = database.ExecContext(ctx, db.Schema)
	if err != nil {
		database.Close()
		return Store{}, fmt.Errorf("apply schema: %w", err)
	}
	return NewStore(database), nil
}

func (s Store) Close() error {
	return s.db.Close()
}

// SaveOrders writes orders under a new export run. Orders already stored under
// the same payment reference id are replaced along with their items.
func (s Store) SaveOrders(ctx context.Context, orders []*entity.Order) (uuid.UUID, error) {
	ctx, span := tracer.Start(ctx, "SaveOrders")
	defer span.End()

	runID := uuid.New()
	span.SetAttributes(
		attribute.String("run_id", runID.String()),
		attribute.Int("orders", len(orders)),
	)

	txqry, discard, commit, err := s.makeTx(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to begin transaction")
		return uuid.Nil, err
	}
	defer discard()

	err = txqry.CreateExportRun(ctx, db.CreateExportRunParams{
		ID:         runID.String(),
		StartedAt:  s.clock.Now().Unix(),
		OrderCount: int64(len(orders)),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create export run")
		return uuid.Nil, err
	}

	for _, o := range orders {
		err = saveOrder(ctx, txqry, runID.String(), o)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to save order")
			return uuid.Nil, fmt.Errorf("save order %s: %w", o.PaymentReferenceID, err)
		}
	}

	err = commit()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to commit")
		return uuid.Nil, err
	}
	return runID, nil
}

func saveOrder(ctx context.Context, txqry *db.Queries, runID string, o *entity.Order) error {
	record := entity.NewRecord(o)

	row := db.UpsertOrderParams{
		PaymentReferenceID:      record.PaymentReferenceID,
		OrderID:                 record.OrderID,
		RunID:                   runID,
		OrderDate:               nullString(record.OrderDate),
		PaymentDate:             nullString(record.PaymentDate),
		Title:                   record.Title,
		ItemQuantity:            int64(record.ItemQuantity),
		GrandTotal:              record.GrandTotal,
		Recipient:               nullString(record.Recipient),
		OrderDetailsLink:        nullString(record.OrderDetailsLink),
		InvoiceLink:             nullString(record.InvoiceLink),
		PaymentMethod:           nullString(record.PaymentMethod),
		PaymentMethodLast4:      nullString(record.PaymentMethodLast4),
		ItemSubtotal:            nullFloat(record.ItemSubtotal),
		ItemShippingAndHandling: record.ItemShippingAndHandling,
		ItemPromotion:           record.ItemPromotion,
		TotalBeforeTax:          nullFloat(record.TotalBeforeTax),
		EstimatedTax:            nullFloat(record.EstimatedTax),
		FederalTax:              nullFloat(record.FederalTax),
		ProvincialTax:           nullFloat(record.ProvincialTax),
		RegulatoryFee:           nullFloat(record.RegulatoryFee),
		RefundTotal:             nullFloat(record.RefundTotal),
		FullDetails:             record.FullDetails,
	}
	if record.Index != nil {
		row.Position = sql.NullInt64{Int64: int64(*record.Index), Valid: true}
	}

	err := txqry.UpsertOrder(ctx, row)
	if err != nil {
		return err
	}
	err = txqry.DeleteOrderItems(ctx, record.PaymentReferenceID)
	if err != nil {
		return err
	}
	for i, item := range o.Items {
		err = txqry.CreateOrderItem(ctx, db.CreateOrderItemParams{
			PaymentReferenceID: record.PaymentReferenceID,
			Position:           int64(i),
			Title:              item.Title,
			Link:               nullString(item.Link),
			Price:              nullFloat(item.Price),
			Seller:             nullString(item.Seller),
			Quantity:           int64(item.Quantity),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Orders reads every stored order back, newest first. Only the columns the
// store keeps are populated.
func (s Store) Orders(ctx context.Context) ([]*entity.Order, error) {
	ctx, span := tracer.Start(ctx, "Orders")
	defer span.End()

	rows, err := s.qry.GetOrders(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to query orders")
		return nil, err
	}

	orders := make([]*entity.Order, len(rows))
	for i, r := range rows {
		itemRows, err := s.qry.GetOrderItems(ctx, r.PaymentReferenceID)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to query order items")
			return nil, err
		}
		orders[i] = orderFromRow(r, itemRows)
	}
	return orders, nil
}

func orderFromRow(r db.AmazonOrder, itemRows []db.AmazonOrderItem) *entity.Order {
	o := &entity.Order{
		OrderID:                 r.OrderID,
		PaymentReferenceID:      r.PaymentReferenceID,
		Title:                   r.Title,
		ItemQuantity:            int(r.ItemQuantity),
		GrandTotal:              r.GrandTotal,
		OrderDetailsLink:        r.OrderDetailsLink.String,
		InvoiceLink:             r.InvoiceLink.String,
		PaymentMethod:           r.PaymentMethod.String,
		PaymentMethodLast4:      r.PaymentMethodLast4.String,
		ItemSubtotal:            floatPtr(r.ItemSubtotal),
		ItemShippingAndHandling: r.ItemShippingAndHandling,
		ItemPromotion:           r.ItemPromotion,
		TotalBeforeTax:          floatPtr(r.TotalBeforeTax),
		EstimatedTax:            floatPtr(r.EstimatedTax),
		FederalTax:              floatPtr(r.FederalTax),
		ProvincialTax:           floatPtr(r.ProvincialTax),
		RegulatoryFee:           floatPtr(r.RegulatoryFee),
		RefundTotal:             floatPtr(r.RefundTotal),
		FullDetails:             r.FullDetails,
		Items:                   make([]*entity.Item, len(itemRows)),
	}
	if r.Position.Valid {
		index := int(r.Position.Int64)
		o.Index = &index
	}
	if r.OrderDate.Valid {
		o.OrderDate, _ = time.Parse(time.DateOnly, r.OrderDate.String)
	}
	if r.PaymentDate.Valid {
		o.PaymentDate, _ = time.Parse(time.DateOnly, r.PaymentDate.String)
	}
	if r.Recipient.Valid {
		o.Recipient = &entity.Recipient{Name: r.Recipient.String}
	}
	for i, item := range itemRows {
		o.Items[i] = &entity.Item{
			Title:    item.Title,
			Link:     item.Link.String,
			Price:    floatPtr(item.Price),
			Seller:   item.Seller.String,
			Quantity: int(item.Quantity),
		}
	}
	return o
}

// Run looks up an export run by id.
func (s Store) Run(ctx context.Context, runID uuid.UUID) (db.ExportRun, error) {
	return s.qry.GetExportRun(ctx, runID.String())
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	value := f.Float64
	return &value
}

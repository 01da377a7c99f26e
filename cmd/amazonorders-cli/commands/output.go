package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"amazonorders/internal/entity"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatCSV   = "csv"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func writeOrders(out io.Writer, format string, orders []*entity.Order) error {
	switch format {
	case formatTable:
		writeTable(out, orders)
		return nil
	case formatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(orders)
	case formatCSV:
		return writeCSV(out, orders)
	default:
		return fmt.Errorf("unknown format '%s', expected one of %s", format, strings.Join([]string{formatTable, formatJSON, formatCSV}, ", "))
	}
}

func writeTable(out io.Writer, orders []*entity.Order) {
	t := newTable(out)
	t.AppendHeader(table.Row{"#", "Order", "Date", "Total", "Items", "Recipient"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Total", Align: text.AlignRight},
		{Name: "Items", WidthMax: 60},
	})

	total := 0.0
	for _, o := range orders {
		record := entity.NewRecord(o)
		index := ""
		if record.Index != nil {
			index = fmt.Sprint(*record.Index)
		}
		t.AppendRow(table.Row{
			index,
			record.OrderID,
			record.OrderDate,
			fmt.Sprintf("%.2f", record.GrandTotal),
			record.Title,
			record.Recipient,
		})
		total += record.GrandTotal
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d orders", len(orders)), "", fmt.Sprintf("%.2f", total)})
	t.Render()
}

func writeCSV(out io.Writer, orders []*entity.Order) error {
	w := csv.NewWriter(out)
	err := w.Write(entity.RecordHeader())
	if err != nil {
		return err
	}
	for _, o := range orders {
		err = w.Write(entity.NewRecord(o).CSV())
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

package commands

import (
	"context"
	"fmt"

	"amazonorders/internal/entity"
	"amazonorders/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	historyStartIndex *int
	historyPageSize   *int
	historyFormat     *string
	historyJobs       *int

	detailsHistory  *string
	detailsPosition *int
	detailsFormat   *string
)

func init() {
	historyStartIndex = parseHistoryCmd.Flags().Int("start-index", 0, "The index of the first order on the first page.")
	historyPageSize = parseHistoryCmd.Flags().Int("page-size", 10, "The number of orders on each page, used to offset the index of later files.")
	historyFormat = parseHistoryCmd.Flags().String("format", formatTable, "Output format, one of table, json or csv.")
	historyJobs = parseHistoryCmd.Flags().Int("jobs", 4, "The number of files parsed at once.")

	detailsHistory = parseDetailsCmd.Flags().String("history", "", "A history page to take missing fields from.")
	detailsPosition = parseDetailsCmd.Flags().Int("position", 0, "The index of the order on the --history page.")
	detailsFormat = parseDetailsCmd.Flags().String("format", formatJSON, "Output format, one of table, json or csv.")

	parseCmd.AddCommand(parseHistoryCmd)
	parseCmd.AddCommand(parseDetailsCmd)
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parses saved html pages into orders.",
}

var parseHistoryCmd = &cobra.Command{
	Use:   "history <page.html>...",
	Short: "Parses one or more order history pages.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to load config", err)
		}

		orders, err := parseHistoryFiles(cmd.Context(), cfg, args, historyOptions{
			startIndex: *historyStartIndex,
			pageSize:   *historyPageSize,
			jobs:       *historyJobs,
		})
		if err != nil {
			serviceutil.Fatal("failed to parse history pages", err)
		}

		err = writeOrders(cmd.OutOrStdout(), *historyFormat, orders)
		if err != nil {
			serviceutil.Fatal("failed to write orders", err)
		}
	},
}

var parseDetailsCmd = &cobra.Command{
	Use:   "details <details.html> [--history <page.html> --position <n>]",
	Short: "Parses an order details page, optionally merging the matching order of a history page.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to load config", err)
		}

		var clone *entity.Order
		if *detailsHistory != "" {
			clone, err = historyOrderAt(ctx, cfg, *detailsHistory, *detailsPosition)
			if err != nil {
				serviceutil.Fatal("failed to read history order", err)
			}
		}

		doc, err := readDocument(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read details page", err)
		}
		order, err := entity.ParseDetailsPage(ctx, doc.Selection, scopedConfig(cfg, args[0]), clone)
		if err != nil {
			serviceutil.Fatal("failed to parse details page", err)
		}

		err = writeOrders(cmd.OutOrStdout(), *detailsFormat, []*entity.Order{order})
		if err != nil {
			serviceutil.Fatal("failed to write order", err)
		}
	},
}

// historyOrderAt returns the order at position on the history page at path.
// When that order is missing, the errors of the orders that failed to parse
// are wrapped into the returned error.
func historyOrderAt(ctx context.Context, cfg *entity.Config, path string, position int) (*entity.Order, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	orders, parseErr := entity.ParseHistoryPage(ctx, doc.Selection, scopedConfig(cfg, path), 0)
	for _, o := range orders {
		if o.Index != nil && *o.Index == position {
			return o, nil
		}
	}
	if parseErr != nil {
		return nil, fmt.Errorf("no order at position %d in %s: %w", position, path, parseErr)
	}
	return nil, fmt.Errorf("no order at position %d in %s", position, path)
}

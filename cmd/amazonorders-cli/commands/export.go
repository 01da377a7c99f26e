package commands

import (
	"fmt"
	"log/slog"
	"time"

	"amazonorders/internal/orderstore"
	"amazonorders/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	exportDb         *string
	exportStartIndex *int
	exportPageSize   *int
	exportJobs       *int
)

func init() {
	exportDb = exportCmd.Flags().String("db", "orders.db", "A sqlite file or libsql:// url to write orders to.")
	exportStartIndex = exportCmd.Flags().Int("start-index", 0, "The index of the first order on the first page.")
	exportPageSize = exportCmd.Flags().Int("page-size", 10, "The number of orders on each page.")
	exportJobs = exportCmd.Flags().Int("jobs", 4, "The number of files parsed at once.")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <page.html>... [--db <path/to/orders.db>]",
	Short: "Parses history pages and writes the orders to a database.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig()
		if err != nil {
			serviceutil.Fatal("failed to load config", err)
		}

		t1 := time.Now()
		orders, err := parseHistoryFiles(ctx, cfg, args, historyOptions{
			startIndex: *exportStartIndex,
			pageSize:   *exportPageSize,
			jobs:       *exportJobs,
		})
		if err != nil {
			serviceutil.Fatal("failed to parse history pages", err)
		}

		store, err := orderstore.Open(ctx, *exportDb)
		if err != nil {
			serviceutil.Fatal("failed to open db", err)
		}
		defer store.Close()

		runID, err := store.SaveOrders(ctx, orders)
		if err != nil {
			serviceutil.Fatal("failed to save orders", err)
		}
		t2 := time.Now()

		slog.Info("export time", "seconds", t2.Sub(t1).Seconds())
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d orders as run %s\n", len(orders), runID)
	},
}

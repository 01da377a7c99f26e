package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"amazonorders/internal/entity"
	"amazonorders/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

func readDocument(path string) (*goquery.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse html %s: %w", path, err)
	}
	return doc, nil
}

// scopedConfig is a copy of cfg that prefixes telemetry ids with the file name.
func scopedConfig(cfg *entity.Config, path string) *entity.Config {
	scoped := *cfg
	inner := cfg.Telemetry
	if inner == nil {
		inner = telemetry.SlogAPI{}
	}
	scoped.Telemetry = telemetry.NewScopedAPI(filepath.Base(path), inner)
	return &scoped
}

type historyOptions struct {
	startIndex int
	pageSize   int
	jobs       int
}

// parseHistoryFiles reads every file as one history page. The page at position
// i starts at startIndex + i*pageSize, so the result does not depend on the
// order the files finish in. Orders that fail to build are logged and left out.
func parseHistoryFiles(ctx context.Context, cfg *entity.Config, files []string, opts historyOptions) ([]*entity.Order, error) {
	pages := make([][]*entity.Order, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.jobs, 1))
	for i, path := range files {
		g.Go(func() error {
			doc, err := readDocument(path)
			if err != nil {
				return err
			}

			pageCfg := scopedConfig(cfg, path)
			orders, err := entity.ParseHistoryPage(ctx, doc.Selection, pageCfg, opts.startIndex+i*opts.pageSize)
			if err != nil {
				slog.WarnContext(ctx, "some orders could not be parsed", "file", path, "err", err)
			}
			pages[i] = orders
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		return nil, err
	}

	var orders []*entity.Order
	for _, page := range pages {
		orders = append(orders, page...)
	}
	return orders, nil
}

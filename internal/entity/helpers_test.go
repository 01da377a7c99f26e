package entity

import (
	_ "embed"
	"fmt"
	"sync"
	"testing"

	"amazonorders/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

var (
	//go:embed testdata/order-history.html
	historyPage string
	//go:embed testdata/order-details-mod.html
	detailsModPage string
	//go:embed testdata/order-currency-stripped.html
	currencyStrippedPage string
	//go:embed testdata/order-promotion-applied.html
	promotionAppliedPage string
	//go:embed testdata/order-details-coupon-savings.html
	couponSavingsPage string
	//go:embed testdata/order-details-coupon-savings-multiple.html
	couponSavingsMultiplePage string
	//go:embed testdata/order-details-111-6778632-7354601.html
	freeShippingPage string
	//go:embed testdata/order-details-digital-legacy.html
	digitalLegacyPage string
)

type report struct {
	kind string
	id   string
}

// recordingAPI keeps every report it receives so tests can assert on them.
type recordingAPI struct {
	mutex   sync.Mutex
	reports []report
}

func (r *recordingAPI) add(kind, id string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, report{kind: kind, id: id})
}

func (r *recordingAPI) ReportBroken(id string, params ...any) { r.add("broken", id) }

func (r *recordingAPI) ReportWarning(id string, params ...any) { r.add("warning", id) }

func (r *recordingAPI) ReportDebug(msg string, params ...any) { r.add("debug", msg) }

func (r *recordingAPI) ReportCount(id string, count int64) {
	r.add("count", fmt.Sprintf("%s=%d", id, count))
}

func (r *recordingAPI) broken() []string {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	out := []string{}
	for _, rep := range r.reports {
		if rep.kind == "broken" {
			out = append(out, rep.id)
		}
	}
	return out
}

func testConfig() (*Config, *recordingAPI) {
	tel := &recordingAPI{}
	cfg := DefaultConfig()
	cfg.Telemetry = tel
	return cfg, tel
}

func parse(t testing.TB, page string) *goquery.Selection {
	t.Helper()
	sel, err := htmlutil.Parse(page)
	require.NoError(t, err)
	return sel
}

func ptr[T any](value T) *T {
	return &value
}

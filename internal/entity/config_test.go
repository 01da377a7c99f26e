package entity

import (
	"os"
	"path/filepath"
	"testing"

	"amazonorders/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "https://www.amazon.com", cfg.Constants.BaseURL)
	require.NotNil(t, cfg.ItemFactory)
	require.NotNil(t, cfg.ShipmentFactory)
	require.Equal(t, telemetry.SlogAPI{}, cfg.Telemetry)
	require.NotEmpty(t, cfg.Selectors.OrderGrandTotal)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "amazonorders.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{
		constants: { base_url: "https://www.amazon.ca/" },
		selectors: {
			// newer layout
			order_grand_total: ["div.order-total span.amount"],
		},
	}`), 0666))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://www.amazon.ca", cfg.Constants.BaseURL)
	require.Equal(t, defaultOrderDetailsPath, cfg.Constants.OrderDetailsPath)
	require.Equal(t, []string{"div.order-total span.amount"}, cfg.Selectors.OrderGrandTotal)
	require.Equal(t, DefaultConfig().Selectors.OrderNumber, cfg.Selectors.OrderNumber)
	require.NotNil(t, cfg.ItemFactory)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

package entity

import (
	"context"
	"strings"

	"amazonorders/lib/configutil"
	"amazonorders/lib/telemetry"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultBaseURL          = "https://www.amazon.com"
	defaultOrderDetailsPath = "/gp/your-account/order-details"
	defaultInvoiceMenuPath  = "/your-orders/invoice/popover"
)

type Constants struct {
	// BaseURL is used to resolve relative links when the page does not say
	// which host it was served from.
	BaseURL          string `json:"base_url"`
	OrderDetailsPath string `json:"order_details_path"`
	InvoiceMenuPath  string `json:"invoice_menu_path"`
}

// ItemFactory builds an Item out of the fragment matched by Selectors.ItemEntity.
type ItemFactory func(ctx context.Context, sel *goquery.Selection, cfg *Config) (*Item, error)

// ShipmentFactory builds a Shipment out of the fragment matched by Selectors.ShipmentEntity.
type ShipmentFactory func(ctx context.Context, sel *goquery.Selection, cfg *Config) (*Shipment, error)

// Config is shared read-only by every entity built from it.
type Config struct {
	Constants Constants `json:"constants"`
	Selectors Selectors `json:"selectors"`

	ItemFactory     ItemFactory     `json:"-"`
	ShipmentFactory ShipmentFactory `json:"-"`
	Telemetry       telemetry.API   `json:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Constants: Constants{
			BaseURL:          defaultBaseURL,
			OrderDetailsPath: defaultOrderDetailsPath,
			InvoiceMenuPath:  defaultInvoiceMenuPath,
		},
		Selectors:       defaultSelectors(),
		ItemFactory:     NewItem,
		ShipmentFactory: NewShipment,
		Telemetry:       telemetry.SlogAPI{},
	}
}

type fileConfig struct {
	Constants Constants `json:"constants"`
	Selectors Selectors `json:"selectors"`
}

// LoadConfig merges the json5 file at path (and its .local override) onto
// DefaultConfig. Selector lists in the file replace the default list for
// that field entirely.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	merged, err := configutil.ReadOnto(fileConfig{
		Constants: cfg.Constants,
		Selectors: cfg.Selectors,
	}, path)
	if err != nil {
		return nil, err
	}
	cfg.Constants = merged.Constants
	cfg.Selectors = merged.Selectors
	cfg.Constants.BaseURL = strings.TrimSuffix(cfg.Constants.BaseURL, "/")
	return cfg, nil
}

func (c *Config) tel() telemetry.API {
	if c.Telemetry == nil {
		return telemetry.SlogAPI{}
	}
	return c.Telemetry
}

func (c *Config) itemFactory() ItemFactory {
	if c.ItemFactory == nil {
		return NewItem
	}
	return c.ItemFactory
}

func (c *Config) shipmentFactory() ShipmentFactory {
	if c.ShipmentFactory == nil {
		return NewShipment
	}
	return c.ShipmentFactory
}

package entity

import (
	"context"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"amazonorders/internal/assert"
	"amazonorders/lib/htmlutil"
	"amazonorders/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

var hostScriptRegex = regexp.MustCompile(`ue_sn\s*=\s*['"]([^'"]+)['"]`)

// Parsable is the fragment an entity is being built from together with the
// config it is built with.
type Parsable struct {
	Sel    *goquery.Selection
	Config *Config
	// Entity is the name used in errors and telemetry, ex. "Order".
	Entity string

	ctx  context.Context
	base *url.URL
}

func NewParsable(ctx context.Context, sel *goquery.Selection, cfg *Config, entity string) Parsable {
	assert.NotNil(sel)
	assert.NotNil(cfg)
	assert.NotEmptyStr(entity)

	return Parsable{
		Sel:    sel,
		Config: cfg,
		Entity: entity,
		ctx:    ctx,
		base:   inferBaseURL(sel, cfg.Constants.BaseURL),
	}
}

// inferBaseURL looks for the host the page was served from in the `ue_sn`
// script variable anywhere in the fragment's document.
func inferBaseURL(sel *goquery.Selection, fallback string) *url.URL {
	var host string
	htmlutil.Root(sel).Find("script").EachWithBreak(func(_ int, script *goquery.Selection) bool {
		match := hostScriptRegex.FindStringSubmatch(script.Text())
		if match == nil {
			return true
		}
		host = match[1]
		return false
	})

	if host != "" {
		return &url.URL{Scheme: "https", Host: host}
	}
	base, err := url.Parse(fallback)
	if err != nil || base.Host == "" {
		base, _ = url.Parse(defaultBaseURL)
	}
	return base
}

func (p Parsable) Context() context.Context {
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

// BaseURL is the scheme and host relative links are resolved against.
func (p Parsable) BaseURL() string {
	return strings.TrimSuffix(p.base.String(), "/")
}

// WithBaseURL resolves a relative link against BaseURL, absolute links are
// returned untouched.
func (p Parsable) WithBaseURL(link string) string {
	parsed, err := url.Parse(link)
	if err != nil || parsed.IsAbs() {
		return link
	}
	return p.base.ResolveReference(parsed).String()
}

// Resolve is the package level Resolve with links normalized.
func (p Parsable) Resolve(field Field) (Value, bool) {
	value, ok := Resolve(p.Sel, field)
	if !ok {
		return Value{}, false
	}
	if field.Attr == "href" || field.Attr == "src" {
		value.Text = p.WithBaseURL(value.Text)
	}
	return value, true
}

// SafeParse runs the strategies in order and returns the first value that
// resolves. When none do and the field is required, an *EntityError naming the
// selectors is returned and reported as broken.
func SafeParse[T any](p Parsable, field string, selectors []string, required bool, strategies ...Strategy[T]) (T, bool, error) {
	value, ok := FirstOf(p, strategies...)
	if ok {
		return value, true, nil
	}
	var zero T
	if !required {
		return zero, false, nil
	}

	err := &EntityError{
		Entity:    p.Entity,
		Field:     field,
		Selectors: selectors,
	}
	p.Config.tel().ReportBroken(
		strings.ToLower(p.Entity)+"."+field,
		err,
	)
	return zero, false, err
}

// ToCurrency converts a scraped amount into a float64. Numbers pass through
// unchanged, strings are read with textutil.ParseCurrency.
func ToCurrency(v any) (float64, bool) {
	switch value := v.(type) {
	case nil:
		return 0, false
	case string:
		return textutil.ParseCurrency(value)
	case *float64:
		if value == nil {
			return 0, false
		}
		return *value, true
	case decimal.Decimal:
		f, _ := value.Float64()
		return f, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}

package entity

import (
	"cmp"
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Item struct {
	Title              string     `json:"title"`
	Link               string     `json:"link,omitempty"`
	ImageLink          string     `json:"image_link,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	Seller             string     `json:"seller,omitempty"`
	Quantity           int        `json:"quantity"`
	ReturnEligibleDate *time.Time `json:"return_eligible_date,omitempty"`
}

var quantityRegex = regexp.MustCompile(`\d+`)

// NewItem is the default ItemFactory.
func NewItem(ctx context.Context, sel *goquery.Selection, cfg *Config) (*Item, error) {
	p := NewParsable(ctx, sel, cfg, "Item")
	s := cfg.Selectors

	title, _, err := SafeParse(p, "title", s.ItemTitle, true,
		TextOf(Field{Selectors: s.ItemTitle}),
	)
	if err != nil {
		return nil, err
	}

	item := &Item{
		Title:    title,
		Quantity: 1,
	}
	item.Link, _ = FirstOf(p, TextOf(Field{Selectors: s.ItemLink, Attr: "href"}))
	item.ImageLink, _ = FirstOf(p, TextOf(Field{Selectors: s.ItemImgLink, Attr: "src"}))
	item.Seller, _ = FirstOf(p, TextOf(Field{
		Selectors:   s.ItemSeller,
		PrefixSplit: "Sold by:",
		PrefixFuzzy: true,
	}))

	price, ok := FirstOf(p, CurrencyOf(Field{Selectors: s.ItemPrice}))
	if ok {
		item.Price = &price
	}

	quantity, ok := FirstOf(p, TextOf(Field{Selectors: s.ItemQuantity}))
	if ok {
		n, err := strconv.Atoi(quantityRegex.FindString(quantity))
		if err == nil && n > 0 {
			item.Quantity = n
		}
	}

	returnDate, ok := FirstOf(p, DateOf(Field{Selectors: s.ItemReturn}))
	if ok {
		item.ReturnEligibleDate = &returnDate
	}

	return item, nil
}

func (i *Item) String() string {
	return i.Title
}

// CompareItems orders items by title, then by link.
func CompareItems(a, b *Item) int {
	return cmp.Or(
		cmp.Compare(a.Title, b.Title),
		cmp.Compare(a.Link, b.Link),
	)
}

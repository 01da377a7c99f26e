package entity

import (
	"context"
	"strings"

	"amazonorders/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type Recipient struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// NewRecipient reads a recipient out of an address block, the name is required.
func NewRecipient(ctx context.Context, sel *goquery.Selection, cfg *Config) (*Recipient, error) {
	p := NewParsable(ctx, sel, cfg, "Recipient")
	s := cfg.Selectors

	name, _, err := SafeParse(p, "name", s.RecipientName, true,
		TextOf(Field{Selectors: s.RecipientName}),
	)
	if err != nil {
		return nil, err
	}

	address, _ := FirstOf[string](p, addressLines)
	return &Recipient{
		Name:    name,
		Address: address,
	}, nil
}

func addressLines(p Parsable) (string, bool) {
	lines := []string{}
	htmlutil.Select(p.Sel, p.Config.Selectors.RecipientAddress).Each(func(_ int, line *goquery.Selection) {
		text := htmlutil.CleanText(line)
		if text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n"), len(lines) > 0
}

func (r *Recipient) String() string {
	return r.Name
}

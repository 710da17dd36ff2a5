// Package pricing turns a product, a raw ticket category and a party size
// into a priced quote.  It is the only place amounts are computed; the cart
// ledger downstream only ever receives fully priced line items.
package pricing

import (
	"errors"

	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/model"
)

// ErrUnpriceable is returned when the (category, product) pair has no rate
// card.  Callers surface it by disabling confirmation or omitting the price
// display; it must never be converted into a zero amount.
var ErrUnpriceable = errors.New("category/product pair is not purchasable")

// Quote is the result of pricing a selection: the exact total in cents and
// the normalized category the rate card was resolved under.
type Quote struct {
	AmountCents model.Cents
	Category    model.TicketCategory
}

// Pricer resolves rate cards against a catalog.  It holds no state beyond
// the catalog reference and every method is pure.
type Pricer struct {
	Catalog *catalog.Catalog
}

// New returns a Pricer bound to the provided catalog.  The catalog must be
// non-nil.
func New(cat *catalog.Catalog) *Pricer {
	if cat == nil {
		panic("nil catalog passed to pricing.New")
	}
	return &Pricer{Catalog: cat}
}

// Price normalizes rawCategory ("local" folds into resident), looks up the
// rate card and computes
//
//	amount = adults*adult + children*child + seniors*senior
//
// in exact integer cents, with a missing senior rate contributing 0.  An
// unknown category or a catalog miss yields ErrUnpriceable and no quote.
func (p *Pricer) Price(product, rawCategory string, party model.PartySize) (Quote, error) {
	category, ok := model.NormalizeCategory(rawCategory)
	if !ok {
		return Quote{}, ErrUnpriceable
	}
	entry, ok := p.Catalog.Lookup(category, product)
	if !ok {
		return Quote{}, ErrUnpriceable
	}
	amount := model.Cents(party.AdultQty)*entry.AdultCents +
		model.Cents(party.ChildQty)*entry.ChildCents +
		model.Cents(party.SeniorQty)*entry.SeniorCents
	return Quote{AmountCents: amount, Category: category}, nil
}

// UnitDisplay returns the adult and child unit price strings for the pair,
// e.g. ("SGD 54.00", "SGD 39.00").  On a miss both strings are the
// "SGD -" placeholder, mirroring what the price labels show before a valid
// category is chosen.
func (p *Pricer) UnitDisplay(product, rawCategory string) (adult, child string) {
	category, ok := model.NormalizeCategory(rawCategory)
	if !ok {
		return model.UnpriceableDisplay, model.UnpriceableDisplay
	}
	entry, ok := p.Catalog.Lookup(category, product)
	if !ok {
		return model.UnpriceableDisplay, model.UnpriceableDisplay
	}
	return entry.AdultCents.FormatSGD(), entry.ChildCents.FormatSGD()
}

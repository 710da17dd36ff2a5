// Package catalog holds the static price table and product metadata for the
// park's bundles and à-la-carte attractions.  The table is pure data: lookups
// never fail with an error, they report absence explicitly, and an absent
// pair means "not purchasable" — callers must not substitute a zero price.
package catalog

import "github.com/jewelpark/attraction-cart/internal/model"

// PriceEntry is the per-person rate card for one (category, product) pair.
// SeniorCents is optional; a zero value means the tier has no senior rate
// and seniors price at 0.  Only the resident primary-bundle entry carries
// one.
type PriceEntry struct {
	AdultCents  model.Cents
	ChildCents  model.Cents
	SeniorCents model.Cents
}

// Product metadata served to the storefront.  Bundles carry an inclusion
// list; à-la-carte attractions carry a one-line blurb.
type Product struct {
	Name       string   `json:"name"`
	Bundle     bool     `json:"bundle"`
	Inclusions []string `json:"inclusions,omitempty"`
	Blurb      string   `json:"blurb,omitempty"`
}

// PrimaryAttraction and PrimaryBundle identify the product the primary
// "buy ticket" flow sells.  The handoff record always names this pair.
const (
	PrimaryAttraction = "Canopy Park"
	PrimaryBundle     = "Bundle Deal 2"
)

// TimeSlots is the fixed set of admission slot labels offered on every form.
var TimeSlots = []string{
	"10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM",
}

// Catalog is the two-level price mapping keyed by category then product
// name, plus the product metadata list.  Static builds one from the built-in
// table; database-backed overrides may be applied with Override at boot,
// after which the catalog is treated as read-only.
type Catalog struct {
	prices   map[model.TicketCategory]map[string]PriceEntry
	products []Product
}

// Lookup returns the rate card for the pair, with ok=false when the pair is
// not purchasable.  Unknown categories and unknown products both miss.
func (c *Catalog) Lookup(category model.TicketCategory, product string) (PriceEntry, bool) {
	byProduct, ok := c.prices[category]
	if !ok {
		return PriceEntry{}, false
	}
	entry, ok := byProduct[product]
	return entry, ok
}

// Products returns the sellable product list in display order: the four
// bundle tiers first, then the six à-la-carte attractions.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Static builds the catalog from the built-in tables below.
func Static() *Catalog {
	return &Catalog{prices: staticPrices(), products: staticProducts()}
}

// Override replaces (or adds) a single rate card entry.  Used when a price
// table is loaded from the database at boot; the static table stays in place
// for every pair the database does not mention.
func (c *Catalog) Override(category model.TicketCategory, product string, entry PriceEntry) {
	byProduct, ok := c.prices[category]
	if !ok {
		byProduct = make(map[string]PriceEntry)
		c.prices[category] = byProduct
	}
	byProduct[product] = entry
}

func staticPrices() map[model.TicketCategory]map[string]PriceEntry {
	return map[model.TicketCategory]map[string]PriceEntry{
		model.CategoryStandard: {
			"Bundle Deal 1":      {AdultCents: 3900, ChildCents: 2900},
			"Bundle Deal 2":      {AdultCents: 5400, ChildCents: 3900},
			"Bundle Deal 3":      {AdultCents: 5600, ChildCents: 4000},
			"Bundle Deal 4":      {AdultCents: 7100, ChildCents: 5000},
			"Mirror Maze":        {AdultCents: 1200, ChildCents: 1000},
			"Hedge Maze":         {AdultCents: 1000, ChildCents: 800},
			"Jewel-rassic Quest": {AdultCents: 2000, ChildCents: 1500},
			"Canopy Bridge":      {AdultCents: 800, ChildCents: 500},
			"Walking Net":        {AdultCents: 1000, ChildCents: 800},
			"Bouncing Net":       {AdultCents: 1400, ChildCents: 1200},
		},
		model.CategoryResident: {
			"Bundle Deal 1": {AdultCents: 3200, ChildCents: 2200},
			// the resident primary-bundle rate card is the only one with a
			// senior tier; everywhere else seniors price at 0
			"Bundle Deal 2":      {AdultCents: 4600, ChildCents: 3100, SeniorCents: 890},
			"Bundle Deal 3":      {AdultCents: 4900, ChildCents: 3300},
			"Bundle Deal 4":      {AdultCents: 6300, ChildCents: 4300},
			"Mirror Maze":        {AdultCents: 1000, ChildCents: 800},
			"Hedge Maze":         {AdultCents: 800, ChildCents: 600},
			"Jewel-rassic Quest": {AdultCents: 1800, ChildCents: 1500},
			"Canopy Bridge":      {AdultCents: 600, ChildCents: 500},
			"Walking Net":        {AdultCents: 800, ChildCents: 500},
			"Bouncing Net":       {AdultCents: 1200, ChildCents: 1000},
		},
	}
}

func staticProducts() []Product {
	return []Product{
		{
			Name:   "Bundle Deal 1",
			Bundle: true,
			Inclusions: []string{
				"Canopy Park (Incl. Discovery Slides, Foggy Bowls, Petal Garden, Topiary Walk)",
				"Mastercard Canopy Bridge",
				"Hedge Maze",
				"Mirror Maze",
				"Walking Net",
			},
		},
		{
			Name:   "Bundle Deal 2",
			Bundle: true,
			Inclusions: []string{
				"Canopy Park (Incl. Discovery Slides, Foggy Bowls, Petal Garden, Topiary Walk)",
				"Mastercard Canopy Bridge",
				"Hedge Maze",
				"Mirror Maze",
				"Walking Net",
				"Bouncing Net",
			},
		},
		{
			Name:   "Bundle Deal 3",
			Bundle: true,
			Inclusions: []string{
				"Changi Experience Studio",
				"Canopy Park (Incl. Discovery Slides, Foggy Bowls, Petal Garden, Topiary Walk)",
				"Mastercard Canopy Bridge",
				"Hedge Maze",
				"Mirror Maze",
				"Walking Net",
			},
		},
		{
			Name:   "Bundle Deal 4",
			Bundle: true,
			Inclusions: []string{
				"Changi Experience Studio",
				"Canopy Park (Incl. Discovery Slides, Foggy Bowls, Petal Garden, Topiary Walk)",
				"Mastercard Canopy Bridge",
				"Hedge Maze",
				"Mirror Maze",
				"Walking Net",
				"Bouncing Net",
			},
		},
		{Name: "Mirror Maze", Blurb: "Single entry to the maze of illusions."},
		{Name: "Hedge Maze", Blurb: "Classic greenery maze experience."},
		{Name: "Jewel-rassic Quest", Blurb: "AR Dino Quest with 90-min playtime and refundable deposit."},
		{Name: "Canopy Bridge", Blurb: "Suspended bridge with glass flooring and mist effects."},
		{Name: "Walking Net", Blurb: "Suspended net walking experience above Canopy Park."},
		{Name: "Bouncing Net", Blurb: "High-bounce sky net adventure with safety rules."},
	}
}

package model

import (
	"strconv"
	"strings"
)

// LineItem is one confirmed, priced entry in a cart.  It is immutable once
// created: only a passed validator gate or a successful handoff consumption
// produces one, and the ledger never edits items after append.
//
// Fields:
//  Product     – catalog name of what was bought ("Bundle Deal 2", "Hedge Maze", ...).
//  BundleLabel – label shown on the cart line; equals Product for add-ons and
//                the bundle name for the primary ticket flow.
//  Date        – visit date as entered (ISO form).
//  Time        – time-slot label.
//  Party       – visitor counts the amount was computed from.
//  AmountCents – total price in cents for the whole party.
type LineItem struct {
	Product     string         `json:"product"`
	BundleLabel string         `json:"bundle_label"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	Party       PartySize      `json:"party"`
	AmountCents Cents          `json:"amount_cents"`
	Category    TicketCategory `json:"category"`
}

// DisplayLine renders the item the way the cart list shows it, e.g.
// "Bundle Deal 2 – 2 Adult, 1 Child – 25-12-2026 @ 10:00 AM – SGD 123.00".
// Tiers with a zero count are omitted from the party segment.
func (li LineItem) DisplayLine() string {
	parts := make([]string, 0, 3)
	if li.Party.AdultQty > 0 {
		parts = append(parts, strconv.Itoa(li.Party.AdultQty)+" Adult")
	}
	if li.Party.ChildQty > 0 {
		parts = append(parts, strconv.Itoa(li.Party.ChildQty)+" Child")
	}
	if li.Party.SeniorQty > 0 {
		parts = append(parts, strconv.Itoa(li.Party.SeniorQty)+" Senior")
	}
	segs := []string{li.BundleLabel}
	if len(parts) > 0 {
		segs = append(segs, strings.Join(parts, ", "))
	}
	segs = append(segs, FormatDisplayDate(li.Date)+" @ "+li.Time, li.AmountCents.FormatSGD())
	return strings.Join(segs, " – ")
}

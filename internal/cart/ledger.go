// Package cart implements the per-session cart ledger: an append-only,
// ordered collection of confirmed line items with a running total and count.
package cart

import (
	"fmt"
	"sync"

	"github.com/jewelpark/attraction-cart/internal/model"
)

// Ledger records confirmed line items for one visitor session.  Items are
// immutable once appended; there is no removal, reordering or deduplication,
// so repeated identical confirmations produce repeated lines.  The total and
// count are recomputed by a full fold over the items on every append, which
// keeps them re-derivable from the item list by construction.
//
// Handlers for the same session never overlap in the browser, but the HTTP
// server serves them from arbitrary goroutines, so the ledger carries its
// own mutex.
type Ledger struct {
	mu    sync.Mutex
	items []model.LineItem
	total model.Cents
	count int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Summary is a read-only projection of the ledger for rendering.
type Summary struct {
	Items      []model.LineItem `json:"items"`
	TotalCents model.Cents      `json:"total_cents"`
	Total      string           `json:"total"`
	Count      int              `json:"count"`
}

// Append adds a fully priced line item and recomputes the total and count
// from scratch.
func (l *Ledger) Append(item model.LineItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
	l.refold()
}

// refold recomputes total and count as a straight fold over the item list.
// Callers must hold the mutex.
func (l *Ledger) refold() {
	var total model.Cents
	for _, it := range l.items {
		total += it.AmountCents
	}
	l.total = total
	l.count = len(l.items)
}

// Summary returns a copy of the current items along with the running total
// and count.
func (l *Ledger) Summary() Summary {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]model.LineItem, len(l.items))
	copy(items, l.items)
	return Summary{
		Items:      items,
		TotalCents: l.total,
		Total:      l.total.FormatSGD(),
		Count:      l.count,
	}
}

// CheckoutMessage returns the acknowledgement text shown when the visitor
// proceeds to payment.  No order processing happens behind it.
func (l *Ledger) CheckoutMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fmt.Sprintf("Proceeding to payment with %d item(s).", l.count)
}

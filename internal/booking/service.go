// Package booking tracks the in-progress purchase forms for each visitor
// session and drives confirmation: validator gate, pricing, then append to
// the session's cart ledger.
package booking

import (
	"errors"
	"sync"

	"github.com/jewelpark/attraction-cart/internal/cart"
	"github.com/jewelpark/attraction-cart/internal/model"
	"github.com/jewelpark/attraction-cart/internal/pricing"
)

// ErrIncompleteSelection is returned when a confirm is attempted before
// category, date and time have all been chosen.  The UI surfaces it as a
// disabled confirm control, never as a page fault.
var ErrIncompleteSelection = errors.New("selection is missing category, date or time")

// Service owns the live selections.  Each product card on the page has its
// own form, so selections are keyed by session plus the card's item ID.
// Selections are never persisted; only the primary ticket flow writes one
// into the handoff mailbox.
type Service struct {
	mu         sync.Mutex
	selections map[selectionKey]*model.Selection

	pricer *pricing.Pricer
	carts  *cart.Store
}

type selectionKey struct {
	session string
	item    string
}

// NewService wires the booking service to the pricer and cart registry.
func NewService(pricer *pricing.Pricer, carts *cart.Store) *Service {
	if pricer == nil || carts == nil {
		panic("nil dependency passed to booking.NewService")
	}
	return &Service{
		selections: make(map[selectionKey]*model.Selection),
		pricer:     pricer,
		carts:      carts,
	}
}

// selection returns the live selection for the card, creating an empty one
// on first touch.  Callers must hold the mutex.
func (s *Service) selection(session, item string) *model.Selection {
	key := selectionKey{session: session, item: item}
	sel, ok := s.selections[key]
	if !ok {
		sel = &model.Selection{}
		s.selections[key] = sel
	}
	return sel
}

// State is what every selection mutation reports back so the UI can refresh
// its price labels and the confirm control in one round trip.
type State struct {
	Selection   model.Selection
	Confirmable bool
}

// UpdateFields replaces the category, date and time of the card's selection
// with the current form values.  Empty strings are legal and mean the field
// was cleared back to its placeholder.  Quantities are untouched.
func (s *Service) UpdateFields(session, item, category, date, timeSlot string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.selection(session, item)
	sel.Category = category
	sel.Date = date
	sel.Time = timeSlot
	return State{Selection: *sel, Confirmable: sel.Confirmable()}
}

// AdjustQuantity applies a unit increment or decrement to one party tier.
// Counts clamp at zero: decrementing an empty tier is a no-op.  Unknown
// tiers return ok=false and change nothing.
func (s *Service) AdjustQuantity(session, item, tier string, delta int) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.selection(session, item)
	var qty *int
	switch tier {
	case "adult":
		qty = &sel.Party.AdultQty
	case "child":
		qty = &sel.Party.ChildQty
	case "senior":
		qty = &sel.Party.SeniorQty
	default:
		return State{}, false
	}
	*qty += delta
	if *qty < 0 {
		*qty = 0
	}
	return State{Selection: *sel, Confirmable: sel.Confirmable()}, true
}

// Confirm gates the card's selection through the validator, prices it and
// appends the resulting line item to the session's ledger.  The selection
// itself is left in place, so confirming again creates another identical
// line — each confirm is a distinct event.
func (s *Service) Confirm(session, item, product string) (model.LineItem, error) {
	s.mu.Lock()
	sel := *s.selection(session, item)
	s.mu.Unlock()

	if !sel.Confirmable() {
		return model.LineItem{}, ErrIncompleteSelection
	}
	quote, err := s.pricer.Price(product, sel.Category, sel.Party)
	if err != nil {
		return model.LineItem{}, err
	}
	lineItem := model.LineItem{
		Product:     product,
		BundleLabel: product,
		Date:        sel.Date,
		Time:        sel.Time,
		Party:       sel.Party,
		AmountCents: quote.AmountCents,
		Category:    quote.Category,
	}
	s.carts.Ledger(session).Append(lineItem)
	return lineItem, nil
}

// Cart exposes the session's ledger for summary rendering and handoff
// consumption.
func (s *Service) Cart(session string) *cart.Ledger {
	return s.carts.Ledger(session)
}

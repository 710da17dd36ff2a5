package handoff

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jewelpark/attraction-cart/internal/model"
	"github.com/jewelpark/attraction-cart/internal/pricing"
)

// keyPrefix namespaces the fixed pending-selection key per session so two
// visitors cannot consume each other's record.
const keyPrefix = "pending_ticket:"

// Mailbox is the single-slot pending-selection channel.  Publish moves a
// slot to Pending (overwriting any unconsumed record — accepted lossy
// behavior); Consume moves it back to Empty exactly once, returning the
// priced line item when the record was well formed and purchasable.
type Mailbox struct {
	store  Store
	pricer *pricing.Pricer
}

// NewMailbox wires the mailbox to its store and pricer.
func NewMailbox(store Store, pricer *pricing.Pricer) *Mailbox {
	if store == nil || pricer == nil {
		panic("nil dependency passed to handoff.NewMailbox")
	}
	return &Mailbox{store: store, pricer: pricer}
}

// Publish serializes the record into the session's slot.  Any record already
// pending is discarded; at most one pending record exists per session.
func (m *Mailbox) Publish(ctx context.Context, sessionID string, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, keyPrefix+sessionID, body)
}

// Consume performs the one-shot read of the session's slot.  The stored
// record is deleted no matter what happens next: a record that fails to
// decode or to price is dropped silently rather than retried, so a stale or
// malformed record can never block the add-ons page from loading.  On
// success the priced line item is returned for the caller to append to the
// cart ledger.
func (m *Mailbox) Consume(ctx context.Context, sessionID string) (model.LineItem, bool) {
	body, found, err := m.store.GetDel(ctx, keyPrefix+sessionID)
	if err != nil {
		log.Printf("handoff: read failed for session %s: %v", sessionID, err)
		return model.LineItem{}, false
	}
	if !found {
		return model.LineItem{}, false
	}
	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		log.Printf("handoff: discarding malformed pending record: %v", err)
		return model.LineItem{}, false
	}
	party := model.PartySize{
		AdultQty:  rec.AdultQty,
		ChildQty:  rec.ChildQty,
		SeniorQty: rec.SeniorQty,
	}
	quote, err := m.pricer.Price(rec.Bundle, rec.TicketType, party)
	if err != nil {
		log.Printf("handoff: discarding unpriceable pending record (%s/%s)", rec.TicketType, rec.Bundle)
		return model.LineItem{}, false
	}
	return model.LineItem{
		Product:     rec.Bundle,
		BundleLabel: rec.Bundle,
		Date:        rec.VisitDate,
		Time:        rec.VisitTime,
		Party:       party,
		AmountCents: quote.AmountCents,
		Category:    quote.Category,
	}, true
}

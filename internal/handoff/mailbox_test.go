package handoff

import (
	"context"
	"testing"

	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/model"
	"github.com/jewelpark/attraction-cart/internal/pricing"
)

func newMailbox() (*Mailbox, *MemoryStore) {
	store := NewMemoryStore()
	return NewMailbox(store, pricing.New(catalog.Static())), store
}

func pendingRecord() Record {
	return Record{
		Attraction: catalog.PrimaryAttraction,
		Bundle:     catalog.PrimaryBundle,
		TicketType: "resident",
		VisitDate:  "2026-12-25",
		VisitTime:  "10:00 AM",
		AdultQty:   2,
		ChildQty:   1,
	}
}

func TestPublishConsumeRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, _ := newMailbox()

	if err := mb.Publish(ctx, "s1", pendingRecord()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	item, ok := mb.Consume(ctx, "s1")
	if !ok {
		t.Fatalf("expected a pending record to consume")
	}
	if item.AmountCents != 12300 {
		t.Fatalf("expected 12300 cents (2*4600 + 1*3100), got %d", item.AmountCents)
	}
	if item.BundleLabel != catalog.PrimaryBundle || item.Date != "2026-12-25" || item.Time != "10:00 AM" {
		t.Fatalf("unexpected line item %+v", item)
	}

	// the slot is one-shot: a second consume finds nothing
	if _, ok := mb.Consume(ctx, "s1"); ok {
		t.Fatalf("expected second consume to find the slot empty")
	}
}

func TestConsumeNormalizesLegacyLocal(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, _ := newMailbox()

	rec := pendingRecord()
	rec.TicketType = "local"
	if err := mb.Publish(ctx, "s1", rec); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	item, ok := mb.Consume(ctx, "s1")
	if !ok {
		t.Fatalf("expected record to consume")
	}
	if item.Category != model.CategoryResident {
		t.Fatalf("expected local to normalize to resident, got %s", item.Category)
	}
	if item.AmountCents != 12300 {
		t.Fatalf("expected local to price identically to resident, got %d", item.AmountCents)
	}
}

func TestConsumeMissingSeniorQtyDefaultsToZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, store := newMailbox()

	// a record written by an older page version, with no seniorQty at all
	raw := []byte(`{"attraction":"Canopy Park","bundle":"Bundle Deal 2","ticketType":"resident","visitDate":"2026-12-25","visitTime":"10:00 AM","adultQty":1,"childQty":0}`)
	if err := store.Set(ctx, keyPrefix+"s1", raw); err != nil {
		t.Fatalf("seeding store failed: %v", err)
	}
	item, ok := mb.Consume(ctx, "s1")
	if !ok {
		t.Fatalf("expected record to consume")
	}
	if item.Party.SeniorQty != 0 {
		t.Fatalf("expected missing seniorQty to default to 0, got %d", item.Party.SeniorQty)
	}
	if item.AmountCents != 4600 {
		t.Fatalf("expected 4600 cents for one resident adult, got %d", item.AmountCents)
	}
}

func TestConsumeMalformedRecordIsDroppedAndDeleted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, store := newMailbox()

	if err := store.Set(ctx, keyPrefix+"s1", []byte(`{not json`)); err != nil {
		t.Fatalf("seeding store failed: %v", err)
	}
	if _, ok := mb.Consume(ctx, "s1"); ok {
		t.Fatalf("expected malformed record to yield absent")
	}
	// deletion must have happened anyway, so a reload cannot reprocess it
	if _, found, _ := store.GetDel(ctx, keyPrefix+"s1"); found {
		t.Fatalf("expected malformed record to be deleted")
	}
}

func TestConsumeUnpriceableRecordIsDroppedAndDeleted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, store := newMailbox()

	rec := pendingRecord()
	rec.Bundle = "Bundle Deal 99"
	if err := mb.Publish(ctx, "s1", rec); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, ok := mb.Consume(ctx, "s1"); ok {
		t.Fatalf("expected unpriceable record to yield absent")
	}
	if _, found, _ := store.GetDel(ctx, keyPrefix+"s1"); found {
		t.Fatalf("expected unpriceable record to be deleted")
	}
}

func TestPublishOverwritesPendingRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, _ := newMailbox()

	first := pendingRecord()
	first.AdultQty = 5
	if err := mb.Publish(ctx, "s1", first); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	second := pendingRecord() // 2 adults, 1 child
	if err := mb.Publish(ctx, "s1", second); err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	item, ok := mb.Consume(ctx, "s1")
	if !ok {
		t.Fatalf("expected a record to consume")
	}
	if item.Party.AdultQty != 2 {
		t.Fatalf("expected the second publish to win, got %d adults", item.Party.AdultQty)
	}
}

func TestSlotsAreScopedPerSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mb, _ := newMailbox()

	if err := mb.Publish(ctx, "s1", pendingRecord()); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if _, ok := mb.Consume(ctx, "s2"); ok {
		t.Fatalf("expected another session's consume to find nothing")
	}
	if _, ok := mb.Consume(ctx, "s1"); !ok {
		t.Fatalf("expected the owning session's record to still be pending")
	}
}

func TestEmptySlotConsume(t *testing.T) {
	t.Parallel()

	mb, _ := newMailbox()
	if _, ok := mb.Consume(context.Background(), "nobody"); ok {
		t.Fatalf("expected consume on an empty slot to yield absent")
	}
}

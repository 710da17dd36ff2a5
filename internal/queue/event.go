// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

// ItemAddedEvent is published whenever a priced line item lands in a cart,
// whether through an in-page confirm or a handoff claim.  It carries enough
// information for downstream consumers to log or feed analytics without
// touching the service's in-memory state.
type ItemAddedEvent struct {
	SessionID   string `json:"session_id"`
	Product     string `json:"product"`
	Category    string `json:"category"`
	VisitDate   string `json:"visit_date"`
	VisitTime   string `json:"visit_time"`
	AdultQty    int    `json:"adult_qty"`
	ChildQty    int    `json:"child_qty"`
	SeniorQty   int    `json:"senior_qty"`
	AmountCents int64  `json:"amount_cents"`
	Source      string `json:"source"` // "confirm" or "claim"
	AddedAt     string `json:"added_at"`
}

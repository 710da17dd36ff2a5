// Package handoff carries exactly one pending primary-ticket selection
// across the page boundary between the buy-ticket page and the add-ons page.
// It is a single-slot mailbox per session: publishing overwrites any
// unconsumed record, and consumption is an atomic read-and-delete that
// happens at most once per record.
package handoff

// Record is the serialized pending selection.  The field names are the wire
// contract inherited from the storefront: consumers must tolerate the legacy
// ticketType value "local" and an absent seniorQty.
type Record struct {
	Attraction string `json:"attraction"`
	Bundle     string `json:"bundle"`
	TicketType string `json:"ticketType"`
	VisitDate  string `json:"visitDate"`
	VisitTime  string `json:"visitTime"`
	AdultQty   int    `json:"adultQty"`
	ChildQty   int    `json:"childQty"`
	SeniorQty  int    `json:"seniorQty"`
}

package model

// PartySize holds the per-tier visitor counts of a selection.  Counts are
// adjusted in unit increments by the UI and are clamped at zero; decrementing
// an empty tier is a no-op.
type PartySize struct {
	AdultQty  int `json:"adult_qty"`
	ChildQty  int `json:"child_qty"`
	SeniorQty int `json:"senior_qty"`
}

// Selection is one in-progress purchase form.  Category, date and time start
// empty and fill in as the visitor edits the form; an empty string means the
// field has not been chosen yet.  Presence of those three fields, not the
// party size, is what gates confirmation.
type Selection struct {
	Product  string
	Category string // raw category as entered; normalized at pricing time
	Date     string // ISO YYYY-MM-DD, empty until chosen
	Time     string // time-slot label, empty until chosen
	Party    PartySize
}

// Confirmable reports whether the selection is complete enough to confirm:
// category, date and time must all be present.  Quantities deliberately do
// not participate, so an all-zero party is still confirmable.
func (s Selection) Confirmable() bool {
	return s.Category != "" && s.Date != "" && s.Time != ""
}

package model

// TicketCategory selects the pricing tier for a purchase.  Only two
// categories exist: the walk-up standard rate and the discounted rate for
// Singapore residents.  A legacy value "local" still arrives from old
// bookmarks and stored records; it is folded into CategoryResident at every
// ingestion point so that no component downstream ever sees it.
type TicketCategory string

const (
	CategoryStandard TicketCategory = "standard"
	CategoryResident TicketCategory = "resident"

	// legacyLocal is accepted on input only.  It must never be stored.
	legacyLocal = "local"
)

// NormalizeCategory maps a raw category string onto a TicketCategory,
// translating the legacy "local" synonym to resident.  The second return
// value reports whether the input named a known category at all; callers
// must treat false as "not purchasable" rather than defaulting the tier.
func NormalizeCategory(raw string) (TicketCategory, bool) {
	switch raw {
	case string(CategoryStandard):
		return CategoryStandard, true
	case string(CategoryResident), legacyLocal:
		return CategoryResident, true
	default:
		return "", false
	}
}

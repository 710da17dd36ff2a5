package model

import (
	"fmt"
	"strings"
	"time"
)

// Cents is a monetary amount in Singapore cents.  All pricing arithmetic is
// carried out on exact integer cents; amounts are only rendered with two
// decimal places at the display boundary, so no intermediate rounding can
// drift a total.
type Cents int64

// FormatSGD renders an amount the way the storefront shows it, e.g.
// "SGD 54.00".
func (c Cents) FormatSGD() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("SGD %s%d.%02d", sign, v/100, v%100)
}

// UnpriceableDisplay is shown in place of a price when the category/product
// pair has no catalog entry.
const UnpriceableDisplay = "SGD -"

// FormatDisplayDate rewrites an ISO "YYYY-MM-DD" date as "DD-MM-YYYY" for
// cart lines.  Inputs that do not split into three parts are returned
// unchanged; a stored record with a mangled date still renders rather than
// failing the page.
func FormatDisplayDate(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ValidISODate reports whether s is a real calendar date in "YYYY-MM-DD"
// form.  Used when accepting the primary ticket submission.
func ValidISODate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

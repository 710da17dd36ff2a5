package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/booking"
	"github.com/jewelpark/attraction-cart/internal/middleware"
)

// CartHandler exposes the session's ledger: the summary view and the
// checkout acknowledgement.  The ledger is append-only; there are no
// endpoints to remove or reorder items.
type CartHandler struct {
	Book *booking.Service
}

// NewCartHandler constructs a CartHandler.
func NewCartHandler(book *booking.Service) *CartHandler {
	if book == nil {
		panic("nil booking service passed to NewCartHandler")
	}
	return &CartHandler{Book: book}
}

// GetCart handles GET /v1/cart.  It returns the items with their rendered
// display lines plus the running total and count, which are always a
// straight fold over the items.
func (h *CartHandler) GetCart(c echo.Context) error {
	summary := h.Book.Cart(middleware.SessionID(c)).Summary()
	lines := make([]string, 0, len(summary.Items))
	for _, it := range summary.Items {
		lines = append(lines, it.DisplayLine())
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":       summary.Items,
		"lines":       lines,
		"total_cents": summary.TotalCents,
		"total":       summary.Total,
		"count":       summary.Count,
	})
}

// Checkout handles POST /v1/cart/checkout.  There is no order processing
// behind it; it returns the acknowledgement message the storefront shows.
func (h *CartHandler) Checkout(c echo.Context) error {
	ledger := h.Book.Cart(middleware.SessionID(c))
	return c.JSON(http.StatusOK, echo.Map{
		"message": ledger.CheckoutMessage(),
	})
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/booking"
	"github.com/jewelpark/attraction-cart/internal/middleware"
	"github.com/jewelpark/attraction-cart/internal/model"
	"github.com/jewelpark/attraction-cart/internal/pricing"
	"github.com/jewelpark/attraction-cart/internal/queue"
)

// BookingHandler drives the per-card purchase forms: field edits, quantity
// nudges and the confirm action.  Every mutation responds with the
// refreshed price labels and the confirmability flag so the UI can keep its
// controls consistent in one round trip.
type BookingHandler struct {
	Book   *booking.Service
	Pricer *pricing.Pricer
}

// NewBookingHandler constructs a BookingHandler.  Dependencies must be
// non-nil.
func NewBookingHandler(book *booking.Service, pricer *pricing.Pricer) *BookingHandler {
	if book == nil || pricer == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Book: book, Pricer: pricer}
}

// UpdateSelection handles PUT /v1/selections/:itemID.  The body carries the
// card's current form state; empty strings mean a field was cleared back to
// its placeholder.  Re-validation runs on every change so the confirm
// control never goes stale.
func (h *BookingHandler) UpdateSelection(c echo.Context) error {
	itemID := c.Param("itemID")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var body struct {
		Product  string `json:"product"`
		Category string `json:"category"`
		Date     string `json:"date"`
		Time     string `json:"time"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	state := h.Book.UpdateFields(middleware.SessionID(c), itemID, body.Category, body.Date, body.Time)
	adult, child := h.Pricer.UnitDisplay(body.Product, body.Category)
	return c.JSON(http.StatusOK, echo.Map{
		"confirmable": state.Confirmable,
		"adult_price": adult,
		"child_price": child,
	})
}

// AdjustQuantity handles POST /v1/selections/:itemID/quantity.  The body
// names the party tier ("adult", "child" or "senior") and a signed delta.
// Counts clamp at zero; quantity changes re-trigger validation even though
// they never change its outcome.
func (h *BookingHandler) AdjustQuantity(c echo.Context) error {
	itemID := c.Param("itemID")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var body struct {
		Tier  string `json:"tier"`
		Delta int    `json:"delta"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	state, ok := h.Book.AdjustQuantity(middleware.SessionID(c), itemID, body.Tier, body.Delta)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown party tier"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"party":       state.Selection.Party,
		"confirmable": state.Confirmable,
	})
}

// Confirm handles POST /v1/selections/:itemID/confirm.  It runs the
// validator gate and the pricer; an incomplete selection or an unpurchasable
// pair yields 409 and no line item.  On success the item is appended to the
// session's cart, a cart event goes out best-effort, and the new summary is
// returned.
func (h *BookingHandler) Confirm(c echo.Context) error {
	itemID := c.Param("itemID")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}
	var body struct {
		Product string `json:"product"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Product == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is required"})
	}
	session := middleware.SessionID(c)
	item, err := h.Book.Confirm(session, itemID, body.Product)
	if err != nil {
		if errors.Is(err, booking.ErrIncompleteSelection) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "selection is incomplete"})
		}
		if errors.Is(err, pricing.ErrUnpriceable) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "no price for this ticket type"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm selection"})
	}
	publishItemAdded(session, item, "confirm")
	summary := h.Book.Cart(session).Summary()
	return c.JSON(http.StatusCreated, echo.Map{
		"item":    item,
		"display": item.DisplayLine(),
		"cart":    summary,
	})
}

// publishItemAdded sends the cart event without blocking the request.  The
// publisher already logs failures; adding to the cart never depends on the
// broker being up.
func publishItemAdded(sessionID string, item model.LineItem, source string) {
	ev := queue.ItemAddedEvent{
		SessionID:   sessionID,
		Product:     item.Product,
		Category:    string(item.Category),
		VisitDate:   item.Date,
		VisitTime:   item.Time,
		AdultQty:    item.Party.AdultQty,
		ChildQty:    item.Party.ChildQty,
		SeniorQty:   item.Party.SeniorQty,
		AmountCents: int64(item.AmountCents),
		Source:      source,
		AddedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue.PublishItemAdded(ctx, ev)
	}()
}

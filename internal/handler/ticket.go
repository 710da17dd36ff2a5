package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/booking"
	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/handoff"
	"github.com/jewelpark/attraction-cart/internal/middleware"
	"github.com/jewelpark/attraction-cart/internal/model"
)

// TicketHandler covers the primary buy-ticket flow: publishing the pending
// selection when the visitor submits the main bundle form, and the one-shot
// claim that folds it into the cart when the add-ons page loads.
type TicketHandler struct {
	Mailbox *handoff.Mailbox
	Book    *booking.Service
}

// NewTicketHandler constructs a TicketHandler.  Dependencies must be
// non-nil.
func NewTicketHandler(mailbox *handoff.Mailbox, book *booking.Service) *TicketHandler {
	if mailbox == nil || book == nil {
		panic("nil dependency passed to NewTicketHandler")
	}
	return &TicketHandler{Mailbox: mailbox, Book: book}
}

// PublishTicket handles POST /v1/ticket.  The body mirrors the main bundle
// form: ticket type, visit date and time, party counts and the
// height-requirement acknowledgement.  All of those are required — the
// original form refuses to continue without them — and the date must be a
// real YYYY-MM-DD date.  On success the pending record is written to the
// session's handoff slot, overwriting any unconsumed record.
func (h *TicketHandler) PublishTicket(c echo.Context) error {
	var body struct {
		TicketType string `json:"ticket_type"`
		VisitDate  string `json:"visit_date"`
		VisitTime  string `json:"visit_time"`
		AdultQty   int    `json:"adult_qty"`
		ChildQty   int    `json:"child_qty"`
		SeniorQty  int    `json:"senior_qty"`
		HeightAck  bool   `json:"height_ack"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TicketType == "" || body.VisitDate == "" || body.VisitTime == "" || !body.HeightAck {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "please fill in all required fields before continuing"})
	}
	if _, ok := model.NormalizeCategory(body.TicketType); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown ticket type"})
	}
	if !model.ValidISODate(body.VisitDate) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "visit date must be YYYY-MM-DD"})
	}
	rec := handoff.Record{
		Attraction: catalog.PrimaryAttraction,
		Bundle:     catalog.PrimaryBundle,
		TicketType: body.TicketType,
		VisitDate:  body.VisitDate,
		VisitTime:  body.VisitTime,
		AdultQty:   clampQty(body.AdultQty),
		ChildQty:   clampQty(body.ChildQty),
		SeniorQty:  clampQty(body.SeniorQty),
	}
	if err := h.Mailbox.Publish(c.Request().Context(), middleware.SessionID(c), rec); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to store pending selection"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"status": "pending",
		"bundle": rec.Bundle,
	})
}

// Claim handles POST /v1/cart/claim, the add-ons page load in the original
// flow.  Whatever is in the session's slot is consumed exactly once; a
// missing, malformed or unpriceable record simply yields claimed=false and
// the page carries on with an unchanged cart.
func (h *TicketHandler) Claim(c echo.Context) error {
	session := middleware.SessionID(c)
	item, ok := h.Mailbox.Consume(c.Request().Context(), session)
	if !ok {
		return c.JSON(http.StatusOK, echo.Map{
			"claimed": false,
			"cart":    h.Book.Cart(session).Summary(),
		})
	}
	h.Book.Cart(session).Append(item)
	publishItemAdded(session, item, "claim")
	return c.JSON(http.StatusOK, echo.Map{
		"claimed": true,
		"item":    item,
		"display": item.DisplayLine(),
		"cart":    h.Book.Cart(session).Summary(),
	})
}

// clampQty floors negative counts at zero; the form's steppers cannot go
// below zero, so a negative value only arrives from a hand-built request.
func clampQty(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/booking"
	"github.com/jewelpark/attraction-cart/internal/cart"
	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/pricing"
)

// newTestContext builds an Echo context carrying a fixed session, the way
// the session middleware would have left it.
func newTestContext(method, target, body, session string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session_id", session)
	return c, rec
}

func newBookingStack() (*BookingHandler, *CartHandler) {
	pricer := pricing.New(catalog.Static())
	book := booking.NewService(pricer, cart.NewStore())
	return NewBookingHandler(book, pricer), NewCartHandler(book)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func TestUpdateSelectionEndpoint(t *testing.T) {
	t.Parallel()

	h, _ := newBookingStack()

	t.Run("refreshes prices and confirmability", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPut, "/v1/selections/card1", `{"product":"Hedge Maze","category":"standard","date":"2026-12-25","time":"10:00 AM"}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.UpdateSelection(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		out := decode(t, rec)
		if out["confirmable"] != true {
			t.Fatalf("expected confirmable=true, got %v", out["confirmable"])
		}
		if out["adult_price"] != "SGD 10.00" || out["child_price"] != "SGD 8.00" {
			t.Fatalf("unexpected price labels: %v / %v", out["adult_price"], out["child_price"])
		}
	})

	t.Run("placeholder prices before a category is chosen", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPut, "/v1/selections/card2", `{"product":"Hedge Maze","category":"","date":"","time":""}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card2")
		if err := h.UpdateSelection(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		out := decode(t, rec)
		if out["confirmable"] != false {
			t.Fatalf("expected confirmable=false, got %v", out["confirmable"])
		}
		if out["adult_price"] != "SGD -" {
			t.Fatalf("expected placeholder price, got %v", out["adult_price"])
		}
	})
}

func TestAdjustQuantityEndpoint(t *testing.T) {
	t.Parallel()

	h, _ := newBookingStack()

	t.Run("clamps at zero", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPost, "/v1/selections/card1/quantity", `{"tier":"adult","delta":-1}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.AdjustQuantity(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		out := decode(t, rec)
		party := out["party"].(map[string]any)
		if party["adult_qty"].(float64) != 0 {
			t.Fatalf("expected adult_qty 0, got %v", party["adult_qty"])
		}
	})

	t.Run("unknown tier is a 400", func(t *testing.T) {
		c, rec := newTestContext(http.MethodPost, "/v1/selections/card1/quantity", `{"tier":"infant","delta":1}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.AdjustQuantity(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestConfirmEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("incomplete selection is a 409", func(t *testing.T) {
		h, _ := newBookingStack()
		c, rec := newTestContext(http.MethodPost, "/v1/selections/card1/confirm", `{"product":"Hedge Maze"}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.Confirm(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("confirm then cart summary", func(t *testing.T) {
		h, cartHandler := newBookingStack()

		c, _ := newTestContext(http.MethodPut, "/v1/selections/card1", `{"product":"Bundle Deal 2","category":"local","date":"2026-12-25","time":"11:00 AM"}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.UpdateSelection(c); err != nil {
			t.Fatalf("update error: %v", err)
		}
		for i := 0; i < 2; i++ {
			c, _ = newTestContext(http.MethodPost, "/v1/selections/card1/quantity", `{"tier":"adult","delta":1}`, "s1")
			c.SetParamNames("itemID")
			c.SetParamValues("card1")
			if err := h.AdjustQuantity(c); err != nil {
				t.Fatalf("quantity error: %v", err)
			}
		}
		c, _ = newTestContext(http.MethodPost, "/v1/selections/card1/quantity", `{"tier":"child","delta":1}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.AdjustQuantity(c); err != nil {
			t.Fatalf("quantity error: %v", err)
		}

		c, rec := newTestContext(http.MethodPost, "/v1/selections/card1/confirm", `{"product":"Bundle Deal 2"}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		if err := h.Confirm(c); err != nil {
			t.Fatalf("confirm error: %v", err)
		}
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		out := decode(t, rec)
		if out["display"] != "Bundle Deal 2 – 2 Adult, 1 Child – 25-12-2026 @ 11:00 AM – SGD 123.00" {
			t.Fatalf("unexpected display line: %v", out["display"])
		}

		c, rec = newTestContext(http.MethodGet, "/v1/cart", "", "s1")
		if err := cartHandler.GetCart(c); err != nil {
			t.Fatalf("cart error: %v", err)
		}
		summary := decode(t, rec)
		if summary["count"].(float64) != 1 {
			t.Fatalf("expected count 1, got %v", summary["count"])
		}
		if summary["total"] != "SGD 123.00" {
			t.Fatalf("expected total SGD 123.00, got %v", summary["total"])
		}
	})

	t.Run("another session sees an empty cart", func(t *testing.T) {
		h, cartHandler := newBookingStack()
		c, _ := newTestContext(http.MethodPut, "/v1/selections/card1", `{"product":"Mirror Maze","category":"standard","date":"2026-12-25","time":"10:00 AM"}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		_ = h.UpdateSelection(c)
		c, _ = newTestContext(http.MethodPost, "/v1/selections/card1/confirm", `{"product":"Mirror Maze"}`, "s1")
		c.SetParamNames("itemID")
		c.SetParamValues("card1")
		_ = h.Confirm(c)

		c, rec := newTestContext(http.MethodGet, "/v1/cart", "", "other-session")
		if err := cartHandler.GetCart(c); err != nil {
			t.Fatalf("cart error: %v", err)
		}
		if got := decode(t, rec)["count"].(float64); got != 0 {
			t.Fatalf("expected other session's cart to be empty, got %v", got)
		}
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Parallel()

	_, cartHandler := newBookingStack()
	c, rec := newTestContext(http.MethodPost, "/v1/cart/checkout", "", "s1")
	if err := cartHandler.Checkout(c); err != nil {
		t.Fatalf("checkout error: %v", err)
	}
	if got := decode(t, rec)["message"]; got != "Proceeding to payment with 0 item(s)." {
		t.Fatalf("unexpected checkout message: %v", got)
	}
}

package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/jewelpark/attraction-cart/internal/handler"    // handlers implementing the storefront operations
	"github.com/jewelpark/attraction-cart/internal/middleware" // session and cache middleware
)

// RegisterRoutes registers routes that do not require a session on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The health endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterCatalog registers the read-only catalog routes.  They run behind
// the session middleware like everything else under /v1, plus the optional
// Redis response cache — the payloads are static between deploys.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, sessionSecret string, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(middleware.Session(sessionSecret))
	if cache != nil {
		g.Use(cache)
	}
	// Bundles, à-la-carte attractions and the fixed time-slot labels.
	g.GET("/catalog", h.GetCatalog)
	// Unit price display for a (category, product) pair.
	g.GET("/prices", h.GetPrices)
}

// RegisterBooking registers the selection, cart and handoff routes.  Every
// route resolves the visitor's session first; a request without a valid
// session token transparently receives a new one.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, cart *handler.CartHandler, ticket *handler.TicketHandler, sessionSecret string) {
	g := e.Group("/v1")
	g.Use(middleware.Session(sessionSecret))

	// Per-card selection editing: field changes and quantity steppers both
	// re-run validation so the confirm control stays consistent.
	g.PUT("/selections/:itemID", b.UpdateSelection)
	g.POST("/selections/:itemID/quantity", b.AdjustQuantity)
	// Confirm turns the selection into a priced cart line.
	g.POST("/selections/:itemID/confirm", b.Confirm)

	// Cart summary and the checkout acknowledgement.
	g.GET("/cart", cart.GetCart)
	g.POST("/cart/checkout", cart.Checkout)

	// Primary ticket flow: publish the pending selection, then claim it
	// exactly once on the add-ons page.
	g.POST("/ticket", ticket.PublishTicket)
	g.POST("/cart/claim", ticket.Claim)
}

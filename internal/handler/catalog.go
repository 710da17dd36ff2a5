package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/model"
	"github.com/jewelpark/attraction-cart/internal/pricing"
)

// partyOfOneAdult is used to probe whether a pair is priceable at all.
var partyOfOneAdult = model.PartySize{AdultQty: 1}

// CatalogHandler serves the static storefront data: the product list with
// bundle inclusions and blurbs, the admission time slots, and per-pair unit
// price displays.  All of it is read-only; the catalog routes sit behind
// the Redis response cache when one is configured.
type CatalogHandler struct {
	Catalog *catalog.Catalog
	Pricer  *pricing.Pricer
}

// NewCatalogHandler constructs a CatalogHandler.  Both dependencies must be
// non-nil.
func NewCatalogHandler(cat *catalog.Catalog, pricer *pricing.Pricer) *CatalogHandler {
	if cat == nil || pricer == nil {
		panic("nil dependency passed to NewCatalogHandler")
	}
	return &CatalogHandler{Catalog: cat, Pricer: pricer}
}

// GetCatalog handles GET /v1/catalog.  It returns the four bundle tiers,
// the six à-la-carte attractions and the fixed time-slot labels the forms
// offer.
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	products := h.Catalog.Products()
	bundles := make([]catalog.Product, 0, 4)
	alaCarte := make([]catalog.Product, 0, 6)
	for _, p := range products {
		if p.Bundle {
			bundles = append(bundles, p)
		} else {
			alaCarte = append(alaCarte, p)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"bundles":            bundles,
		"ala_carte":          alaCarte,
		"time_slots":         catalog.TimeSlots,
		"primary_attraction": catalog.PrimaryAttraction,
		"primary_bundle":     catalog.PrimaryBundle,
	})
}

// GetPrices handles GET /v1/prices?category=&product=.  It returns the unit
// price labels for the pair the way the form shows them: real amounts for a
// catalog hit, the "SGD -" placeholder otherwise.  A miss is a normal
// response, not an error — the form simply shows no price and keeps the
// confirm control disabled.
func (h *CatalogHandler) GetPrices(c echo.Context) error {
	category := c.QueryParam("category")
	product := c.QueryParam("product")
	if product == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product is required"})
	}
	adult, child := h.Pricer.UnitDisplay(product, category)
	resp := echo.Map{
		"adult_price": adult,
		"child_price": child,
	}
	if quote, err := h.Pricer.Price(product, category, partyOfOneAdult); err == nil {
		resp["adult_cents"] = quote.AmountCents
		resp["priceable"] = true
	} else {
		resp["priceable"] = false
	}
	return c.JSON(http.StatusOK, resp)
}

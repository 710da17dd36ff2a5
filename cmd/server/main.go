package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/booking"
	"github.com/jewelpark/attraction-cart/internal/cart"
	"github.com/jewelpark/attraction-cart/internal/catalog"
	"github.com/jewelpark/attraction-cart/internal/config"
	"github.com/jewelpark/attraction-cart/internal/database"
	"github.com/jewelpark/attraction-cart/internal/handler"
	"github.com/jewelpark/attraction-cart/internal/handoff"
	"github.com/jewelpark/attraction-cart/internal/middleware"
	"github.com/jewelpark/attraction-cart/internal/pricing"
	"github.com/jewelpark/attraction-cart/internal/queue"
	"github.com/jewelpark/attraction-cart/internal/repository"
	"github.com/jewelpark/attraction-cart/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the vars directly
	cfg := config.Load()

	// Catalog: built-in table, optionally overridden from the database.
	cat := catalog.Static()
	if cfg.HasDatabase() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("database: unavailable, using built-in prices: %v", err)
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			n, err := repository.NewPriceRepo(db).ApplyOverrides(ctx, cat)
			cancel()
			if err != nil {
				log.Printf("database: price override load failed, using built-in prices: %v", err)
			} else if n > 0 {
				log.Printf("database: applied %d price overrides", n)
			}
		}
	}

	pricer := pricing.New(cat)
	carts := cart.NewStore()
	book := booking.NewService(pricer, carts)

	// Redis backs the handoff mailbox and the catalog response cache.  With
	// no Redis the mailbox falls back to memory and caching is disabled.
	rdb := config.NewRedisClient()
	var store handoff.Store
	if rdb != nil {
		store = handoff.NewRedisStore(rdb)
	} else {
		log.Printf("redis: unavailable, pending tickets held in memory only")
		store = handoff.NewMemoryStore()
	}
	mailbox := handoff.NewMailbox(store, pricer)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(cat, pricer), cfg.SessionSecret,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterBooking(e,
		handler.NewBookingHandler(book, pricer),
		handler.NewCartHandler(book),
		handler.NewTicketHandler(mailbox, book),
		cfg.SessionSecret)

	// Background consumer appends cart events to logs/cart.log.
	go func() {
		if err := queue.StartItemAddedConsumer(); err != nil {
			log.Printf("cart-consumer: stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

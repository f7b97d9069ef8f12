package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MOBASSHIR07/foodhub-gateway/internal/backend"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/cart"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/config"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/imghost"
	"github.com/MOBASSHIR07/foodhub-gateway/internal/order"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	storage, err := newCartStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("cart storage: %v", err)
	}

	api := backend.New(cfg.BackendBaseURL, cfg.SiteOrigin)
	carts := cart.NewStore(storage)
	carts.Subscribe(func(cartID string) {
		log.Printf("[cart] changed cart=%s", cartID)
	})

	d := &deps{
		cfg:      cfg,
		api:      api,
		carts:    carts,
		checkout: order.NewCheckout(carts, api),
		tracker:  order.NewTracker(api),
		images:   imghost.New(cfg.ImgBBAPIKey),
	}

	r := newRouter(d)
	log.Printf("gateway listening on %s", cfg.ListenAddr)
	log.Fatal(r.Run(cfg.ListenAddr))
}

func newCartStorage(ctx context.Context, cfg config.Config) (cart.Storage, error) {
	switch cfg.CartBackend {
	case "redis":
		return cart.NewRedisStorage(ctx, cfg.RedisURL)
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			return nil, err
		}
		return cart.NewPGStorage(pool), nil
	default:
		log.Printf("[cart] using in-memory storage; carts do not survive restarts")
		return cart.NewMemoryStorage(), nil
	}
}

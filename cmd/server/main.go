package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/parkeasy/parkeasy-api/internal/config"
	"github.com/parkeasy/parkeasy-api/internal/database"
	"github.com/parkeasy/parkeasy-api/internal/handler"
	"github.com/parkeasy/parkeasy-api/internal/middleware"
	"github.com/parkeasy/parkeasy-api/internal/queue"
	"github.com/parkeasy/parkeasy-api/internal/repository"
	"github.com/parkeasy/parkeasy-api/internal/router"
	"github.com/parkeasy/parkeasy-api/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	if err := database.Migrate(db, "migrations"); err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	// Redis is optional: a nil client turns the cache and the rate
	// limiter into pass-through middleware.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db, cfg.BcryptCost)
	vehicles := repository.NewVehicleRepo(db)
	spaces := repository.NewSpaceRepo(db)
	sessions := repository.NewSessionRepo(db)
	payments := repository.NewPaymentRepo(db)
	rates := repository.NewRateRepo(db)

	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users),
		Spaces:   handler.NewSpaceHandler(spaces),
		Sessions: handler.NewSessionHandler(sessions, rates, service.NewRabbitPublisher()),
		Vehicles: handler.NewVehicleHandler(vehicles),
		Payments: handler.NewPaymentHandler(payments),
		Rates:    handler.NewRateHandler(rates),
	}

	e := echo.New()
	router.Register(e, handlers, cfg.JWTSecret, cache, limiter)

	// Billing audit consumer; reconnects on its own.
	go func() {
		if err := queue.StartSessionConsumer(); err != nil {
			log.Printf("session consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/skinflex/api/api"
	"github.com/skinflex/api/config"
	"github.com/skinflex/api/core/carousel"
	"github.com/skinflex/api/core/cart"
	"github.com/skinflex/api/core/catalog"
	"github.com/skinflex/api/database"
	"github.com/skinflex/api/rate"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	const prefix = "SKINFLEX"
	var cfg config.Config
	if _, err := conf.Parse(prefix, &cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	db, err := database.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	sessionManager := scs.New()
	sessionManager.Lifetime = cfg.Cart.SessionLifetime

	slot := openSlot(cfg, logger)

	catalogStore := catalog.NewStore()
	catalog.Seed(catalogStore)

	carouselStore := carousel.NewStore()
	carousel.Seed(carouselStore)

	limiter := rate.NewLimiter(cfg.Rate.Burst, cfg.Rate.ExpiryMinute, cfg.Rate.RPS)

	mux := api.APIMux(api.APIConfig{
		CorsOrigin:  cfg.Cors.Origin,
		Log:         logger,
		DB:          db,
		Session:     sessionManager,
		Catalog:     catalogStore,
		Carousel:    carouselStore,
		CartSlot:    slot,
		AdminAPIKey: cfg.Admin.APIKey,
		Limiter:     limiter,
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

// openSlot connects the cart slot to Redis, degrading to the in-memory
// slot when Redis cannot be reached so carts keep working within the
// process lifetime.
func openSlot(cfg config.Config, logger *logrus.Logger) cart.Slot {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warnf("redis unreachable at %s, carts will not survive restarts: %v", cfg.Redis.Address, err)
		return cart.NewMemorySlot()
	}

	return cart.NewRedisSlot(client, cfg.Cart.KeyPrefix, cfg.Cart.SessionLifetime)
}

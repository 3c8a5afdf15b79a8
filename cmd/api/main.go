package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	server "hoteldesk/internal/adapters/http_server"
	"hoteldesk/internal/adapters/observability"
	redisad "hoteldesk/internal/adapters/redis"
	"hoteldesk/internal/app"
	"hoteldesk/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	hotel := shared.SeedHotel()
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(hotel, cache, cfg.CacheTTL, cfg.RegularPhones, cfg.RegularDiscount)
	b := app.NewBookingService(hotel, cache)

	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:            q,
		B:            b,
		ReserveLimit: rate.NewLimiter(rate.Limit(cfg.ReserveRPS), cfg.ReserveRPS),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Str("hotel", hotel.Name).Int("rooms", len(hotel.Rooms())).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("shutdown complete")
}

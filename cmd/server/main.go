package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teatrolive/seating-backend/internal/config"
	"github.com/teatrolive/seating-backend/internal/httpapi"
	"github.com/teatrolive/seating-backend/internal/store"
	"github.com/teatrolive/seating-backend/internal/venue"
)

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st := store.New(ctx, venue.BuildSeats())
	defer st.Close()

	if cfg.SeedDemo {
		for _, key := range venue.DemoBookings() {
			if err := st.SetStatus(key, venue.StatusBooked); err != nil {
				log.Warn("seeding demo bookings", zap.Error(err))
			}
		}
		log.Info("demo bookings applied", zap.Int("seats", len(venue.DemoBookings())))
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: httpapi.SetupRoutes(st, log),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "routerider/internal/config"
	"routerider/internal/flow"
	router "routerider/internal/http"
	"routerider/internal/repositories"
	"routerider/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := utils.Logger()
	defer utils.SyncLogger()

	var (
		store repositories.Store
		db    *sql.DB
	)
	switch env.StoreDriver {
	case "mysql":
		var err error
		db, err = intconfig.ConnectDB(env)
		if err != nil {
			log.Fatalw("database connection failed", "error", err)
		}
		defer db.Close()
		if err := repositories.EnsureSchema(db); err != nil {
			log.Fatalw("schema setup failed", "error", err)
		}
		store = repositories.Store{
			Routes:   repositories.RouteRepo{DB: db},
			Seats:    repositories.SeatRepo{DB: db},
			Bookings: repositories.BookingRepo{DB: db},
		}
	default:
		store = repositories.NewMemoryStore(env.StoreLatency).Store()
	}
	log.Infow("store ready", "driver", env.StoreDriver)

	sessions := flow.NewManager(env.FlowSessionTTL)
	sweepStop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := sessions.Sweep(); n > 0 {
					log.Infow("swept idle flow sessions", "removed", n)
				}
			case <-sweepStop:
				return
			}
		}
	}()
	defer close(sweepStop)

	r := router.NewRouter(env, router.Deps{Store: store, Sessions: sessions, DB: db})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infow("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("shutdown failed", "error", err)
	}

	log.Infow("server stopped")
}

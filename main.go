package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "net/http/pprof"

	"github.com/ntufar/meps/config"
	"github.com/ntufar/meps/data"
	"github.com/ntufar/meps/engine"
	"github.com/ntufar/meps/handlers"
	"github.com/ntufar/meps/health"
	"github.com/ntufar/meps/logging"
	"github.com/ntufar/meps/scheduler"
	"github.com/ntufar/meps/server"
	"github.com/ntufar/meps/store"
	"github.com/ntufar/meps/validation"
)

func main() {
	// .env is optional; real environments configure through the process env
	if err := godotenv.Load(); err != nil {
		logging.Debug("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.InitLogger("logs")

	dataContainer := data.NewDataContainer()
	dataContainer.SetServerStartTime(time.Now())

	sched := scheduler.NewScheduler(dataContainer)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	checker := engine.NewService(dataContainer)
	validator := validation.NewDataValidator()
	healthChecker := health.NewHealthChecker(dataContainer)
	sessions := store.NewSessionStore(cfg.MaxSessions, cfg.MaxMedicationsPerList)

	handler := handlers.NewHandler(dataContainer, checker, validator, healthChecker, sessions)
	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cyber-tower-defense/internal/app"
	"cyber-tower-defense/internal/config"
	"cyber-tower-defense/internal/defs"
	"cyber-tower-defense/internal/network"
	"cyber-tower-defense/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	autostart := flag.Bool("start", false, "start the session immediately")
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid configuration")
	}
	logger.Init(settings.LogLevel, settings.LogFormat)

	catalog, err := defs.OpenCatalog(settings.CatalogDir)
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load catalog")
	}

	game, err := app.NewGame(app.OptionsFromSettings(settings, catalog))
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to create game")
	}

	hub := network.NewHub()
	srv := network.NewServer(game, catalog, hub)
	game.OnTick(srv.BroadcastSnapshot)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := game.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.WithError(err).Error("simulation loop stopped")
		}
	}()
	if *autostart {
		game.Start()
	}

	httpServer := &http.Server{
		Addr:              settings.ListenAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Log.WithFields(logrus.Fields{
			"addr":    settings.ListenAddr,
			"session": game.SessionID(),
		}).Info("cyber tower defense server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")
	game.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("http shutdown")
	}
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"gadgetstore/internal/config"
	"gadgetstore/internal/database"
	"gadgetstore/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := config.NewLogger(cfg.Logger)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.Name).Msg("database connected")

	app := router.New(db, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := app.Listen(cfg.Server.Port); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}
	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	}
	log.Info().Msg("server stopped")
}

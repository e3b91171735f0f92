package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"safesocket/internal/config"
	"safesocket/internal/database"
	httpHandlers "safesocket/internal/http"
	"safesocket/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}

	svcs := service.New(db)
	app := fiber.New()

	app.Static("/", config.StaticDir())
	httpHandlers.Register(app, svcs)

	log.Info().Str("db", config.DBPath()).Msg("SafeSocket server started, database initialized")
	log.Info().Str("addr", config.ServerAddr()).Msg("waiting for device connection")
	log.Fatal().Err(app.Listen(config.ServerAddr())).Msg("server exit")
}

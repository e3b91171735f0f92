package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"safesocket/internal/service"
)

// historyLimit bounds the chart query; the dashboard shows the last 30
// readings.
const historyLimit = 30

func Register(app *fiber.App, svcs *service.Services) {
	app.Post("/update_sensor", func(c *fiber.Ctx) error {
		rd, err := svcs.Ingest.Ingest(c.Body(), time.Now())
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				log.Warn().Err(err).Bytes("body", c.Body()).Msg("bad sensor payload")
			} else {
				log.Error().Err(err).Msg("reading insert failed")
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Error"})
		}
		log.Info().
			Float64("current", rd.Current).
			Float64("power", rd.Power).
			Str("status", rd.Status).
			Msg("reading logged")
		return c.JSON(fiber.Map{"message": "Data Logged Successfully"})
	})

	app.Get("/get_live_data", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Live.Get())
	})

	app.Get("/get_history", func(c *fiber.Ctx) error {
		points, err := svcs.Repos.RecentHistory(historyLimit)
		if err != nil {
			log.Error().Err(err).Msg("history query failed")
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"error": "history unavailable"})
		}
		labels := make([]string, len(points))
		power := make([]float64, len(points))
		for i, p := range points {
			labels[i] = p.Label
			power[i] = p.Power
		}
		return c.JSON(fiber.Map{"labels": labels, "power": power})
	})
}

package main

import (
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"safesocket/internal/config"
)

// Posts synthetic readings the way the device firmware would, for local
// development without hardware.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	client := resty.New().SetBaseURL(config.ServerURL())
	statuses := []string{"ON", "IDLE", "OVERLOAD"}

	for i := 0; i < 100; i++ {
		payload := map[string]interface{}{
			"current": 2 + rand.Float64()*3,
			"status":  statuses[rand.Intn(len(statuses))],
		}
		resp, err := client.R().SetBody(payload).Post("/update_sensor")
		if err != nil {
			log.Error().Err(err).Msg("post failed")
		} else if resp.IsError() {
			log.Error().Int("status", resp.StatusCode()).Msg("server rejected reading")
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}

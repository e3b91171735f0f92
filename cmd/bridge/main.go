package main

import (
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"safesocket/internal/config"
)

// Forwards readings published over MQTT to the server's ingest
// endpoint, for devices that speak MQTT instead of HTTP. The payload
// format on the topic matches the POST /update_sensor body.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	client := resty.New().SetBaseURL(config.ServerURL())

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	mq := mqtt.NewClient(opts)
	if token := mq.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer mq.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(msg.Payload()).
			Post("/update_sensor")
		if err != nil {
			log.Error().Err(err).Msg("forward failed")
			return
		}
		if resp.IsError() {
			log.Warn().Int("status", resp.StatusCode()).Msg("server rejected forwarded reading")
		}
	}

	if token := mq.Subscribe(config.MQTTTopic(), 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("topic", config.MQTTTopic()).Msg("bridge running; Ctrl+C to stop")
	for {
		time.Sleep(10 * time.Second)
	}
}

package config

import "github.com/spf13/viper"

func Load() error {
	// Server configuration. :5000 binds all interfaces so the device
	// on the local network can reach us.
	viper.SetDefault("SERVER_ADDR", ":5000")
	viper.SetDefault("DB_PATH", "sensor_data.db")
	viper.SetDefault("STATIC_DIR", "./web/static")

	// Bridge / simulator configuration
	viper.SetDefault("SERVER_URL", "http://localhost:5000")
	viper.SetDefault("MQTT_BROKER", "tcp://localhost:1883")
	viper.SetDefault("MQTT_TOPIC", "safesocket/readings")

	viper.AutomaticEnv()
	return nil
}

func ServerAddr() string { return viper.GetString("SERVER_ADDR") }
func DBPath() string     { return viper.GetString("DB_PATH") }
func StaticDir() string  { return viper.GetString("STATIC_DIR") }
func ServerURL() string  { return viper.GetString("SERVER_URL") }
func MQTTBroker() string { return viper.GetString("MQTT_BROKER") }
func MQTTTopic() string  { return viper.GetString("MQTT_TOPIC") }

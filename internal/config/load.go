// internal/config/load.go
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path the daemon uses when none is given.
const DefaultConfigFile = "r4dcb08.yaml"

// Load reads the YAML config file and applies defaults plus the environment
// overlay. A .env file next to the working directory is honored if present;
// MQTT credentials and broker from the environment win over the file so
// secrets can stay out of it.
func Load(path string) (*Config, error) {
	// best effort: a missing .env is not an error
	_ = godotenv.Load()

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(&cfg)
	applyEnv(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.MQTT.Broker == "" {
		cfg.MQTT.Broker = "tcp://localhost:1883"
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "r4dcb08"
	}
	if cfg.MQTT.Topic == "" {
		cfg.MQTT.Topic = "r4dcb08"
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		cfg.MQTT.Broker = v
	}
	if v := os.Getenv("MQTT_USERNAME"); v != "" {
		cfg.MQTT.Username = v
	}
	if v := os.Getenv("MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Password = v
	}
}

// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only and MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg.MQTT.Broker == "" {
		return fmt.Errorf("mqtt: broker is required")
	}

	if cfg.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt: qos %d out of range (0-2)", cfg.MQTT.QoS)
	}

	// Publish topics must be literal: wildcards are subscribe-side syntax.
	if strings.ContainsAny(cfg.MQTT.Topic, "#+") {
		return fmt.Errorf("mqtt: topic %q must not contain wildcard characters", cfg.MQTT.Topic)
	}
	if strings.HasSuffix(cfg.MQTT.Topic, "/") {
		return fmt.Errorf("mqtt: topic %q must not end with a slash", cfg.MQTT.Topic)
	}

	// client id sanity (ASCII only)
	for i := 0; i < len(cfg.MQTT.ClientID); i++ {
		if cfg.MQTT.ClientID[i] > 0x7F {
			return fmt.Errorf("mqtt: client_id must contain ASCII characters only")
		}
	}

	return nil
}

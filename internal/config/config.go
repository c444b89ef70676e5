// internal/config/config.go

// Package config holds the daemon-mode configuration: where to publish
// temperatures and whether to expose metrics. Plain CLI commands do not use
// it; their few knobs travel as flags.
package config

type Config struct {
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ---- MQTT ----

type MQTTConfig struct {
	// Broker is the paho broker URL, e.g. "tcp://localhost:1883".
	Broker   string `yaml:"broker"`
	ClientID string `yaml:"client_id"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Topic is the prefix; readings publish to "<topic>/ch<N>" and the
	// availability flag to "<topic>/availability".
	Topic  string `yaml:"topic"`
	QoS    uint8  `yaml:"qos"`
	Retain bool   `yaml:"retain"`
}

// ---- METRICS ----

type MetricsConfig struct {
	// Listen is the prometheus HTTP listen address, e.g. ":9090".
	// Empty disables the endpoint.
	Listen string `yaml:"listen"`
}

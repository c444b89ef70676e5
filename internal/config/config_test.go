// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "r4dcb08.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  broker: tcp://broker.local:1883
  client_id: probe-1
  topic: cellar/temperatures
  qos: 1
  retain: true
metrics:
  listen: ":9090"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.MQTT.Broker != "tcp://broker.local:1883" {
		t.Fatalf("broker = %q", cfg.MQTT.Broker)
	}
	if cfg.MQTT.Topic != "cellar/temperatures" {
		t.Fatalf("topic = %q", cfg.MQTT.Topic)
	}
	if cfg.MQTT.QoS != 1 || !cfg.MQTT.Retain {
		t.Fatalf("qos=%d retain=%v", cfg.MQTT.QoS, cfg.MQTT.Retain)
	}
	if cfg.Metrics.Listen != ":9090" {
		t.Fatalf("metrics listen = %q", cfg.Metrics.Listen)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "mqtt: {}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.MQTT.Broker != "tcp://localhost:1883" {
		t.Fatalf("default broker = %q", cfg.MQTT.Broker)
	}
	if cfg.MQTT.ClientID != "r4dcb08" || cfg.MQTT.Topic != "r4dcb08" {
		t.Fatalf("defaults = %q %q", cfg.MQTT.ClientID, cfg.MQTT.Topic)
	}
	if cfg.Metrics.Listen != "" {
		t.Fatalf("metrics enabled by default: %q", cfg.Metrics.Listen)
	}
}

func TestLoadEnvOverlay(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  broker: tcp://file.local:1883
  username: from-file
`)

	t.Setenv("MQTT_BROKER", "tcp://env.local:1883")
	t.Setenv("MQTT_USERNAME", "from-env")
	t.Setenv("MQTT_PASSWORD", "secret")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if cfg.MQTT.Broker != "tcp://env.local:1883" {
		t.Fatalf("broker = %q, env should win", cfg.MQTT.Broker)
	}
	if cfg.MQTT.Username != "from-env" || cfg.MQTT.Password != "secret" {
		t.Fatalf("credentials = %q %q", cfg.MQTT.Username, cfg.MQTT.Password)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Load of a missing file expected error")
	}
}

func TestValidate(t *testing.T) {
	valid := &Config{MQTT: MQTTConfig{Broker: "tcp://localhost:1883", ClientID: "r4dcb08", Topic: "r4dcb08"}}
	if err := Validate(valid); err != nil {
		t.Fatalf("Validate(valid) err=%v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"missing broker", Config{MQTT: MQTTConfig{Topic: "t"}}},
		{"qos out of range", Config{MQTT: MQTTConfig{Broker: "b", Topic: "t", QoS: 3}}},
		{"wildcard topic", Config{MQTT: MQTTConfig{Broker: "b", Topic: "temps/#"}}},
		{"trailing slash topic", Config{MQTT: MQTTConfig{Broker: "b", Topic: "temps/"}}},
		{"non-ascii client id", Config{MQTT: MQTTConfig{Broker: "b", Topic: "t", ClientID: "probe-\xc3\xa9"}}},
	}
	for _, c := range cases {
		if err := Validate(&c.cfg); err == nil {
			t.Fatalf("Validate(%s) expected error", c.name)
		}
	}
}

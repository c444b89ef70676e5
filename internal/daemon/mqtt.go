// internal/daemon/mqtt.go
package daemon

import (
	"fmt"
	"log"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/tamzrod/r4dcb08/internal/config"
	"github.com/tamzrod/r4dcb08/internal/protocol"
)

const mqttOpTimeout = 10 * time.Second

// MQTTSink publishes each channel's reading to "<topic>/ch<N>" with the
// codec display string as payload ("21.9", "NAN"). Availability goes to
// "<topic>/availability" as a retained online/offline flag, with offline
// also registered as the broker will.
type MQTTSink struct {
	client mqtt.Client
	cfg    config.MQTTConfig
	logger *log.Logger
}

// NewMQTTSink connects to the broker and announces availability.
func NewMQTTSink(cfg config.MQTTConfig) (*MQTTSink, error) {
	logger := log.New(log.Writer(), "[mqtt] ", log.LstdFlags)

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(30 * time.Second)
	opts.SetMaxReconnectInterval(5 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetWriteTimeout(mqttOpTimeout)
	opts.SetWill(cfg.Topic+"/availability", "offline", cfg.QoS, true)

	opts.OnConnect = func(c mqtt.Client) {
		logger.Printf("connected to %s (client id %s)", cfg.Broker, cfg.ClientID)
		c.Publish(cfg.Topic+"/availability", cfg.QoS, true, "online")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Printf("connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(30 * time.Second) {
		return nil, fmt.Errorf("mqtt: connect to %s timed out", cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", cfg.Broker, err)
	}

	return &MQTTSink{client: client, cfg: cfg, logger: logger}, nil
}

func (s *MQTTSink) Publish(temps protocol.Temperatures) error {
	var errs []string

	for ch, t := range temps {
		topic := fmt.Sprintf("%s/ch%d", s.cfg.Topic, ch)
		token := s.client.Publish(topic, s.cfg.QoS, s.cfg.Retain, t.String())
		if !token.WaitTimeout(mqttOpTimeout) {
			errs = append(errs, fmt.Sprintf("publish %s timed out", topic))
			continue
		}
		if err := token.Error(); err != nil {
			errs = append(errs, fmt.Sprintf("publish %s: %v", topic, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("mqtt: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Close announces offline and disconnects.
func (s *MQTTSink) Close() error {
	token := s.client.Publish(s.cfg.Topic+"/availability", s.cfg.QoS, true, "offline")
	token.WaitTimeout(mqttOpTimeout)
	s.client.Disconnect(250)
	return nil
}

// internal/daemon/daemon.go

// Package daemon implements the continuous polling mode: read all channels
// on a fixed interval and hand the readings to one or more sinks.
package daemon

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// Reader abstracts the device operation the daemon needs.
type Reader interface {
	ReadTemperatures() (protocol.Temperatures, error)
}

// Daemon is a dumb, clock-driven reader. A failed poll cycle is logged and
// counted, never fatal; the next tick tries again.
type Daemon struct {
	reader   Reader
	sinks    []Sink
	interval time.Duration
	metrics  *Metrics
	logger   *log.Logger
}

// New creates a daemon with immutable config. metrics may be nil.
func New(reader Reader, interval time.Duration, metrics *Metrics, sinks ...Sink) (*Daemon, error) {
	if reader == nil {
		return nil, errors.New("daemon: reader required")
	}
	if interval <= 0 {
		return nil, errors.New("daemon: interval must be > 0")
	}
	if len(sinks) == 0 {
		return nil, errors.New("daemon: at least one sink required")
	}
	return &Daemon{
		reader:   reader,
		sinks:    sinks,
		interval: interval,
		metrics:  metrics,
		logger:   log.New(log.Writer(), "[daemon] ", log.LstdFlags),
	}, nil
}

// Run polls until the context is canceled. The first poll happens
// immediately, then on every interval tick.
func (d *Daemon) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.pollOnce()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.pollOnce()
		}
	}
}

func (d *Daemon) pollOnce() {
	temps, err := d.reader.ReadTemperatures()
	if err != nil {
		d.logger.Printf("read failed: %v", err)
		if d.metrics != nil {
			d.metrics.ObserveError()
		}
		return
	}

	if d.metrics != nil {
		d.metrics.Observe(temps)
	}

	for _, s := range d.sinks {
		if err := s.Publish(temps); err != nil {
			d.logger.Printf("publish failed: %v", err)
		}
	}
}

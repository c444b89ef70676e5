// internal/daemon/sink.go
package daemon

import (
	"fmt"
	"io"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// Sink receives one full poll cycle's readings.
type Sink interface {
	Publish(protocol.Temperatures) error
	Close() error
}

// ConsoleSink prints readings as one line per poll cycle.
type ConsoleSink struct {
	out io.Writer
}

// NewConsoleSink writes readings to out.
func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{out: out}
}

func (s *ConsoleSink) Publish(temps protocol.Temperatures) error {
	_, err := fmt.Fprintf(s.out, "Temperatures (°C): %s\n", temps)
	return err
}

func (s *ConsoleSink) Close() error {
	return nil
}

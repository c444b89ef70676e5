// cmd/r4dcb08/parse.go
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// The parsers accept decimal or hex (0x..) where the protocol documentation
// uses both, and push every value through the codec's validated constructors
// so the CLI reports the codec's bounds in its errors.

func parseChannel(s string) (protocol.Channel, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return protocol.Channel{}, fmt.Errorf("invalid channel number %q", s)
	}
	return protocol.NewChannel(uint8(v))
}

func parseAddress(s string) (protocol.Address, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return protocol.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return protocol.NewAddress(uint8(v))
}

func parseTemperature(s string) (protocol.Temperature, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return protocol.Temperature{}, fmt.Errorf("invalid temperature value %q", s)
	}
	return protocol.NewTemperature(float32(v))
}

func parseBaudRate(s string) (protocol.BaudRate, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid baud rate %q", s)
	}
	return protocol.NewBaudRate(uint16(v))
}

// parseAutomaticReport accepts either a bare second count (0-255) or a
// duration string like "30s" or "2m".
func parseAutomaticReport(s string) (protocol.AutomaticReport, error) {
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		if v > uint64(protocol.ReportSecondsMax) {
			return protocol.AutomaticReport{}, &protocol.DurationRangeError{Seconds: v}
		}
		return protocol.NewAutomaticReport(uint8(v)), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return protocol.AutomaticReport{}, fmt.Errorf("invalid report interval %q", s)
	}
	return protocol.AutomaticReportFromDuration(d)
}

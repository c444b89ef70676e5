// internal/client/dial.go
package client

import (
	"errors"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// RTUConfig is the serial transport configuration. SlaveID is a raw byte,
// not a protocol.Address, so the broadcast value 255 can be used to address
// a query-address read on a single-device bus.
type RTUConfig struct {
	Device  string
	Baud    protocol.BaudRate
	SlaveID byte
	Timeout time.Duration
}

// DialRTU opens a Modbus RTU connection (8N1 framing per the device manual)
// and returns a typed client with its closer.
func DialRTU(cfg RTUConfig) (*Client, func() error, error) {
	if cfg.Device == "" {
		return nil, nil, errors.New("client: serial device required")
	}

	h := modbus.NewRTUClientHandler(cfg.Device)
	h.BaudRate = int(cfg.Baud.Value())
	h.DataBits = 8
	h.Parity = "N"
	h.StopBits = 1
	h.SlaveId = cfg.SlaveID
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, nil, err
	}

	return New(modbus.NewClient(h)), h.Close, nil
}

// DialTCP opens a Modbus TCP connection and returns a typed client with its
// closer.
func DialTCP(endpoint string, slaveID byte, timeout time.Duration) (*Client, func() error, error) {
	if endpoint == "" {
		return nil, nil, errors.New("client: endpoint required")
	}

	h := modbus.NewTCPClientHandler(endpoint)
	h.SlaveId = slaveID
	h.Timeout = timeout

	if err := h.Connect(); err != nil {
		return nil, nil, err
	}

	return New(modbus.NewClient(h)), h.Close, nil
}

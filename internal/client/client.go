// internal/client/client.go

// Package client provides a typed client for the R4DCB08 temperature module.
// It pairs the register codec in internal/protocol with a register-level
// Modbus transport: the codec decides what the words mean, the transport
// only moves them.
package client

import (
	"errors"
	"net"
	"os"
	"sync"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// Bus is the register-level transport contract the codec consumes. The
// goburrow modbus.Client satisfies it directly.
type Bus interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error) // FC 3
	WriteSingleRegister(address, value uint16) ([]byte, error)     // FC 6
}

// Client is a typed R4DCB08 device client. It serializes requests because
// RTU transports allow one transaction in flight per bus.
type Client struct {
	mu  sync.Mutex
	bus Bus
}

// New wraps a connected register bus.
func New(bus Bus) *Client {
	return &Client{bus: bus}
}

func (c *Client) readWords(address, quantity uint16) ([]protocol.Word, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	payload, err := c.bus.ReadHoldingRegisters(address, quantity)
	if err != nil {
		return nil, err
	}
	return wordsFromBytes(payload)
}

func (c *Client) writeWord(address uint16, value protocol.Word) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.bus.WriteSingleRegister(address, value)
	return err
}

// ReadTemperatures reads the current reading of all 8 channels in °C.
// Channels without a connected sensor decode as the NaN sentinel.
func (c *Client) ReadTemperatures() (protocol.Temperatures, error) {
	words, err := c.readWords(protocol.TemperaturesAddress, protocol.TemperaturesQuantity)
	if err != nil {
		return protocol.Temperatures{}, err
	}
	return protocol.DecodeTemperatures(words)
}

// ReadTemperatureCorrection reads the calibration offsets of all 8 channels.
func (c *Client) ReadTemperatureCorrection() (protocol.TemperatureCorrection, error) {
	words, err := c.readWords(protocol.CorrectionAddress, protocol.CorrectionQuantity)
	if err != nil {
		return protocol.TemperatureCorrection{}, err
	}
	return protocol.DecodeTemperatureCorrection(words)
}

// SetTemperatureCorrection writes one channel's calibration offset. The
// device only supports single-channel correction writes.
func (c *Client) SetTemperatureCorrection(ch protocol.Channel, value protocol.Temperature) error {
	word, err := protocol.EncodeCorrection(value)
	if err != nil {
		return err
	}
	return c.writeWord(protocol.CorrectionChannelAddress(ch), word)
}

// ReadBaudRate reads the configured RS485 rate.
func (c *Client) ReadBaudRate() (protocol.BaudRate, error) {
	words, err := c.readWords(protocol.BaudRateAddress, protocol.BaudRateQuantity)
	if err != nil {
		return 0, err
	}
	return protocol.DecodeBaudRate(words)
}

// SetBaudRate writes a new RS485 rate. The device applies it only after a
// power cycle.
func (c *Client) SetBaudRate(rate protocol.BaudRate) error {
	return c.writeWord(protocol.BaudRateAddress, rate.Encode())
}

// ReadAddress reads the device's Modbus address. When the transport is
// addressed with the broadcast value this answers from the one device on
// the bus, which is how an unknown address is recovered.
func (c *Client) ReadAddress() (protocol.Address, error) {
	words, err := c.readWords(protocol.AddressRegister, protocol.AddressQuantity)
	if err != nil {
		return protocol.Address{}, err
	}
	return protocol.DecodeAddress(words)
}

// SetAddress writes a new Modbus address. Subsequent requests must use the
// new address.
func (c *Client) SetAddress(addr protocol.Address) error {
	return c.writeWord(protocol.AddressRegister, addr.Encode())
}

// ReadAutomaticReport reads the unsolicited report interval.
func (c *Client) ReadAutomaticReport() (protocol.AutomaticReport, error) {
	words, err := c.readWords(protocol.ReportAddress, protocol.ReportQuantity)
	if err != nil {
		return protocol.AutomaticReport{}, err
	}
	return protocol.DecodeAutomaticReport(words)
}

// SetAutomaticReport writes the unsolicited report interval.
func (c *Client) SetAutomaticReport(report protocol.AutomaticReport) error {
	return c.writeWord(protocol.ReportAddress, report.Encode())
}

// FactoryReset restores factory defaults. The device goes silent until it is
// power-cycled, so the write often answers with a timeout; use IsTimeout to
// recognize that case and treat it as success.
func (c *Client) FactoryReset() error {
	return c.writeWord(protocol.FactoryResetAddress, protocol.EncodeFactoryReset())
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return os.IsTimeout(err)
}

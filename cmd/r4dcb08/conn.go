// cmd/r4dcb08/conn.go
package main

import (
	"time"

	"github.com/tamzrod/r4dcb08/internal/client"
)

// connection bundles an open device client with its closer and the
// effective inter-command delay for this transport.
type connection struct {
	client *client.Client
	close  func() error
	delay  time.Duration
}

// opener dials the device with the transport the parent command selected.
// The CLI builds one device-command set per transport and hands each set
// its own opener.
type opener func() (*connection, error)

// sleepBetweenCommands paces consecutive Modbus requests. RTU converters
// need the silence to switch between TX and RX.
func (c *connection) sleepBetweenCommands() {
	time.Sleep(c.delay)
}

// cmd/r4dcb08/rtu.go
package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tamzrod/r4dcb08/internal/client"
	"github.com/tamzrod/r4dcb08/internal/protocol"
)

func defaultSerialDevice() string {
	if runtime.GOOS == "windows" {
		return "COM1"
	}
	return "/dev/ttyUSB0"
}

func newRTUCmd() *cobra.Command {
	var (
		device   string
		baudRate uint16
		address  uint8
	)

	cmd := &cobra.Command{
		Use:   "rtu",
		Short: "Talk to a module over Modbus RTU (serial)",
		Long: `Connect to a temperature module on an RS485 bus through a serial port.
The baud rate must match the device's configured rate (factory default 9600).
Example: r4dcb08 rtu --device /dev/ttyUSB0 --address 1 read`,
	}

	cmd.PersistentFlags().StringVarP(&device, "device", "d", defaultSerialDevice(),
		"serial port device name, e.g. \"/dev/ttyUSB0\" or \"COM3\"")
	cmd.PersistentFlags().Uint16Var(&baudRate, "baud-rate", protocol.BaudRateDefault.Value(),
		"serial baud rate (1200, 2400, 4800, 9600, 19200)")
	cmd.PersistentFlags().Uint8VarP(&address, "address", "a", protocol.AddressDefault.Value(),
		"Modbus device address on the bus (1-247)")

	dial := func(slaveID byte) (*connection, error) {
		baud, err := protocol.NewBaudRate(baudRate)
		if err != nil {
			return nil, err
		}
		delay := client.CheckRTUDelay(flagDelay, baud)

		c, closer, err := client.DialRTU(client.RTUConfig{
			Device:  device,
			Baud:    baud,
			SlaveID: slaveID,
			Timeout: flagTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("open serial port %s: %w", device, err)
		}
		return &connection{client: c, close: closer, delay: delay}, nil
	}

	open := func() (*connection, error) {
		addr, err := protocol.NewAddress(address)
		if err != nil {
			return nil, err
		}
		return dial(addr.Value())
	}

	// Broadcast addressing is how an unknown device address is recovered;
	// it only works with a single module on the bus segment.
	openBroadcast := func() (*connection, error) {
		return dial(protocol.BroadcastValue)
	}

	for _, sub := range deviceCommands(transport{open: open, openBroadcast: openBroadcast}) {
		cmd.AddCommand(sub)
	}
	return cmd
}

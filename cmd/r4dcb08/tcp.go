// cmd/r4dcb08/tcp.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/r4dcb08/internal/client"
)

func newTCPCmd() *cobra.Command {
	var (
		address string
		unitID  uint8
	)

	cmd := &cobra.Command{
		Use:   "tcp",
		Short: "Talk to a module over Modbus TCP",
		Long: `Connect to a temperature module via Modbus TCP, either directly or through
a Modbus TCP-to-RTU gateway. Example: r4dcb08 tcp -a 192.168.1.100:502 read`,
	}

	cmd.PersistentFlags().StringVarP(&address, "address", "a", "",
		"host:port of the Modbus TCP device, e.g. \"192.168.1.100:502\"")
	_ = cmd.MarkPersistentFlagRequired("address")
	cmd.PersistentFlags().Uint8Var(&unitID, "unit", 1,
		"Modbus unit id of the module behind the TCP endpoint")

	open := func() (*connection, error) {
		c, closer, err := client.DialTCP(address, unitID, flagTimeout)
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", address, err)
		}
		return &connection{client: c, close: closer, delay: flagDelay}, nil
	}

	for _, sub := range deviceCommands(transport{open: open}) {
		cmd.AddCommand(sub)
	}
	return cmd
}

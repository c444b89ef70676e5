// cmd/r4dcb08/scan.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/r4dcb08/internal/client"
	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// scanRates is the probe order. Starting at the highest rate keeps the
// timeout cost of the misses low.
var scanRates = []protocol.BaudRate{
	protocol.Baud19200,
	protocol.Baud9600,
	protocol.Baud4800,
	protocol.Baud2400,
	protocol.Baud1200,
}

func newRTUScanCmd() *cobra.Command {
	var device string

	cmd := &cobra.Command{
		Use:   "rtu-scan",
		Short: "Find a module with unknown baud rate and address",
		Long: `Probe the serial bus at every supported baud rate and ask the module for
its address over the broadcast address. Works only with a single module on
the bus segment.
Example: r4dcb08 rtu-scan --device /dev/ttyUSB0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ok, err := confirmOnlyOneModule(cmd.InOrStdin(), out)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}

			for _, rate := range scanRates {
				fmt.Fprintf(out, "Probing %s baud ...\n", rate)

				addr, err := probe(device, rate)
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "Found module: address %s, baud rate %s.\n", addr, rate)
				return nil
			}
			return fmt.Errorf("no module found on %s at any supported baud rate", device)
		},
	}

	cmd.Flags().StringVarP(&device, "device", "d", defaultSerialDevice(),
		"serial port device name, e.g. \"/dev/ttyUSB0\" or \"COM3\"")
	return cmd
}

// probe opens the port at one baud rate and asks for the device address over
// broadcast. Any error means no module answered at this rate.
func probe(device string, rate protocol.BaudRate) (protocol.Address, error) {
	c, closer, err := client.DialRTU(client.RTUConfig{
		Device:  device,
		Baud:    rate,
		SlaveID: protocol.BroadcastValue,
		Timeout: flagTimeout,
	})
	if err != nil {
		return protocol.Address{}, err
	}
	defer closer()

	return c.ReadAddress()
}

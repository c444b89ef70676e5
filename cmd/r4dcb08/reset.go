// cmd/r4dcb08/reset.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tamzrod/r4dcb08/internal/client"
	"github.com/tamzrod/r4dcb08/internal/protocol"
)

func newFactoryResetCmd(tr transport) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "factory-reset",
		Short: "Restore the module to its factory settings",
		Long: `Reset the module to factory defaults: address 0x01, baud rate 9600,
automatic reporting disabled and all correction offsets cleared. The module
stops answering after the reset and must be power-cycled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprintln(out, "A factory reset restores:")
				fmt.Fprintf(out, "  device address:       %s\n", protocol.AddressDefault)
				fmt.Fprintf(out, "  baud rate:            %s\n", protocol.BaudRateDefault)
				fmt.Fprintln(out, "  automatic reporting:  disabled")
				fmt.Fprintln(out, "  temperature correction: cleared on all channels")
				ok, err := confirm(cmd.InOrStdin(), out, "Reset the module to factory settings?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			return withConnection(tr.open, func(conn *connection) error {
				// Prove the module is reachable first so a dead link is not
				// mistaken for the expected post-reset silence.
				if _, err := conn.client.ReadTemperatures(); err != nil {
					return fmt.Errorf("module not reachable, reset not attempted: %w", err)
				}
				conn.sleepBetweenCommands()

				err := conn.client.FactoryReset()
				if err != nil && !client.IsTimeout(err) {
					return fmt.Errorf("factory reset: %w", err)
				}
				fmt.Fprintln(out, "Factory reset sent. Power-cycle the module to complete it.")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// cmd/r4dcb08/ops.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// transport bundles the openers a parent transport command provides. Every
// transport supplies open; only RTU can address the broadcast value, so
// openBroadcast stays nil on TCP.
type transport struct {
	open          opener
	openBroadcast opener
}

// deviceCommands builds the device operation subcommands for one transport.
func deviceCommands(tr transport) []*cobra.Command {
	return []*cobra.Command{
		newReadCmd(tr),
		newReadCorrectionCmd(tr),
		newReadBaudRateCmd(tr),
		newReadAutomaticReportCmd(tr),
		newReadAllCmd(tr),
		newQueryAddressCmd(tr),
		newSetCorrectionCmd(tr),
		newSetBaudRateCmd(tr),
		newSetAddressCmd(tr),
		newSetAutomaticReportCmd(tr),
		newFactoryResetCmd(tr),
		newDaemonCmd(tr),
	}
}

// withConnection opens the transport, runs fn and closes the port afterwards.
// A close error only surfaces when fn itself succeeded.
func withConnection(open opener, fn func(*connection) error) error {
	conn, err := open()
	if err != nil {
		return err
	}
	runErr := fn(conn)
	closeErr := conn.close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}

func newReadCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Read the current temperature of all channels in °C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(tr.open, func(conn *connection) error {
				temps, err := conn.client.ReadTemperatures()
				if err != nil {
					return fmt.Errorf("read temperatures: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Temperatures (°C): %s\n", temps)
				return nil
			})
		},
	}
}

func newReadCorrectionCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "read-correction",
		Short: "Read the temperature correction offset of all channels in °C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(tr.open, func(conn *connection) error {
				corr, err := conn.client.ReadTemperatureCorrection()
				if err != nil {
					return fmt.Errorf("read temperature correction: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Temperature correction (°C): %s\n", corr)
				return nil
			})
		},
	}
}

func newReadBaudRateCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "read-baud-rate",
		Short: "Read the configured RS485 baud rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(tr.open, func(conn *connection) error {
				rate, err := conn.client.ReadBaudRate()
				if err != nil {
					return fmt.Errorf("read baud rate: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Baud rate: %s\n", rate)
				return nil
			})
		},
	}
}

func newReadAutomaticReportCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "read-automatic-report",
		Short: "Read the automatic report interval (0s = disabled)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(tr.open, func(conn *connection) error {
				report, err := conn.client.ReadAutomaticReport()
				if err != nil {
					return fmt.Errorf("read automatic report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Automatic report interval: %s\n", report)
				return nil
			})
		},
	}
}

func newReadAllCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "read-all",
		Short: "Read temperatures, correction, baud rate and report interval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConnection(tr.open, func(conn *connection) error {
				out := cmd.OutOrStdout()

				temps, err := conn.client.ReadTemperatures()
				if err != nil {
					return fmt.Errorf("read temperatures: %w", err)
				}
				fmt.Fprintf(out, "Temperatures (°C): %s\n", temps)

				conn.sleepBetweenCommands()
				corr, err := conn.client.ReadTemperatureCorrection()
				if err != nil {
					return fmt.Errorf("read temperature correction: %w", err)
				}
				fmt.Fprintf(out, "Temperature correction (°C): %s\n", corr)

				conn.sleepBetweenCommands()
				rate, err := conn.client.ReadBaudRate()
				if err != nil {
					return fmt.Errorf("read baud rate: %w", err)
				}
				fmt.Fprintf(out, "Baud rate: %s\n", rate)

				conn.sleepBetweenCommands()
				report, err := conn.client.ReadAutomaticReport()
				if err != nil {
					return fmt.Errorf("read automatic report: %w", err)
				}
				fmt.Fprintf(out, "Automatic report interval: %s\n", report)
				return nil
			})
		},
	}
}

func newQueryAddressCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "query-address",
		Short: "Recover the device address of the single module on the bus",
		Long: `Query the Modbus address of a module whose address is unknown. Over RTU
the request is sent to the broadcast address, so exactly one module may be
connected to the bus segment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			open := tr.open
			if tr.openBroadcast != nil {
				ok, err := confirmOnlyOneModule(cmd.InOrStdin(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				open = tr.openBroadcast
			}
			return withConnection(open, func(conn *connection) error {
				addr, err := conn.client.ReadAddress()
				if err != nil {
					return fmt.Errorf("query device address: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Device address: %s\n", addr)
				return nil
			})
		},
	}
}

func newSetCorrectionCmd(tr transport) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-correction <channel> <celsius>",
		Short: "Set the temperature correction offset of one channel",
		Long: `Write a calibration offset for a single channel (0-7). The offset is added
to the raw reading by the module itself; 0.0 clears a previous correction.
Example: r4dcb08 rtu set-correction 2 -1.5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := parseChannel(args[0])
			if err != nil {
				return err
			}
			value, err := parseTemperature(args[1])
			if err != nil {
				return err
			}
			return withConnection(tr.open, func(conn *connection) error {
				if err := conn.client.SetTemperatureCorrection(ch, value); err != nil {
					return fmt.Errorf("set temperature correction: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Channel %s correction set to %s °C.\n", ch, value)
				return nil
			})
		},
	}
	// Stop flag parsing at the first positional so a negative offset like
	// "-1.5" is an argument, not a shorthand flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newSetBaudRateCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "set-baud-rate <rate>",
		Short: "Set the RS485 baud rate (1200, 2400, 4800, 9600, 19200)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := parseBaudRate(args[0])
			if err != nil {
				return err
			}
			return withConnection(tr.open, func(conn *connection) error {
				if err := conn.client.SetBaudRate(rate); err != nil {
					return fmt.Errorf("set baud rate: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Baud rate set to %s. Power-cycle the module to apply it.\n", rate)
				return nil
			})
		},
	}
}

func newSetAddressCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "set-address <address>",
		Short: "Set the Modbus device address (1-247)",
		Long: `Assign a new Modbus address to the module. The module answers follow-up
requests on the new address only, so later commands must use it.
Example: r4dcb08 rtu --address 1 set-address 0x10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}
			return withConnection(tr.open, func(conn *connection) error {
				if err := conn.client.SetAddress(addr); err != nil {
					return fmt.Errorf("set device address: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Device address set to %s. Use the new address from now on.\n", addr)
				return nil
			})
		},
	}
}

func newSetAutomaticReportCmd(tr transport) *cobra.Command {
	return &cobra.Command{
		Use:   "set-automatic-report <interval>",
		Short: "Set the automatic report interval (0 disables, max 255s)",
		Long: `Configure the unsolicited temperature report period. Accepts seconds
(0-255) or a duration such as "30s" or "2m". Zero switches the module back
to query mode.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := parseAutomaticReport(args[0])
			if err != nil {
				return err
			}
			return withConnection(tr.open, func(conn *connection) error {
				if err := conn.client.SetAutomaticReport(report); err != nil {
					return fmt.Errorf("set automatic report: %w", err)
				}
				if report.IsDisabled() {
					fmt.Fprintln(cmd.OutOrStdout(), "Automatic reporting disabled.")
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Automatic report interval set to %s.\n", report)
				return nil
			})
		},
	}
}

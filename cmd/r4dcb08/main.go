// cmd/r4dcb08/main.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagTimeout time.Duration
	flagDelay   time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "r4dcb08",
		Short: "CLI for R4DCB08 8-channel temperature modules",
		Long: `r4dcb08 talks to R4DCB08 8-channel temperature acquisition modules over
Modbus RTU (serial) or Modbus TCP: read temperatures, calibrate channels,
change bus settings, run a polling daemon, or scan a serial bus.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 200*time.Millisecond,
		"Modbus I/O timeout for read/write operations")
	rootCmd.PersistentFlags().DurationVar(&flagDelay, "delay", 50*time.Millisecond,
		"minimum delay between consecutive Modbus commands to the same device")

	rootCmd.AddCommand(newTCPCmd())
	rootCmd.AddCommand(newRTUCmd())
	rootCmd.AddCommand(newRTUScanCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

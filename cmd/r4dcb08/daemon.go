// cmd/r4dcb08/daemon.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/tamzrod/r4dcb08/internal/config"
	"github.com/tamzrod/r4dcb08/internal/daemon"
)

func newDaemonCmd(tr transport) *cobra.Command {
	var (
		pollInterval  time.Duration
		metricsListen string
	)

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Poll the module continuously and publish the readings",
	}

	cmd.PersistentFlags().DurationVar(&pollInterval, "poll-interval", 2*time.Second,
		"time between poll cycles")
	cmd.PersistentFlags().StringVar(&metricsListen, "metrics-listen", "",
		"listen address for prometheus metrics, e.g. \":9102\" (empty = disabled)")

	console := &cobra.Command{
		Use:   "console",
		Short: "Print each poll cycle to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := daemon.NewConsoleSink(cmd.OutOrStdout())
			return runDaemon(tr, pollInterval, metricsListen, sink)
		},
	}

	var configFile string
	mqttCmd := &cobra.Command{
		Use:   "mqtt",
		Short: "Publish each poll cycle to an MQTT broker",
		Long: `Publish every channel reading to "<topic>/ch<N>" on the configured broker.
Broker, credentials and topic come from the YAML config file; MQTT_BROKER,
MQTT_USERNAME and MQTT_PASSWORD in the environment (or a .env file) override
it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if metricsListen == "" {
				metricsListen = cfg.Metrics.Listen
			}

			sink, err := daemon.NewMQTTSink(cfg.MQTT)
			if err != nil {
				return err
			}
			return runDaemon(tr, pollInterval, metricsListen, sink)
		},
	}
	mqttCmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultConfigFile,
		"path to the YAML config file")

	cmd.AddCommand(console, mqttCmd)
	return cmd
}

// runDaemon opens the transport, wires metrics if requested and polls until
// SIGINT or SIGTERM.
func runDaemon(tr transport, pollInterval time.Duration, metricsListen string, sink daemon.Sink) error {
	conn, err := tr.open()
	if err != nil {
		return err
	}
	defer conn.close()
	defer sink.Close()

	// The transport's inter-command delay is the floor for the poll rate.
	interval := pollInterval
	if interval < conn.delay {
		interval = conn.delay
	}

	var metrics *daemon.Metrics
	if metricsListen != "" {
		registry := prometheus.NewRegistry()
		metrics = daemon.NewMetrics(registry)
		go serveMetrics(metricsListen, registry)
	}

	d, err := daemon.New(conn.client, interval, metrics, sink)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("polling every %s, stop with ctrl-c", interval)
	if err := d.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	log.Print("shutting down")
	return nil
}

func serveMetrics(listen string, registry *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Printf("metrics on http://%s/metrics", listen)
	if err := http.ListenAndServe(listen, mux); err != nil {
		log.Printf("metrics server: %v", err)
	}
}

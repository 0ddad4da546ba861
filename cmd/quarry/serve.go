package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/quarryos/quarry/pkg/log"
	"github.com/quarryos/quarry/pkg/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the metrics and health endpoints",
	Long: `Hold the configuration store open and serve the Prometheus metrics
and health endpoints until interrupted. Object-count gauges are sampled
from the store on a fixed interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		db, engine, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer engine.Close()

		metrics.SetVersion(Version)

		collector := metrics.NewCollector(db)
		collector.Start()
		defer collector.Stop()

		go serveMetrics(addr)

		logger := log.WithComponent("serve")
		logger.Info().Str("addr", addr).Msg("serving metrics")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info().Str("signal", sig.String()).Msg("shutting down")

		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":9090", "Listen address for metrics and health endpoints")
	rootCmd.AddCommand(serveCmd)
}

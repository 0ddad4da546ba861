package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/quarryos/quarry/pkg/configdb"
	"github.com/quarryos/quarry/pkg/log"
	"github.com/quarryos/quarry/pkg/metrics"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quarry",
	Short: "Quarry - stable block device identities and configuration storage",
	Long: `Quarry resolves stable by-id identities for block devices and keeps
structured configuration in a hierarchical store, so a device reference
persisted today still points at the same disk after a reboot renames
/dev/sdX.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		jsonOut, _ := cmd.Flags().GetBool("log-json")
		log.Init(log.Config{
			Level:      log.Level(level),
			JSONOutput: jsonOut,
		})

		if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
			go serveMetrics(addr)
		}
	},
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Quarry version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log in JSON format")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address (empty disables)")
	rootCmd.PersistentFlags().String("data-dir", "/var/lib/quarry", "Directory holding the configuration database")

	// Add subcommands
	rootCmd.AddCommand(deviceCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(poolCmd)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("metrics server stopped", err)
	}
}

// openStore opens the configuration database under --data-dir. The caller
// closes the returned engine.
func openStore(cmd *cobra.Command) (*configdb.DB, *configdb.BoltEngine, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	engine, err := configdb.NewBoltEngine(dataDir)
	if err != nil {
		metrics.RegisterComponent("configdb", false, err.Error())
		return nil, nil, fmt.Errorf("failed to open configuration store: %w", err)
	}
	metrics.RegisterComponent("configdb", true, "")

	return configdb.New(engine), engine, nil
}

// Package main implements apphost, an interactive host application for trying hooks
// against an in-memory document.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rickchristie/apphook/builtin"
	"github.com/rickchristie/apphook/config"
	"github.com/rickchristie/apphook/internal/host"
	"github.com/rickchristie/apphook/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

var (
	configPath  string
	metricsAddr string
	version     = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "apphost",
	Short: "Simulated host application for apphook hooks",
	Long: `apphost runs a host application with a single in-memory document and calls the
configured hooks around every open and save.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive host session",
	Long: `Start an interactive host session.

Examples:
  # Use ./apphook.yaml (or defaults if missing)
  apphost shell

  # Use a specific config and debug logging
  APPHOOK_LOG_LEVEL=debug apphost shell --config hooks.yaml`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "List configured hooks and available kinds",
	Args:  cobra.NoArgs,
	RunE:  runHooks,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "apphook.yaml", "config file")
	shellCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address when metrics are enabled")
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(hooksCmd)
}

// load reads the config and builds the logger and host.
func load() (*host.Setup, *zap.Logger, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	setup, err := host.FromConfig(cfg, logger, os.Stdout)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return setup, logger, nil
}

func runHooks(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s%sConfigured hooks:%s\n", colorBold, colorYellow, colorReset)
	if len(cfg.Hooks) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, h := range cfg.Hooks {
		fmt.Fprintf(w, "  %s%s%s (%s)\n", colorCyan, h.Name, colorReset, h.Kind)
	}
	fmt.Fprintf(w, "\nAvailable kinds: %s\n", strings.Join(builtin.Kinds(), ", "))
	return nil
}

// Package main provides the entry point for the create-release CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/create-release/internal/logger"
	"github.com/sgaunet/create-release/internal/security"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	configPath string
	log        *bullets.Logger = logger.NoLogger()
)

var rootCmd = &cobra.Command{
	Use:   "create-release",
	Short: "Create and publish GitHub releases",
	Long: `create-release manages the lifecycle of a GitHub release in two steps.

"create" makes a draft release for a tag, optionally replacing an existing
release and composing release notes. "publish" later turns that draft into
a published release. Inside GitHub Actions the release id is handed from
the first step to the second through the action state.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		level := logger.ResolveLevel(logLevel, cmd.Flags().Changed("log-level"), os.Getenv)
		log = logger.NewLogger(level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", logger.LevelInfo,
		"Set log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to a YAML file with default values")

	rootCmd.AddCommand(newCreateCmd(), newPublishCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", security.SanitizeError(err))
		os.Exit(1)
	}
}

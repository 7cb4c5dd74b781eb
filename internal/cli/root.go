package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/clockface/internal/factory"
)

var (
	cfg    *Config
	client *Client
	clocks backend
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "clockctl",
		Short: "Step and render 24-hour clock values",
		Long: `clockctl builds a time of day, steps it by seconds, minutes or hours
around a 24-hour dial, and renders it in military (HH:MM:SS) and
standard (HH:MM:SSAM/PM) form.

Clocks are computed in-process unless --remote is set, in which case
requests go to the clockface HTTP API at --server.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			if cfg.Remote {
				clocks = &remoteBackend{client: client}
				return nil
			}

			app, err := factory.New(factory.Config{Logger: newLogger(cmd.ErrOrStderr(), cfg.Verbose)})
			if err != nil {
				return err
			}
			clocks = &localBackend{service: app.ClockService}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: CLOCKFACE_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&cfg.Remote, "remote", cfg.Remote, "Use the HTTP API instead of computing locally (env: CLOCKFACE_REMOTE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newStepCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger logs debug records to w in verbose mode and nothing otherwise
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/rosterscan/internal/config"
)

// NewRootCmd creates the root command for rosterscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rosterscan",
		Short: "Fetch and extract pages of a roster listing",
		Long: `rosterscan fetches one page of a paginated roster listing, extracts the
records table and the pager, and prints the result as text, JSON or Markdown.

Settings are read from defaults, a .rosterscan YAML file, ROSTERSCAN_*
environment variables (or a .env file) and command line flags, in that order.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.LogFormatText, "Log format on stderr (text or json)")

	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

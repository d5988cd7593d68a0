package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/config"
)

// cfg is resolved before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "riskcheck",
	Short: "Client account risk assessment",
	Long: `riskcheck interviews you about one client account and classifies its
churn and friction risk as Low, Medium or High, with the signals that fired,
an explanation and recommended actions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		c, err := config.Load(path, cmd.Flags())
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command, cancelling on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/riskcheck/config.yaml or ./riskcheck.yaml)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.String("log-format", "console", "Log format: console or json")
	pf.String("log-file", "", "Write logs to this file (the TUI logs nowhere without it)")

	rootCmd.Flags().Bool("skip-welcome", false, "Start directly on the first question")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

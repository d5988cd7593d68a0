package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/app"
	"github.com/abhisek/riskcheck/internal/logging"
)

// runApp builds the logger and launches the TUI.
func runApp(cmd *cobra.Command) error {
	logger, err := logging.New(cfg.Log, true)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	skip, _ := cmd.Flags().GetBool("skip-welcome")
	return app.Run(cmd.Context(), app.Options{
		Logger:      logger,
		SkipWelcome: skip,
	})
}

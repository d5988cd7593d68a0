package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/chat"
	"github.com/abhisek/riskcheck/internal/logging"
	"github.com/abhisek/riskcheck/internal/report"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run the interview line by line on stdin/stdout",
	Long: `Ask the interview questions one per line without the full-screen UI.
Useful over plain pipes and in scripts. Type "reset" at any time to start over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := report.ParseFormat(cfg.Output.Format)
		if err != nil {
			return err
		}
		logger, err := logging.New(cfg.Log, false)
		if err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		return chat.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), chat.Options{
			Format: format,
			Logger: logger,
		})
	},
}

func init() {
	interviewCmd.Flags().String("format", "text", "Result format: text or json")
}

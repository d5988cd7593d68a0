package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskcheck/internal/risk"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the risk rules and how tiers are assigned",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-4s  %-8s  %s\n", "Code", "Severity", "Signal")
		fmt.Fprintln(out, strings.Repeat("─", 72))
		for _, r := range risk.Rules() {
			fmt.Fprintf(out, "%-4s  %-8s  %s\n", r.Code(), r.Severity(), r.Text())
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "High:   2+ critical, or 1 critical and 2+ warnings")
		fmt.Fprintln(out, "Medium: 1 critical, or 2+ warnings")
		fmt.Fprintln(out, "Low:    anything else")
	},
}

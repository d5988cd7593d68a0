package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/riskcheck/internal/logging"
	"github.com/abhisek/riskcheck/internal/questionnaire"
	"github.com/abhisek/riskcheck/internal/report"
	"github.com/abhisek/riskcheck/internal/risk"
)

var assessCmd = &cobra.Command{
	Use:   "assess [answers.json|-]",
	Short: "Evaluate a JSON answer document",
	Long: `Read a complete answer document (one key per interview field) from a
file, or from stdin when the argument is "-" or omitted, and print the
assessment. Answers may be typed values or the raw text an operator would type.
YAML documents are read when the file ends in .yaml/.yml or --input yaml is set.`,
	Args: cobra.MaximumNArgs(1),
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

		src := "-"
		if len(args) == 1 {
			src = args[0]
		}
		input, _ := cmd.Flags().GetString("input")
		rec, err := readRecord(cmd.InOrStdin(), src, input)
		if err != nil {
			var recErr *questionnaire.RecordError
			if errors.As(err, &recErr) {
				logger.Warn("answer document rejected", zap.Strings("fields", keyNames(recErr.Keys)))
			}
			return err
		}

		res := risk.Evaluate(rec)
		logger.Info("evaluation complete",
			zap.String("source", src),
			zap.String("tier", res.Tier.String()),
			zap.Strings("signals", res.Codes()))

		return report.Write(cmd.OutOrStdout(), format, res)
	},
}

func init() {
	assessCmd.Flags().String("format", "text", "Result format: text or json")
	assessCmd.Flags().String("input", "auto", "Answer document format: auto, json or yaml")
}

func readRecord(stdin io.Reader, src, input string) (questionnaire.Record, error) {
	load, err := loaderFor(src, input)
	if err != nil {
		return nil, err
	}
	if src == "-" {
		return load(stdin)
	}
	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()
	return load(f)
}

func loaderFor(src, input string) (func(io.Reader) (questionnaire.Record, error), error) {
	switch strings.ToLower(input) {
	case "json":
		return questionnaire.LoadRecord, nil
	case "yaml", "yml":
		return questionnaire.LoadRecordYAML, nil
	case "auto", "":
		switch strings.ToLower(filepath.Ext(src)) {
		case ".yaml", ".yml":
			return questionnaire.LoadRecordYAML, nil
		}
		return questionnaire.LoadRecord, nil
	default:
		return nil, fmt.Errorf("invalid input format %q: must be auto, json or yaml", input)
	}
}

func keyNames(keys []questionnaire.Key) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

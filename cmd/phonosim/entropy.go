package main

import (
	"encoding/json"
	"fmt"

	"github.com/example/go-phonosim/internal/corpus"
	"github.com/example/go-phonosim/internal/dict"
	"github.com/example/go-phonosim/internal/entropy"
	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/spf13/cobra"
)

func newEntropyCmd() *cobra.Command {
	var top int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "entropy",
		Short: "Analyze bit-width utilization over a pronunciation dictionary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			svc, err := phonosim.FromConfig(cfg)
			if err != nil {
				return err
			}

			fetcher := dict.NewFetcher(cfg.Dict.CacheDir, dict.WithBaseURL(cfg.Dict.BaseURL))
			d, err := fetcher.Load(cmd.Context(), cfg.Language, svc.Schema().Version())
			if err != nil {
				return err
			}

			runner := corpus.NewRunner(svc,
				corpus.WithWorkers(cfg.Analysis.Workers),
				corpus.WithTopPatterns(top),
			)
			analyzer, rep, err := runner.Run(cmd.Context(), d)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}

			_, _ = fmt.Fprintf(out, "language: %s  analyzed: %d  skipped: %d\n\n",
				cfg.Language, rep.Analyzed, rep.Skipped)
			_, _ = fmt.Fprint(out, entropy.FormatReport(rep.Metrics, analyzer.Widths()))
			if top > 0 {
				printTopPatterns(cmd, rep.Top)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Show the N most frequent patterns per category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON")
	return cmd
}

func printTopPatterns(cmd *cobra.Command, top map[string][]entropy.PatternCount) {
	out := cmd.OutOrStdout()
	for _, category := range []string{"onset", "nucleus", "coda", "joint"} {
		patterns := top[category]
		if len(patterns) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(out, "\ntop %s patterns:\n", category)
		for _, p := range patterns {
			_, _ = fmt.Fprintf(out, "  %s  %d\n", p.Pattern, p.Count)
		}
	}
}

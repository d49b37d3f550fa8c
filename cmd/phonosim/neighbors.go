package main

import (
	"fmt"
	"log/slog"

	"github.com/example/go-phonosim/internal/dict"
	"github.com/example/go-phonosim/internal/distance"
	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/spf13/cobra"
)

func newNeighborsCmd() *cobra.Command {
	var maxDist uint
	var limit int

	cmd := &cobra.Command{
		Use:   "neighbors <ipa>",
		Short: "Find dictionary words phonetically close to a transcription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			ix := distance.NewIndex(svc)
			if skipped := ix.AddDictionary(d); skipped > 0 {
				slog.Debug("index build skipped entries", "skipped", skipped)
			}

			matches, err := ix.Nearest(args[0], maxDist)
			if err != nil {
				return err
			}
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				_, _ = fmt.Fprintf(out, "no words within distance %d\n", maxDist)
				return nil
			}
			for _, m := range matches {
				_, _ = fmt.Fprintf(out, "%d\t%s\t%s\n", m.Distance, m.Word, m.IPA)
			}
			return nil
		},
	}

	cmd.Flags().UintVar(&maxDist, "distance", 4, "Maximum Hamming distance on the folded encoding")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of matches to print (0 = all)")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/example/go-phonosim/internal/dict"
	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/spf13/cobra"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage pronunciation dictionaries",
	}
	cmd.AddCommand(newDictDownloadCmd())
	cmd.AddCommand(newDictLookupCmd())
	return cmd
}

func newDictDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download and cache the dictionary for the configured language",
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

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d words cached under %s\n",
				d.Language(), d.Len(), cfg.Dict.CacheDir)
			return nil
		},
	}
	return cmd
}

func newDictLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <word>...",
		Short: "Look up dictionary pronunciations",
		Args:  cobra.MinimumNArgs(1),
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

			out := cmd.OutOrStdout()
			for _, word := range args {
				prons, ok := d.Lookup(word)
				if !ok {
					_, _ = fmt.Fprintf(out, "%s\t(not found)\n", word)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\n", word, strings.Join(prons, ", "))
			}
			return nil
		},
	}
	return cmd
}

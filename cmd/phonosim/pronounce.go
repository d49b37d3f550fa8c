package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/example/go-phonosim/internal/config"
	"github.com/example/go-phonosim/internal/dict"
	"github.com/example/go-phonosim/internal/g2p"
	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/spf13/cobra"
)

func newPronounceCmd() *cobra.Command {
	var encode bool

	cmd := &cobra.Command{
		Use:   "pronounce <word>...",
		Short: "Resolve pronunciations, generating out-of-dictionary ones",
		Long: `Resolve pronunciations from the cached dictionary, falling back to
model-based generation for words the dictionary does not cover.
Generation requires OPENAI_API_KEY; generated results are cached in the
configured SQLite file.`,
		Args: cobra.MinimumNArgs(1),
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

			gen, closeCache, err := buildGenerator(cfg, d, svc.Schema().Version())
			if err != nil {
				return err
			}
			defer closeCache()

			out := cmd.OutOrStdout()
			for _, word := range args {
				prons, err := gen.Generate(cmd.Context(), word)
				if err != nil {
					return fmt.Errorf("pronounce %q: %w", word, err)
				}
				for _, p := range prons {
					if encode {
						enc, err := svc.EncodeWord(p.IPA, 0)
						if err != nil {
							return err
						}
						_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", word, p.IPA, enc.String())
						continue
					}
					_, _ = fmt.Fprintf(out, "%s\t%s\n", word, p.IPA)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&encode, "encode", false, "Also print the bit encoding of each pronunciation")
	return cmd
}

// buildGenerator chains dictionary lookup, the SQLite cache, and the
// model fallback. Without OPENAI_API_KEY, out-of-dictionary words fail
// with g2p.ErrNotFound instead of calling out.
func buildGenerator(cfg config.Config, d *dict.Dictionary, schemaVersion string) (g2p.Generator, func(), error) {
	noop := func() {}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Debug("OPENAI_API_KEY not set, dictionary-only pronunciation")
		return g2p.NewSourceGenerator(d, nil), noop, nil
	}

	model, err := g2p.NewOpenAIGenerator(apiKey, cfg.Language, g2p.WithModel(cfg.G2P.Model))
	if err != nil {
		return nil, noop, err
	}

	cache, err := g2p.OpenCache(cfg.G2P.CachePath)
	if err != nil {
		return nil, noop, err
	}
	cached := g2p.NewCachedGenerator(model, cache, cfg.Language, schemaVersion, slog.Default())

	return g2p.NewSourceGenerator(d, cached), func() { _ = cache.Close() }, nil
}

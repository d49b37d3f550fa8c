package main

import (
	"fmt"

	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/spf13/cobra"
)

func newEncodeCmd() *cobra.Command {
	var maxSyllables int
	var fold bool

	cmd := &cobra.Command{
		Use:   "encode <ipa>...",
		Short: "Encode IPA transcriptions as fixed-width bit strings",
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

			out := cmd.OutOrStdout()
			for _, raw := range args {
				enc, err := svc.EncodeWord(raw, maxSyllables)
				if err != nil {
					return err
				}
				if fold {
					_, _ = fmt.Fprintf(out, "%s\t%s\n", raw, svc.Fold(enc).String())
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\n", raw, enc.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxSyllables, "max-syllables", 0,
		"Syllable budget per word (0 uses the configured default)")
	cmd.Flags().BoolVar(&fold, "fold", false, "XOR-fold the encoding to a single syllable width")
	return cmd
}

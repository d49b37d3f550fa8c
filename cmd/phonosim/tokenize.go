package main

import (
	"fmt"
	"strings"

	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize <ipa>...",
		Short: "Segment IPA transcriptions into phonemes",
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
				tokens, err := svc.Tokenize(raw)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%s\t%s\n", raw, strings.Join(tokens, " "))
			}
			return nil
		},
	}
	return cmd
}

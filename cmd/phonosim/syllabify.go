package main

import (
	"encoding/json"
	"fmt"

	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/example/go-phonosim/internal/syllable"
	"github.com/spf13/cobra"
)

func newSyllabifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "syllabify <ipa>...",
		Short: "Partition IPA transcriptions into encoded syllables",
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
				sylls, err := svc.Syllabify(raw)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					if err := enc.Encode(syllablesToJSON(raw, sylls)); err != nil {
						return err
					}
					continue
				}
				_, _ = fmt.Fprintf(out, "%s\t%d syllables\n", raw, len(sylls))
				for i, s := range sylls {
					_, _ = fmt.Fprintf(out, "  %d", i+1)
					if s.Onset != nil {
						_, _ = fmt.Fprintf(out, "\tonset=%s", s.Onset.String())
					}
					_, _ = fmt.Fprintf(out, "\tnucleus=%s", s.Nucleus.String())
					if s.Coda != nil {
						_, _ = fmt.Fprintf(out, "\tcoda=%s", s.Coda.String())
					}
					_, _ = fmt.Fprintln(out)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of the tabular listing")
	return cmd
}

type syllableOut struct {
	Onset   string `json:"onset,omitempty"`
	Nucleus string `json:"nucleus"`
	Coda    string `json:"coda,omitempty"`
}

type wordOut struct {
	IPA       string        `json:"ipa"`
	Syllables []syllableOut `json:"syllables"`
}

func syllablesToJSON(raw string, sylls []syllable.Syllable) wordOut {
	w := wordOut{IPA: raw, Syllables: make([]syllableOut, 0, len(sylls))}
	for _, s := range sylls {
		o := syllableOut{Nucleus: s.Nucleus.String()}
		if s.Onset != nil {
			o.Onset = s.Onset.String()
		}
		if s.Coda != nil {
			o.Coda = s.Coda.String()
		}
		w.Syllables = append(w.Syllables, o)
	}
	return w
}

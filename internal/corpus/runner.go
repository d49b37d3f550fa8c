// Package corpus runs encoding analysis over whole pronunciation
// dictionaries.
package corpus

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/example/go-phonosim/internal/dict"
	"github.com/example/go-phonosim/internal/entropy"
	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/example/go-phonosim/internal/schema"
	"github.com/example/go-phonosim/internal/syllable"
)

// Report summarizes a corpus run.
type Report struct {
	Analyzed int64                             `json:"analyzed"`
	Skipped  int64                             `json:"skipped"`
	Metrics  entropy.Metrics                   `json:"metrics"`
	Top      map[string][]entropy.PatternCount `json:"top_patterns,omitempty"`
}

// Runner syllabifies every word of a dictionary in parallel and feeds
// the results into an entropy analyzer.
type Runner struct {
	svc     *phonosim.Service
	workers int
	topN    int
	log     *slog.Logger
}

type Option func(*Runner)

// WithWorkers sets the number of concurrent syllabification workers.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithTopPatterns includes the n most frequent patterns per category in
// the report.
func WithTopPatterns(n int) Option {
	return func(r *Runner) { r.topN = n }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

func NewRunner(svc *phonosim.Service, opts ...Option) *Runner {
	r := &Runner{
		svc:     svc,
		workers: 4,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run analyzes every pronunciation in the dictionary. Words that fail
// to tokenize or syllabify are counted as skipped, never abort the run.
// The returned analyzer holds the raw pattern counters for callers that
// want more than the report.
func (r *Runner) Run(ctx context.Context, d *dict.Dictionary) (*entropy.Analyzer, Report, error) {
	sch := r.svc.Schema()
	analyzer := entropy.NewAnalyzer(sch.Width(schema.Consonant), sch.Width(schema.Vowel))

	var analyzed, skipped atomic.Int64

	results := make(chan []syllable.Syllable, r.workers*2)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for sylls := range results {
			analyzer.AddWord(sylls, 1)
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, word := range d.Words() {
		prons, _ := d.Lookup(word)
		word := word
		for _, pron := range prons {
			pron := pron
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				sylls, err := r.svc.Syllabify(pron)
				if err != nil {
					skipped.Add(1)
					r.log.Warn("skipping pronunciation", "word", word, "ipa", pron, "error", err)
					return nil
				}
				analyzed.Add(1)
				select {
				case results <- sylls:
				case <-ctx.Done():
					return ctx.Err()
				}
				return nil
			})
		}
	}

	err := g.Wait()
	close(results)
	<-done
	if err != nil {
		return nil, Report{}, err
	}

	rep := Report{
		Analyzed: analyzed.Load(),
		Skipped:  skipped.Load(),
		Metrics:  analyzer.Metrics(),
	}
	if r.topN > 0 {
		rep.Top = analyzer.TopPatterns(r.topN)
	}
	return analyzer, rep, nil
}

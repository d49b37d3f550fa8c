package dict

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultBaseURL serves the CharsiuG2P pronunciation dictionaries.
const DefaultBaseURL = "https://raw.githubusercontent.com/lingjzhu/CharsiuG2P/main/dicts"

// Fetcher downloads pronunciation dictionaries and caches them on disk.
// Cache files are keyed by language code and schema version, so a
// schema change never reuses a stale file.
type Fetcher struct {
	baseURL  string
	cacheDir string
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	log      *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithBaseURL overrides the download base URL.
func WithBaseURL(u string) FetcherOption {
	return func(f *Fetcher) { f.baseURL = u }
}

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *Fetcher) { f.client = c }
}

// WithLogger sets the logger for download progress.
func WithLogger(l *slog.Logger) FetcherOption {
	return func(f *Fetcher) { f.log = l }
}

func NewFetcher(cacheDir string, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		baseURL:  DefaultBaseURL,
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "dict-fetch",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
	})
	return f
}

// Load returns the dictionary for lang, downloading it on first use.
func (f *Fetcher) Load(ctx context.Context, lang, schemaVersion string) (*Dictionary, error) {
	path := f.cachePath(lang, schemaVersion)

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := f.download(ctx, lang, path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat dictionary cache: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary cache: %w", err)
	}
	defer func() { _ = file.Close() }()

	d, err := Parse(lang, file)
	if err != nil {
		return nil, err
	}
	f.log.Info("loaded pronunciation dictionary",
		slog.String("lang", lang),
		slog.Int("entries", d.Len()),
	)
	return d, nil
}

func (f *Fetcher) cachePath(lang, schemaVersion string) string {
	name := lang
	if schemaVersion != "" {
		name = lang + "_" + schemaVersion
	}
	return filepath.Join(f.cacheDir, name+".tsv")
}

func (f *Fetcher) download(ctx context.Context, lang, path string) error {
	url := f.baseURL + "/" + lang + ".tsv"

	body, err := f.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
		}
		return io.ReadAll(resp.Body)
	})
	if err != nil {
		return fmt.Errorf("download dictionary %s: %w", lang, err)
	}
	data := body.([]byte)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dictionary cache dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write dictionary cache: %w", err)
	}

	f.log.Info("downloaded pronunciation dictionary",
		slog.String("lang", lang),
		slog.Int("bytes", len(data)),
	)
	return nil
}

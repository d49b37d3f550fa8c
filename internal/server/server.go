// Package server exposes tokenization, syllabification, and encoding
// over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/example/go-phonosim/internal/config"
	"github.com/example/go-phonosim/internal/entropy"
	"github.com/example/go-phonosim/internal/phoneme"
	"github.com/example/go-phonosim/internal/phonosim"
	"github.com/example/go-phonosim/internal/schema"
	"github.com/example/go-phonosim/internal/syllable"
)

// ParseLogLevel converts a case-insensitive level string to slog.Level.
// An empty string returns slog.LevelInfo. Unknown strings return an error.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
}

// ---------------------------------------------------------------------------
// Functional options
// ---------------------------------------------------------------------------

type options struct {
	maxBodyBytes   int64
	requestTimeout time.Duration
	logger         *slog.Logger
}

func defaultOptions() options {
	return options{
		maxBodyBytes:   1 << 16,
		requestTimeout: 30 * time.Second,
		logger:         slog.Default(),
	}
}

// Option configures the HTTP handler.
type Option func(*options)

// WithMaxBodyBytes sets the maximum allowed request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(o *options) { o.maxBodyBytes = n }
}

// WithRequestTimeout sets the per-request processing deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) { o.requestTimeout = d }
}

// WithLogger sets the slog.Logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// ---------------------------------------------------------------------------
// handler
// ---------------------------------------------------------------------------

// handler holds the dependencies needed to serve HTTP requests.
type handler struct {
	svc  *phonosim.Service
	opts options
	log  *slog.Logger
}

// NewHandler returns an http.Handler that serves /health and the /v1
// encoding endpoints.
func NewHandler(svc *phonosim.Service, optFns ...Option) http.Handler {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	h := &handler{
		svc:  svc,
		opts: opts,
		log:  opts.logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.handleHealth)
	mux.HandleFunc("/v1/tokenize", h.handleTokenize)
	mux.HandleFunc("/v1/syllabify", h.handleSyllabify)
	mux.HandleFunc("/v1/encode", h.handleEncode)
	mux.HandleFunc("/v1/entropy", h.handleEntropy)
	return mux
}

func buildVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"version":  buildVersion(),
		"language": h.svc.Schema().Name(),
		"schema":   h.svc.Schema().Version(),
	})
}

type ipaRequest struct {
	IPA string `json:"ipa"`
}

// decode reads a JSON body with the configured size limit and per-field
// strictness. It writes the error response itself and reports success.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	if r.Body == nil {
		writeError(w, http.StatusBadRequest, "request body is required")
		return false
	}
	body := http.MaxBytesReader(w, r.Body, h.opts.maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("body exceeds maximum size of %d bytes", h.opts.maxBodyBytes))
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// writeProcessingError maps domain errors to HTTP status codes.
func (h *handler) writeProcessingError(w http.ResponseWriter, r *http.Request, err error) {
	var unknown *phoneme.UnknownPhonemeError
	var invariant *syllable.InvariantViolationError
	var overflow *syllable.LengthOverflowError
	switch {
	case errors.As(err, &unknown), errors.As(err, &invariant), errors.As(err, &overflow):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

func (h *handler) handleTokenize(w http.ResponseWriter, r *http.Request) {
	var req ipaRequest
	if !h.decode(w, r, &req) {
		return
	}
	tokens, err := h.svc.Tokenize(req.IPA)
	if err != nil {
		h.writeProcessingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tokens": tokens})
}

type syllableJSON struct {
	Onset   string `json:"onset,omitempty"`
	Nucleus string `json:"nucleus"`
	Coda    string `json:"coda,omitempty"`
}

func toSyllableJSON(sylls []syllable.Syllable) []syllableJSON {
	out := make([]syllableJSON, 0, len(sylls))
	for _, s := range sylls {
		js := syllableJSON{Nucleus: s.Nucleus.String()}
		if s.Onset != nil {
			js.Onset = s.Onset.String()
		}
		if s.Coda != nil {
			js.Coda = s.Coda.String()
		}
		out = append(out, js)
	}
	return out
}

func (h *handler) handleSyllabify(w http.ResponseWriter, r *http.Request) {
	var req ipaRequest
	if !h.decode(w, r, &req) {
		return
	}
	sylls, err := h.svc.Syllabify(req.IPA)
	if err != nil {
		h.writeProcessingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"syllables": toSyllableJSON(sylls)})
}

type encodeRequest struct {
	IPA          string `json:"ipa"`
	MaxSyllables int    `json:"max_syllables"`
}

func (h *handler) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if !h.decode(w, r, &req) {
		return
	}
	enc, err := h.svc.EncodeWord(req.IPA, req.MaxSyllables)
	if err != nil {
		h.writeProcessingError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"encoding": enc.String(),
		"folded":   h.svc.Fold(enc).String(),
		"width":    enc.Width(),
	})
}

type entropyRequest struct {
	Words []struct {
		IPA       string `json:"ipa"`
		Frequency int64  `json:"frequency"`
	} `json:"words"`
}

func (h *handler) handleEntropy(w http.ResponseWriter, r *http.Request) {
	var req entropyRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Words) == 0 {
		writeError(w, http.StatusBadRequest, "words field is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.requestTimeout)
	defer cancel()

	sch := h.svc.Schema()
	analyzer := entropy.NewAnalyzer(sch.Width(schema.Consonant), sch.Width(schema.Vowel))
	skipped := 0
	for _, word := range req.Words {
		if err := ctx.Err(); err != nil {
			writeError(w, http.StatusGatewayTimeout, "analysis timed out")
			return
		}
		sylls, err := h.svc.Syllabify(word.IPA)
		if err != nil {
			skipped++
			continue
		}
		freq := word.Frequency
		if freq <= 0 {
			freq = 1
		}
		analyzer.AddWord(sylls, freq)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metrics": analyzer.Metrics(),
		"skipped": skipped,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ---------------------------------------------------------------------------
// Server — wires handler into net/http.Server with graceful shutdown
// ---------------------------------------------------------------------------

// Server wires the HTTP handler into a net/http.Server with graceful shutdown.
type Server struct {
	cfg             config.Config
	svc             *phonosim.Service
	shutdownTimeout time.Duration
}

func New(cfg config.Config, svc *phonosim.Service) *Server {
	s := &Server{
		cfg:             cfg,
		svc:             svc,
		shutdownTimeout: 30 * time.Second,
	}
	if cfg.Server.ShutdownTimeout > 0 {
		s.shutdownTimeout = time.Duration(cfg.Server.ShutdownTimeout) * time.Second
	}
	return s
}

// WithShutdownTimeout overrides the graceful-shutdown drain period.
func (s *Server) WithShutdownTimeout(d time.Duration) *Server {
	s.shutdownTimeout = d
	return s
}

func (s *Server) Start(ctx context.Context) error {
	svc := s.svc
	if svc == nil {
		var err error
		svc, err = phonosim.FromConfig(s.cfg)
		if err != nil {
			return fmt.Errorf("initialize service: %w", err)
		}
	}

	h := NewHandler(svc,
		WithMaxBodyBytes(int64(s.cfg.Server.MaxBodyBytes)),
		WithRequestTimeout(time.Duration(s.cfg.Server.RequestTimeout)*time.Second),
	)

	httpServer := &http.Server{
		Addr:              s.cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http listen: %w", err)
	}
}

func ProbeHTTP(addr string) error {
	resp, err := http.Get("http://" + addr + "/health") //nolint:noctx
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status: %s", resp.Status)
	}
	return nil
}

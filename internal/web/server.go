package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"pathtree/internal/model"
	"pathtree/internal/status"
	"pathtree/internal/tree"
)

// maxBodyBytes caps the size of a path list accepted by /api/tree.
const maxBodyBytes = 8 << 20

const usage = `pathtree web service

POST /api/tree      body: newline-delimited paths or porcelain status lines
  ?compact=true     collapse single-child directory chains
  ?color=true       style output with ANSI sequences
  ?plain=true       treat every line as a path
  ?summary=true     append "N directories, M files" (to "text" in JSON)
  ?format=json      return the rendered fragments as JSON
GET  /api/version
`

// TreeResponse is the JSON form of a rendered tree.
type TreeResponse struct {
	Fragments []tree.Fragment `json:"fragments"`
	Summary   model.Summary   `json:"summary"`
	Text      string          `json:"text"`
}

// Server renders trees over HTTP.
type Server struct {
	logger *slog.Logger
}

func NewServer(logger *slog.Logger) *Server {
	return &Server{logger: logger.With("component", "web")}
}

// Handler returns the routes served by s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHelp)
	mux.HandleFunc("GET /api/version", s.handleVersion)
	mux.HandleFunc("POST /api/tree", s.handleTree)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return fmt.Errorf("serving on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHelp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(usage))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"version": model.Version})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var opts tree.Options
	var plain bool
	for name, dst := range map[string]*bool{
		"compact": &opts.Compact,
		"color":   &opts.Color,
		"summary": &opts.Summary,
		"plain":   &plain,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			http.Error(w, fmt.Sprintf("invalid %s: %q", name, v), http.StatusBadRequest)
			return
		}
		*dst = b
	}

	format := q.Get("format")
	if format != "" && format != "text" && format != "json" {
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
		return
	}

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	entries, err := status.NewParser(s.logger, plain).Parse(body)
	if err != nil {
		s.logger.Warn("reading request body", "err", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.logger.Debug("rendering", "entries", len(entries), "format", format)

	if format != "json" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(tree.Generate(entries, opts)))
		return
	}

	root := tree.Build(entries)
	fragments := tree.Render(root, opts.Compact)
	resp := TreeResponse{
		Fragments: fragments,
		Summary:   root.Count(),
		Text:      tree.Format(fragments, tree.NewPalette(opts.Color)),
	}
	if opts.Summary {
		resp.Text += "\n" + tree.SummaryLine(resp.Summary) + "\n"
	}
	if resp.Fragments == nil {
		resp.Fragments = []tree.Fragment{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

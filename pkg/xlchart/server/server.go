// Package server exposes repository spreadsheets and their charts over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ukaji3/xlchart-go/pkg/xlchart"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/parser"
	"github.com/ukaji3/xlchart-go/pkg/xlchart/plot"
)

// Server serves the spreadsheets of one repository directory.
type Server struct {
	dir    string
	sheet  string
	router *chi.Mux
	logger *log.Logger
}

// New creates a server for dir. defaultSheet is used when a request names
// no sheet. A nil logger discards output.
func New(dir, defaultSheet string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Server{
		dir:    dir,
		sheet:  defaultSheet,
		router: chi.NewRouter(),
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	s.router.Use(middleware.Recoverer)

	s.router.Get("/files", s.handleListFiles)
	s.router.Get("/files/{name}/chart", s.handleChart)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleListFiles returns the spreadsheet files of the repository.
func (s *Server) handleListFiles(w http.ResponseWriter, r *http.Request) {
	entries, err := parser.ListSpreadsheets(s.dir)
	if err != nil {
		s.logger.Printf("[server] list %s: %v", s.dir, err)
		http.Error(w, "Failed to list files", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []parser.FileEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		s.logger.Printf("[server] encode file list: %v", err)
	}
}

// handleChart plots the requested ranges of one file.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name != filepath.Base(name) || name == "." || name == ".." {
		http.Error(w, "Invalid file name", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()
	opts := xlchart.DefaultOptions()
	opts.Sheet = s.sheet
	if sheet := query.Get("sheet"); sheet != "" {
		opts.Sheet = sheet
	}
	opts.Selection = query["range"]
	opts.Logger = s.logger

	format := xlchart.FormatHTML
	if f := query.Get("format"); f != "" {
		parsed, ok := xlchart.ParseFormat(f)
		if !ok || parsed == xlchart.FormatXLSX {
			http.Error(w, "Unsupported format", http.StatusBadRequest)
			return
		}
		format = parsed
	}
	opts.Format = format

	switch format {
	case xlchart.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	case xlchart.FormatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	default:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}

	// Render into a buffer so failures can still change the status code.
	var buf bytes.Buffer
	opts.Output = &buf
	if _, err := xlchart.Plot(filepath.Join(s.dir, name), opts); err != nil {
		w.Header().Del("Content-Type")
		s.writeError(w, err)
		return
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Printf("[server] write chart: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Printf("[server] plot: %v", err)
	}
	http.Error(w, err.Error(), status)
}

// statusFor maps plotting errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, xlchart.ErrFileNotFound), errors.Is(err, xlchart.ErrSheetNotFound):
		return http.StatusNotFound
	case errors.Is(err, xlchart.ErrNotSpreadsheet), errors.Is(err, xlchart.ErrInvalidFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, parser.ErrInvalidReference),
		errors.Is(err, plot.ErrInvalidRange),
		errors.Is(err, xlchart.ErrEmptySelection):
		return http.StatusBadRequest
	case errors.Is(err, plot.ErrSelectionTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

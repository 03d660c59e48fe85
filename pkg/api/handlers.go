// Package api exposes the HTTP surface of the activeyear server: CSV upload,
// year summary, and the demo dataset.
package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/activeyear/server/pkg/bootstrap"
	"github.com/activeyear/server/pkg/domain/activity"
	"github.com/activeyear/server/pkg/domain/demo"
	"github.com/activeyear/server/pkg/domain/garmin"
	httputil "github.com/activeyear/server/pkg/infrastructure/http"
	"github.com/activeyear/server/pkg/infrastructure/sentry"
)

// Handler serves the API routes.
type Handler struct {
	cfg    *bootstrap.Config
	logger *slog.Logger
}

// NewHandler builds a Handler.
func NewHandler(cfg *bootstrap.Config, logger *slog.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

// Routes assembles the chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthz)
	r.Route("/api", func(r chi.Router) {
		r.Post("/ingest", h.ingest)
		r.Post("/summary", h.summary)
		r.Get("/demo", h.demo)
	})
	return r
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// ingest parses an uploaded CSV and returns the raw parse result.
func (h *Handler) ingest(w http.ResponseWriter, r *http.Request) {
	csvText, year, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	result := garmin.Parse(csvText, year)
	h.logIngest(r, "ingest", year, result)

	httputil.WriteJSON(w, statusFor(result), result)
}

// summary parses an uploaded CSV and returns the full dashboard payload.
func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	csvText, year, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	result := garmin.Parse(csvText, year)
	h.logIngest(r, "summary", year, result)

	httputil.WriteJSON(w, statusFor(result), buildSummary(result, year))
}

// demo returns the canned dashboard payload.
func (h *Handler) demo(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, SummaryResponse{
		Year:          h.cfg.TrackedYear,
		Stats:         demo.Stats(),
		Records:       demo.Records(),
		Breakdown:     demo.Breakdown(),
		WeeklyPattern: demo.WeeklyPattern(),
		Errors:        []activity.ParseError{},
	})
}

// readUpload extracts the CSV text and target year from the request. On
// failure it writes the error response itself and returns ok=false.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	year := h.cfg.TrackedYear
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			httputil.WriteError(w, http.StatusBadRequest, "invalid_year", fmt.Sprintf("year %q is not a number", v))
			return "", 0, false
		}
		year = parsed
	}

	csvText, err := readCSVBody(w, r, h.cfg.MaxUploadBytes)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, "upload_too_large",
				fmt.Sprintf("upload exceeds the %d byte limit", maxErr.Limit))
			return "", 0, false
		}
		sentry.CaptureException(err, map[string]interface{}{"path": r.URL.Path}, h.logger)
		httputil.WriteError(w, http.StatusBadRequest, "invalid_upload", "unable to read uploaded CSV")
		return "", 0, false
	}
	if csvText == "" {
		httputil.WriteError(w, http.StatusBadRequest, "empty_upload", "no CSV content in request")
		return "", 0, false
	}
	return csvText, year, true
}

// readCSVBody accepts either a multipart form with a "file" field or the raw
// CSV as the request body.
func readCSVBody(w http.ResponseWriter, r *http.Request, maxBytes int64) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", fmt.Errorf("read multipart file: %w", err)
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read multipart file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("read request body: %w", err)
	}
	return string(data), nil
}

// statusFor maps a parse result to a response status. A wrong-language abort
// means the file itself is unusable; row-level diagnostics still ride along
// with a 200 because "no data for this year" is not a malformed file.
func statusFor(result activity.ParseResult) int {
	for _, parseErr := range result.Errors {
		if parseErr.Type == activity.ErrWrongLanguage {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusOK
}

func (h *Handler) logIngest(r *http.Request, operation string, year int, result activity.ParseResult) {
	h.logger.Info("CSV ingested",
		"component", "api",
		"operation", operation,
		"ingest_id", uuid.NewString(),
		"year", year,
		"activities", len(result.Activities),
		"errors", len(result.Errors),
		"remote", r.RemoteAddr,
	)
}

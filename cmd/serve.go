package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/stream-ops/orders-cli/internal/pipeline"
	"github.com/stream-ops/orders-cli/internal/report"
	"github.com/stream-ops/orders-cli/internal/schema"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		r := chi.NewRouter()
		r.Use(middleware.RealIP)
		r.Use(requestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: strings.Split(cfg.Server.AllowOrigins, ","),
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
		}))
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(cfg.Server.RatePerSec), cfg.Server.RateBurst)))

		r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Post("/v1/normalize", handleNormalize)
		r.Post("/v1/duplicates", handleDuplicates)

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// requestID tags every request with a fresh ID for log correlation.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

// rateLimit rejects bursts beyond the configured upload rate. Uploads
// trigger full batch transforms, so the limiter is global rather than
// per-client.
func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func handleNormalize(w http.ResponseWriter, r *http.Request) {
	sources, err := readUploads(r, "files")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	table, err := pipeline.Run(r.Context(), pipeline.Options{Archiver: newArchiver()}, sources)
	if err != nil {
		zap.L().Error("normalize request failed", zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "could not process uploads"})
		return
	}

	now := time.Now()
	var buf bytes.Buffer

	if r.URL.Query().Get("grouped") == "1" {
		sink := &report.XLSXSink{W: &buf}
		if err := sink.Write(report.GroupByZone(table.Rows), cfg.Output.GroupLabel, now); err != nil {
			zap.L().Error("grouped render failed", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
			return
		}
		writeWorkbook(w, report.FileName(cfg.Output.GroupedLabel, now), buf.Bytes())
		return
	}

	if err := report.WriteNormalized(&buf, table, cfg.Output.NormalizedLabel); err != nil {
		zap.L().Error("normalized render failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}
	writeWorkbook(w, report.FileName(cfg.Output.NormalizedLabel, now), buf.Bytes())
}

func handleDuplicates(w http.ResponseWriter, r *http.Request) {
	sources, err := readUploads(r, "file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rows, sums, err := pipeline.RunDuplicates(r.Context(), pipeline.Options{Archiver: newArchiver()}, sources[0])
	if err != nil {
		if eris.Is(err, schema.ErrColumnsNotFound) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		zap.L().Error("duplicates request failed", zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "could not process upload"})
		return
	}

	if len(rows) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "no duplicates found"})
		return
	}

	var buf bytes.Buffer
	if err := report.WriteDuplicates(&buf, rows, sums); err != nil {
		zap.L().Error("duplicates render failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}
	writeWorkbook(w, report.FileName(cfg.Output.DuplicatesLabel, time.Now()), buf.Bytes())
}

// readUploads collects the multipart files under the given field into
// request-local sources.
func readUploads(r *http.Request, field string) ([]pipeline.Source, error) {
	maxBytes := cfg.Server.MaxUploadMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, eris.Wrap(err, "parse multipart form")
	}

	headers := r.MultipartForm.File[field]
	if len(headers) == 0 {
		return nil, eris.Errorf("no files uploaded under field %q", field)
	}

	sources := make([]pipeline.Source, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, eris.Wrapf(err, "open upload %s", fh.Filename)
		}
		data, err := io.ReadAll(f)
		f.Close() //nolint:errcheck
		if err != nil {
			return nil, eris.Wrapf(err, "read upload %s", fh.Filename)
		}
		name := fh.Filename
		if name == "" {
			name = "upload-" + uuid.NewString() + ".xlsx"
		}
		sources = append(sources, pipeline.Source{Name: name, Data: data})
	}
	return sources, nil
}

func writeWorkbook(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

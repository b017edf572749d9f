package handler

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"strings"
	"time"

	"medical-report-analyzer/internal/domain"

	"github.com/google/uuid"
)

// RequestLogger tags every request with an ID and logs method, path,
// status and duration once the handler returns.
func RequestLogger(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
			w.Header().Set("X-Request-ID", requestID)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(recorder, r.WithContext(ctx))

			logger.Info("Request handled",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// statusRecorder captures the response status for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// gzipMinSize is the response size below which compression is skipped;
// tiny payloads gain nothing from gzip framing.
const gzipMinSize = 1000

// GzipResponse compresses responses for clients that accept gzip.
// Responses smaller than gzipMinSize are sent uncompressed.
func GzipResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(gw, r)
		gw.finish()
	})
}

// gzipResponseWriter buffers the response until it is clear whether the
// body reaches gzipMinSize. The status line is held back too, since
// Content-Encoding cannot be added after headers are flushed.
type gzipResponseWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	gz     *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(code int) {
	w.status = code
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.gz != nil {
		return w.gz.Write(b)
	}
	w.buf.Write(b)
	if w.buf.Len() >= gzipMinSize {
		if err := w.startGzip(); err != nil {
			return 0, err
		}
	}
	return len(b), nil
}

// startGzip commits to a compressed response and drains the buffer
// through the gzip writer.
func (w *gzipResponseWriter) startGzip() error {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(w.status)
	w.gz = gzip.NewWriter(w.ResponseWriter)
	_, err := w.gz.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

// finish flushes whatever the handler produced: the gzip trailer for
// compressed responses, or the buffered bytes verbatim for small ones.
func (w *gzipResponseWriter) finish() {
	if w.gz != nil {
		_ = w.gz.Close()
		return
	}
	w.ResponseWriter.WriteHeader(w.status)
	_, _ = w.ResponseWriter.Write(w.buf.Bytes())
}

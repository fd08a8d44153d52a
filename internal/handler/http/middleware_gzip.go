package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip inflates gzip request bodies and compresses responses for clients
// that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			if err := inflateBody(r); err != nil {
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)
		defer gzipWriters.Put(zw)

		gw := &gzipResponseWriter{ResponseWriter: w, zw: zw}
		next.ServeHTTP(gw, r)

		if gw.compressing {
			_ = zw.Close()
		}
	})
}

// inflateBody swaps r.Body for a pooled gzip reader. The reader goes back to
// the pool when the server closes the body.
func inflateBody(r *http.Request) error {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	r.Body = &pooledReader{Reader: zr}
	r.Header.Del("Content-Encoding")
	r.ContentLength = -1
	return nil
}

type pooledReader struct {
	*gzip.Reader
}

func (p *pooledReader) Close() error {
	err := p.Reader.Close()
	gzipReaders.Put(p.Reader)
	return err
}

// gzipResponseWriter compresses only responses that carry a body. Redirects
// and other bodiless replies pass through untouched.
type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer

	wroteHeader bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	if bodyAllowed(status) && h.Get("Content-Encoding") == "" {
		w.compressing = true
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.compressing {
		return w.zw.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

func bodyAllowed(status int) bool {
	switch {
	case status < 200, status >= 300 && status < 400:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	default:
		return true
	}
}

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// gzipBody распаковывает тело запроса и закрывает оба потока
type gzipBody struct {
	source io.ReadCloser
	*gzip.Reader
}

func (b *gzipBody) Close() error {
	if err := b.Reader.Close(); err != nil {
		_ = b.source.Close()
		return err
	}
	return b.source.Close()
}

// DecompressRequest распаковывает тела запросов с Content-Encoding: gzip.
// Сжатие ответов выполняет chi middleware.Compress.
func DecompressRequest(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(strings.ToLower(r.Header.Get("Content-Encoding")), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			reader, err := gzip.NewReader(r.Body)
			if err != nil {
				logger.Warn("failed to decompress request body",
					zap.Error(err),
					zap.String("uri", r.RequestURI),
					zap.String("remote_addr", r.RemoteAddr),
				)
				http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
				return
			}

			body := &gzipBody{source: r.Body, Reader: reader}
			defer func() {
				if err := body.Close(); err != nil {
					logger.Warn("failed to close request body", zap.Error(err))
				}
			}()

			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1

			next.ServeHTTP(w, r)
		})
	}
}

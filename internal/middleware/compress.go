package middleware

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// Compress сжимает ответы gzip, если клиент прислал Accept-Encoding. Мелкие ответы отдаются как есть.
func Compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

package middleware

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"gocatalog/internal/pkg/kvstore"
	"gocatalog/internal/pkg/logger"
)

// RateLimiter limita a limit requisições por IP a cada janela duration.
// Se o armazenamento de contadores falhar, a requisição segue sem limite.
func RateLimiter(client kvstore.Client, limit int, duration time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.GetInt(ctx, key)
			if errors.Is(err, kvstore.ErrMiss) {
				if err := client.Set(ctx, key, 1, duration); err != nil {
					log.Warn("Falha ao iniciar contador de rate limit.", map[string]interface{}{"ip": ip, "error": err.Error()})
				}
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				log.Warn("Rate limit indisponível; requisição liberada.", map[string]interface{}{"ip": ip, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("Retry-After", strconv.Itoa(int(duration.Seconds())))
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			if _, err := client.Incr(ctx, key); err != nil {
				log.Warn("Falha ao incrementar contador de rate limit.", map[string]interface{}{"ip": ip, "error": err.Error()})
			}
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}

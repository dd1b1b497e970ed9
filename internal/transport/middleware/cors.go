package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gulzeynep/GiftCapsule-web/internal/config"
)

// CORS answers preflight requests and sets the allow-origin headers the
// static frontend needs. A "*" entry allows any origin; without credentials
// it is echoed as "*", with credentials the request origin is reflected.
func CORS(cfg config.CORSConfig) Middleware {
	var (
		origins  []string
		wildcard bool
	)
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			wildcard = true
		default:
			origins = append(origins, o)
		}
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowOrigin := func(origin string) string {
		if origin == "" {
			return ""
		}
		if wildcard {
			if cfg.AllowCredentials {
				return origin
			}
			return "*"
		}
		for _, o := range origins {
			if o == origin {
				return origin
			}
		}
		return ""
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			if allowed := allowOrigin(r.Header.Get("Origin")); allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

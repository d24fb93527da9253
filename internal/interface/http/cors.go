package http

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSOptions configures cross-origin access for the browser admin UI.
type CORSOptions struct {
	AllowedOrigins []string // exact origins, or ["*"] to allow all
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int // seconds the preflight response may be cached
}

// DevCORSOptions allows every origin; used when no origins are configured
// in a development environment.
func DevCORSOptions() CORSOptions {
	o := corsDefaults()
	o.AllowedOrigins = []string{"*"}
	return o
}

// NewCORSOptions restricts access to the given origins. An empty list
// means no cross-origin access at all.
func NewCORSOptions(origins []string) CORSOptions {
	o := corsDefaults()
	o.AllowedOrigins = origins
	return o
}

func corsDefaults() CORSOptions {
	return CORSOptions{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}
}

// CORS adds Cross-Origin Resource Sharing headers and answers preflight
// requests with 204.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			allowed := ""
			for _, o := range opts.AllowedOrigins {
				if o == "*" || o == origin {
					allowed = o
					break
				}
			}

			if allowed != "" && origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", allowed)
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				if opts.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(opts.MaxAge))
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net/http" // HTTP handler types

	"github.com/go-chi/cors" // CORS handling
)

// CORS wraps the whole engine so browser preflights are answered before gin
// routing, which declares no OPTIONS routes. The bearer token travels in the
// Authorization header, so it is both allowed and exposed.
func CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders: []string{"Authorization"},
		MaxAge:         300,
	})
}

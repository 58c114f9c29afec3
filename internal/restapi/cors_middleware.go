package restapi

import (
	"net/http"

	"github.com/go-chi/cors"
)

// applyCORSMiddleware allows browser clients on any origin to call the API.
// Credentials stay disabled, which is what permits the wildcard origin.
func applyCORSMiddleware(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: false,
	})(next)
}

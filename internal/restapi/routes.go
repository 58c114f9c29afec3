package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Router assembles the full handler chain: routes wrapped in CORS, rate
// limiting, gzip compression and request logging.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()
	router.HandlerFunc(http.MethodGet, "/", api.indexHandler)
	router.HandlerFunc(http.MethodGet, "/routes", api.routesByQueryHandler)
	router.HandlerFunc(http.MethodPost, "/routes", api.routesHandler)
	router.Handler(http.MethodGet, "/metrics", api.Metrics.Handler())

	handler := applyGzipMiddleware(router)
	handler = api.rateLimiter(handler)
	handler = applyCORSMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}

package restapi

import (
	"net/http"
	"time"

	"github.com/melendez-dev/transmetro-gtfs/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
	validate    *requestValidator
}

// NewRestAPI creates a new RestAPI instance with its rate limiter and request
// validator initialized.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
		validate:    newRequestValidator(),
	}
}

package restapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/melendez-dev/transmetro-gtfs/internal/gtfs"
	"github.com/melendez-dev/transmetro-gtfs/internal/models"
	"github.com/melendez-dev/transmetro-gtfs/internal/planner"
)

// CoordinatesParam is one lat/lng pair of the request body.
type CoordinatesParam struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// RouteRequest is the body of POST /routes.
type RouteRequest struct {
	Origin *CoordinatesParam `json:"origin" validate:"required"`
	Dest   *CoordinatesParam `json:"dest" validate:"required"`
}

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New()}
}

// fieldErrors maps a validation failure to the per-field error format shared
// with the query-parameter handler.
func (rv *requestValidator) fieldErrors(err error) map[string][]string {
	fieldErrors := make(map[string][]string)
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		fieldErrors["body"] = []string{"Invalid request body."}
		return fieldErrors
	}
	for _, fe := range invalid {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Namespace()] = append(fieldErrors[fe.Namespace()], "This field is required.")
		default:
			fieldErrors[fe.Namespace()] = append(fieldErrors[fe.Namespace()], "Invalid value for this field.")
		}
	}
	return fieldErrors
}

// routesHandler answers POST /routes: it resolves both coordinates to their
// nearest stops and returns the ranked direct routes between them.
func (api *RestAPI) routesHandler(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Metrics.QueriesTotal.WithLabelValues("invalid_request").Inc()
		api.validationErrorResponse(w, r, map[string][]string{"body": {"Request body must be valid JSON."}})
		return
	}
	if err := api.validate.validate.Struct(req); err != nil {
		api.Metrics.QueriesTotal.WithLabelValues("invalid_request").Inc()
		api.validationErrorResponse(w, r, api.validate.fieldErrors(err))
		return
	}

	api.resolveAndRespond(w, r, *req.Origin.Lat, *req.Origin.Lng, *req.Dest.Lat, *req.Dest.Lng)
}

// resolveAndRespond runs the planner and writes the response, shared by the
// JSON-body and query-parameter variants of the endpoint.
func (api *RestAPI) resolveAndRespond(w http.ResponseWriter, r *http.Request, originLat, originLng, destLat, destLng float64) {
	start := time.Now()
	result, err := planner.ResolveRoutes(api.Store, originLat, originLng, destLat, destLng)
	api.Metrics.QueryDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gtfs.ErrEmptyStore) {
			api.Metrics.QueriesTotal.WithLabelValues("empty_store").Inc()
			api.emptyStoreResponse(w, r)
			return
		}
		api.Metrics.QueriesTotal.WithLabelValues("error").Inc()
		api.serverErrorResponse(w, r, err)
		return
	}

	api.Metrics.QueriesTotal.WithLabelValues("ok").Inc()
	api.Metrics.RoutesFound.Observe(float64(result.TotalRoutesFound))
	api.sendResponse(w, r, http.StatusOK, models.NewRoutesResponse(result))
}

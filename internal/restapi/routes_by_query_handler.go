package restapi

import (
	"net/http"

	"github.com/melendez-dev/transmetro-gtfs/internal/utils"
)

// routesByQueryHandler answers GET /routes with the coordinates carried as
// query parameters, for callers that cannot send a JSON body.
func (api *RestAPI) routesByQueryHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	originLat, fieldErrors := utils.ParseFloatParam(queryParams, "from_lat", nil)
	originLng, _ := utils.ParseFloatParam(queryParams, "from_lon", fieldErrors)
	destLat, _ := utils.ParseFloatParam(queryParams, "to_lat", fieldErrors)
	destLng, _ := utils.ParseFloatParam(queryParams, "to_lon", fieldErrors)

	fieldErrors = utils.ValidateLatParam(originLat, "from_lat", fieldErrors)
	fieldErrors = utils.ValidateLonParam(originLng, "from_lon", fieldErrors)
	fieldErrors = utils.ValidateLatParam(destLat, "to_lat", fieldErrors)
	fieldErrors = utils.ValidateLonParam(destLng, "to_lon", fieldErrors)

	if len(fieldErrors) > 0 {
		api.Metrics.QueriesTotal.WithLabelValues("invalid_request").Inc()
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	api.resolveAndRespond(w, r, originLat, originLng, destLat, destLng)
}

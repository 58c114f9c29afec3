package restapi

import (
	"net/http"
)

// indexHandler answers GET / with a service banner and usage pointer.
func (api *RestAPI) indexHandler(w http.ResponseWriter, r *http.Request) {
	response := struct {
		Message string `json:"message"`
		Usage   string `json:"usage"`
	}{
		Message: "Transmetro GTFS Route Finder API",
		Usage:   "POST /routes with origin and dest coordinates, or GET /routes?from_lat=..&from_lon=..&to_lat=..&to_lon=..",
	}
	api.sendResponse(w, r, http.StatusOK, response)
}

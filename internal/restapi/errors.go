package restapi

import (
	"encoding/json"
	"net/http"

	"github.com/melendez-dev/transmetro-gtfs/internal/models"
)

// sendResponse writes a JSON response with the given status.
func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

// serverErrorResponse sends a 500 Internal Server Error with the uniform
// failure envelope. The underlying error goes to the log, not the client.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.Logger.Error("request failed", "error", err, "path", r.URL.Path)
	api.sendResponse(w, r, http.StatusInternalServerError, models.NewErrorResponse("internal server error"))
}

// emptyStoreResponse reports a query against a schedule with no stops. The
// caller cannot fix the request, but it is a precise, named condition rather
// than a generic failure.
func (api *RestAPI) emptyStoreResponse(w http.ResponseWriter, r *http.Request) {
	api.sendResponse(w, r, http.StatusUnprocessableEntity, models.NewErrorResponse("schedule contains no stops"))
}

// validationErrorResponse sends a 400 Bad Request with field-specific errors.
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		Success     bool                `json:"success"`
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		Success:     false,
		FieldErrors: fieldErrors,
	}
	api.sendResponse(w, r, http.StatusBadRequest, response)
}

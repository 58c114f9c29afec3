package models

// RoutesResponse is the transport-level envelope for a successful query.
type RoutesResponse struct {
	Success          bool             `json:"success"`
	Origin           StopSnapshot     `json:"origin"`
	Destination      StopSnapshot     `json:"destination"`
	Routes           []CandidateRoute `json:"routes"`
	TotalRoutesFound int              `json:"total_routes_found"`
}

// NewRoutesResponse shapes a RankedResult for the wire. Routes is never nil so
// the empty case serializes as [] rather than null.
func NewRoutesResponse(result RankedResult) RoutesResponse {
	routes := result.Routes
	if routes == nil {
		routes = []CandidateRoute{}
	}
	return RoutesResponse{
		Success:          true,
		Origin:           result.OriginStop,
		Destination:      result.DestinationStop,
		Routes:           routes,
		TotalRoutesFound: result.TotalRoutesFound,
	}
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	entryHandler   entryHandler
	projectHandler projectHandler
	tagHandler     tagHandler
	aiHandler      aiHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Message string `json:"message" example:"Entry not found"`
	Field   string `json:"field,omitempty" example:"content"`
}

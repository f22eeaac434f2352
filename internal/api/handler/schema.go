package handler

// messageResponse is the plain {message} envelope used by create endpoints
// and by the global error handler.
type messageResponse struct {
	Message string `json:"message"`
}

// statusResponse is the {success, message} envelope of the catalog and order
// mutation endpoints. Error carries the raw store error text when present.
type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

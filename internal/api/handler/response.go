package handler

// messageResponse is the envelope for success acknowledgements.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the envelope for all error bodies.
type errorResponse struct {
	Error string `json:"error"`
}

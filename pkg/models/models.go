// Package models defines the shared data structures of the gausscalc HTTP
// API. They are kept in a public package so external clients can reuse them
// when talking to the server.
package models

// ComputeResponse is the standardized JSON response for a compute request.
type ComputeResponse struct {
	// Op is the operation that was evaluated.
	Op string `json:"op"`
	// Args are the operands as received, in display form.
	Args []string `json:"args"`
	// Values are the results in display form. Omitted if an error occurred.
	// Most operations yield one value; root extraction may yield several.
	Values []string `json:"values,omitempty"`
	// Duration is the formatted execution time string.
	Duration string `json:"duration"`
	// Error contains the error message if the evaluation failed.
	Error string `json:"error,omitempty"`
}

// ErrorResponse is the standardized JSON response for an API error.
type ErrorResponse struct {
	// Error is the short error code or status text.
	Error string `json:"error"`
	// Message is a descriptive error message.
	Message string `json:"message,omitempty"`
}

// OperationInfo describes one operation exposed by the /operations endpoint.
type OperationInfo struct {
	// Name is the operation identifier ("add", "cmul", ...).
	Name string `json:"name"`
	// Arity is the exact number of operands the operation takes.
	Arity int `json:"arity"`
	// Summary is a one-line description.
	Summary string `json:"summary"`
}

// HealthResponse is the payload returned by the /health endpoint.
type HealthResponse struct {
	// Status is "healthy" while the server is accepting requests.
	Status string `json:"status"`
	// Timestamp is the Unix time the health check was served.
	Timestamp int64 `json:"timestamp"`
}

package server

// ComputeParseError represents a parameter parsing error with HTTP status.
type ComputeParseError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface.
func (e ComputeParseError) Error() string {
	return e.Message
}

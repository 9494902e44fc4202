package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/agbru/gausscalc/internal/service"
	"github.com/agbru/gausscalc/pkg/models"
)

// handleHealth responds to health check requests.
// It returns a 200 OK status with a JSON payload indicating the service is
// healthy.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleOperations returns the list of available operations.
// It queries the service registry and returns the operations as a JSON array.
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	ops := s.service.Operations()
	infos := make([]models.OperationInfo, len(ops))
	for i, op := range ops {
		infos[i] = models.OperationInfo{Name: op.Name, Arity: op.Arity, Summary: op.Summary}
	}

	s.writeJSONResponse(w, http.StatusOK, map[string]any{"operations": infos})
}

// handleCompute processes evaluation requests. It parses the query
// parameters 'op' (the operation name) and 'args' (the comma-separated
// operands), executes the evaluation, and returns the result in JSON format.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	op, args, err := parseComputeParams(r)
	if err != nil {
		var parseErr ComputeParseError
		if errors.As(err, &parseErr) {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	// Create a context with timeout for the evaluation
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.service.Compute(ctx, op, args)
	duration := time.Since(start)
	s.metrics.ObserveComputeDuration(op, duration.Seconds())

	if errors.Is(err, service.ErrUnknownOperation) {
		s.writeErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	resp := buildComputeResponse(op, args, result, duration, err)
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// parseComputeParams extracts and validates the evaluation parameters from
// the request.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//
// Returns:
//   - op: The operation name.
//   - args: The operand list (split on commas, whitespace trimmed).
//   - err: A ComputeParseError if validation fails, nil otherwise.
func parseComputeParams(r *http.Request) (op string, args []string, err error) {
	op = strings.ToLower(r.URL.Query().Get("op"))
	if op == "" {
		return "", nil, ComputeParseError{
			Message:    "Missing 'op' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}

	raw := r.URL.Query().Get("args")
	if strings.TrimSpace(raw) == "" {
		return "", nil, ComputeParseError{
			Message:    "Missing 'args' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}
	args = strings.Split(raw, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	return op, args, nil
}

// buildComputeResponse constructs the response struct for an evaluation.
//
// Parameters:
//   - op: The operation that was evaluated.
//   - args: The operands as received.
//   - result: The evaluation result (zero value if an error occurred).
//   - duration: The time taken for the evaluation.
//   - err: Any error that occurred during evaluation.
//
// Returns:
//   - models.ComputeResponse: The constructed response struct.
func buildComputeResponse(op string, args []string, result service.Result, duration time.Duration, err error) models.ComputeResponse {
	resp := models.ComputeResponse{
		Op:       op,
		Args:     args,
		Duration: duration.String(),
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		resp.Values = result.Values
	}

	return resp
}

// writeJSONResponse writes a JSON response with the correct content type.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse writes a standardized error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agbru/gausscalc/internal/config"
	"github.com/agbru/gausscalc/internal/logging"
	"github.com/agbru/gausscalc/pkg/models"
)

// createTestServer initializes a server instance for testing with default
// configuration and a silenced logger.
func createTestServer() *Server {
	cfg := config.AppConfig{Port: "8080"}
	return NewServer(cfg, WithLogger(logging.NewLogger(io.Discard, "test")))
}

// TestHandleCompute verifies the behavior of the evaluation endpoint.
// It tests successful evaluations, validation errors, and evaluation
// failures (which are reported in-band in the response body).
func TestHandleCompute(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		expectedStatus int
		expectedValues []string
		expectedError  string
	}{
		{
			name:           "IntegerSuccess",
			queryParams:    "?op=add&args=40,2",
			expectedStatus: http.StatusOK,
			expectedValues: []string{"42"},
		},
		{
			name:           "ComplexSuccess",
			queryParams:    "?op=cmul&args=2%2B3i,4-1i",
			expectedStatus: http.StatusOK,
			expectedValues: []string{"11+10i"},
		},
		{
			name:           "MultiValued",
			queryParams:    "?op=nthroot&args=16,2",
			expectedStatus: http.StatusOK,
			expectedValues: []string{"4", "-4"},
		},
		{
			name:           "OpIsLowercased",
			queryParams:    "?op=GCD&args=48,18",
			expectedStatus: http.StatusOK,
			expectedValues: []string{"6"},
		},
		{
			name:           "MissingOp",
			queryParams:    "?args=1,2",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing 'op' parameter",
		},
		{
			name:           "MissingArgs",
			queryParams:    "?op=add",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Missing 'args' parameter",
		},
		{
			name:           "UnknownOperation",
			queryParams:    "?op=frobnicate&args=1",
			expectedStatus: http.StatusNotFound,
			expectedError:  "unknown operation",
		},
		{
			name:           "DivisionByZeroReportedInBand",
			queryParams:    "?op=div&args=42,0",
			expectedStatus: http.StatusOK,
			expectedError:  "division",
		},
		{
			name:           "ParseFailureReportedInBand",
			queryParams:    "?op=add&args=12a,3",
			expectedStatus: http.StatusOK,
			expectedError:  "invalid decimal integer literal",
		},
	}

	srv := createTestServer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/compute"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			srv.handleCompute(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("Status = %d; want %d (body: %s)", rec.Code, tt.expectedStatus, rec.Body.String())
			}

			if tt.expectedStatus != http.StatusOK {
				if !strings.Contains(rec.Body.String(), tt.expectedError) {
					t.Errorf("Body %q does not contain %q", rec.Body.String(), tt.expectedError)
				}
				return
			}

			var resp models.ComputeResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Invalid JSON response: %v", err)
			}

			if tt.expectedError != "" {
				if !strings.Contains(resp.Error, tt.expectedError) {
					t.Errorf("Response error %q does not contain %q", resp.Error, tt.expectedError)
				}
				return
			}

			if resp.Error != "" {
				t.Fatalf("Unexpected evaluation error: %s", resp.Error)
			}
			if len(resp.Values) != len(tt.expectedValues) {
				t.Fatalf("Values = %v; want %v", resp.Values, tt.expectedValues)
			}
			for i, v := range tt.expectedValues {
				if resp.Values[i] != v {
					t.Errorf("Values[%d] = %s; want %s", i, resp.Values[i], v)
				}
			}
			if resp.Duration == "" {
				t.Error("Expected a non-empty duration")
			}
		})
	}
}

func TestHandleComputeMethodNotAllowed(t *testing.T) {
	srv := createTestServer()

	req := httptest.NewRequest(http.MethodPost, "/compute?op=add&args=1,2", nil)
	rec := httptest.NewRecorder()

	srv.handleCompute(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Status = %d; want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandleHealth(t *testing.T) {
	srv := createTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	srv.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d; want %d", rec.Code, http.StatusOK)
	}

	var resp models.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status field = %q; want healthy", resp.Status)
	}
	if resp.Timestamp == 0 {
		t.Error("Expected a non-zero timestamp")
	}
}

func TestHandleOperations(t *testing.T) {
	srv := createTestServer()

	req := httptest.NewRequest(http.MethodGet, "/operations", nil)
	rec := httptest.NewRecorder()

	srv.handleOperations(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d; want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Operations []models.OperationInfo `json:"operations"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(resp.Operations) == 0 {
		t.Fatal("Expected a non-empty operation list")
	}

	found := map[string]bool{}
	for _, op := range resp.Operations {
		found[op.Name] = true
		if op.Arity == 0 {
			t.Errorf("Operation %s has zero arity", op.Name)
		}
	}
	for _, want := range []string{"add", "cdiv", "modpow"} {
		if !found[want] {
			t.Errorf("Operation %q missing from listing", want)
		}
	}
}

func TestMiddlewareChainServesRoutes(t *testing.T) {
	srv := createTestServer()

	ts := httptest.NewServer(srv.httpServer.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/compute?op=sqrt&args=144")
	if err != nil {
		t.Fatalf("GET /compute failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status = %d; want %d", resp.StatusCode, http.StatusOK)
	}

	var computeResp models.ComputeResponse
	if err := json.NewDecoder(resp.Body).Decode(&computeResp); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(computeResp.Values) != 1 || computeResp.Values[0] != "12" {
		t.Errorf("sqrt(144) = %v; want [12]", computeResp.Values)
	}
}

func TestParseComputeParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/compute?op=Add&args=%201%20,%202", nil)
	op, args, err := parseComputeParams(req)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if op != "add" {
		t.Errorf("op = %q; want add", op)
	}
	if len(args) != 2 || args[0] != "1" || args[1] != "2" {
		t.Errorf("args = %v; want [1 2]", args)
	}
}

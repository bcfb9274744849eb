package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"delivery-route-optimizer/internal/route"
	"delivery-route-optimizer/pkg/response"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockUseCase struct {
	optimizeFunc func(ctx context.Context, raw route.RawRequest) (route.Decision, error)
	lastInput    route.RawRequest
}

func (m *mockUseCase) Optimize(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
	m.lastInput = raw
	return m.optimizeFunc(ctx, raw)
}

func newTestRouter(uc route.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(&mockLogger{}, uc)
	r.POST("/optimize", h.Optimize)
	r.GET("/example", h.Example)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOptimize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{
			optimizeFunc: func(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
				return route.Decision{
					Route: []route.Address{
						{Address: "B", Priority: 5},
						{Address: "A", Priority: 2},
					},
					Explanation: "Highest priority first.",
					Estimate:    route.Estimate{LowerMinutes: 60, UpperMinutes: 84},
				}, nil
			},
		}
		r := newTestRouter(uc)

		w := postJSON(t, r, "/optimize", `{
			"addresses": [{"address": "A", "priority": 2}, {"address": "B", "priority": 5}],
			"weather_condition": "rain",
			"traffic_condition": "heavy"
		}`)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("expected error_code 0, got %d", resp.ErrorCode)
		}

		data, _ := resp.Data.(map[string]interface{})
		routeList, _ := data["optimized_route"].([]interface{})
		if len(routeList) != 2 || routeList[0] != "B" {
			t.Errorf("unexpected optimized_route: %v", data["optimized_route"])
		}
		if data["total_estimated_time"] != "1h00m - 1h24m" {
			t.Errorf("unexpected total_estimated_time: %v", data["total_estimated_time"])
		}

		if uc.lastInput.Weather != "rain" || uc.lastInput.Traffic != "heavy" {
			t.Errorf("conditions not passed through: %+v", uc.lastInput)
		}
	})

	t.Run("Validation Error Carries Field Detail", func(t *testing.T) {
		uc := &mockUseCase{
			optimizeFunc: func(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
				return route.Decision{}, route.NewValidationError("addresses", "at least one address is required")
			},
		}
		r := newTestRouter(uc)

		w := postJSON(t, r, "/optimize", `{"addresses": []}`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		data, _ := resp.Data.(map[string]interface{})
		if data["field"] != "addresses" {
			t.Errorf("expected field detail, got %v", resp.Data)
		}
	})

	t.Run("Internal Errors Are Opaque", func(t *testing.T) {
		uc := &mockUseCase{
			optimizeFunc: func(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
				return route.Decision{}, errors.New("provider chain exploded: api key sk-secret")
			},
		}
		r := newTestRouter(uc)

		w := postJSON(t, r, "/optimize", `{"addresses": [{"address": "A"}]}`)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("sk-secret")) {
			t.Error("internal error detail leaked to client")
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		uc := &mockUseCase{
			optimizeFunc: func(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
				t.Fatal("use case must not be called on bind failure")
				return route.Decision{}, nil
			},
		}
		r := newTestRouter(uc)

		w := postJSON(t, r, "/optimize", `{"addresses": [`)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestExample(t *testing.T) {
	uc := &mockUseCase{
		optimizeFunc: func(ctx context.Context, raw route.RawRequest) (route.Decision, error) {
			t.Fatal("example endpoint must not invoke the use case")
			return route.Decision{}, nil
		},
	}
	r := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/example", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	data, _ := resp.Data.(map[string]interface{})
	if _, ok := data["example_request"]; !ok {
		t.Error("missing example_request")
	}
	if _, ok := data["example_response"]; !ok {
		t.Error("missing example_response")
	}
}

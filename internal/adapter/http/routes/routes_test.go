package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"house_calculator/internal/adapter/http/handlers/mocks"
	"house_calculator/internal/adapter/http/middleware"
	"house_calculator/internal/app"
	"house_calculator/internal/config"
	"house_calculator/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, rps float64, burst int) (*app.App, *mocks.MockICalculationUseCase, *mocks.MockIMaterialUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	calc := mocks.NewMockICalculationUseCase(ctrl)
	mat := mocks.NewMockIMaterialUseCase(ctrl)
	return &app.App{
		Config: config.Config{
			Port:               8080,
			CORSAllowedOrigins: []string{"*"},
			RateLimitRPS:       rps,
			RateLimitBurst:     burst,
		},
		Log:          zap.NewNop(),
		Calculations: calc,
		Materials:    mat,
	}, calc, mat
}

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	a, _, _ := newTestApp(t, 0, 0)
	r := NewRouter(a)

	w := get(r, "/api/health", nil)
	if w.Code != http.StatusOK || w.Body.String() != `{"status":"ok"}` {
		t.Fatalf("unexpected health response: %d %s", w.Code, w.Body.String())
	}

	w = get(r, "/", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Welcome to House Calculator API") {
		t.Fatalf("unexpected root response: %d %s", w.Code, w.Body.String())
	}

	w = get(r, "/metrics", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Fatalf("expected prometheus exposition, got %d", w.Code)
	}
}

func TestNewRouter_CalculationsRequireIdentity(t *testing.T) {
	a, calc, _ := newTestApp(t, 0, 0)
	r := NewRouter(a)

	if w := get(r, "/api/calculations", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	calc.EXPECT().ListByUser(gomock.Any(), "u1", 0, 0).Return([]entities.Calculation{}, nil)
	if w := get(r, "/api/calculations", map[string]string{middleware.HeaderUserID: "u1"}); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_MaterialRoutes(t *testing.T) {
	a, _, mat := newTestApp(t, 0, 0)
	r := NewRouter(a)

	mat.EXPECT().ListByHouseType(gomock.Any(), entities.HouseTypeBrick).Return([]entities.Material{{ID: "m1"}}, nil)
	mat.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1"}, nil)

	if w := get(r, "/api/materials/house-type/brick", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/api/materials/m1", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_RateLimit(t *testing.T) {
	a, _, _ := newTestApp(t, 0.001, 1)
	r := NewRouter(a)

	if w := get(r, "/api/health", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := get(r, "/api/health", nil); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	// Outside /api is not limited.
	if w := get(r, "/", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

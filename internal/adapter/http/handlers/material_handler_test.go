package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"house_calculator/internal/adapter/http/handlers/mocks"
	"house_calculator/internal/adapter/http/middleware"
	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newMaterialRouter(h *MaterialHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Identity())
	g := r.Group("/api/materials")
	g.GET("", h.ListMaterials)
	g.GET("/house-type/:house_type", h.ListMaterialsByHouseType)
	g.GET("/:id", h.GetMaterial)
	g.POST("", middleware.RequireUser(), h.CreateMaterial)
	return r
}

func TestMaterialHandler_ListMaterials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		uc.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Material{{ID: "m1", Name: "Standard Brick"}}, nil)

		w := doRequest(r, http.MethodGet, "/api/materials", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		wooden := entities.HouseTypeWooden
		uc.EXPECT().List(gomock.Any(), &wooden).Return([]entities.Material{}, nil)

		w := doRequest(r, http.MethodGet, "/api/materials?house_type=wooden", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected [], got %s", w.Body.String())
		}
	})

	t.Run("bad filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		w := doRequest(r, http.MethodGet, "/api/materials?house_type=igloo", "", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_ListMaterialsByHouseType(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIMaterialUseCase(ctrl)
	r := newMaterialRouter(NewMaterialHandler(uc))

	uc.EXPECT().ListByHouseType(gomock.Any(), entities.HouseTypeBlocks).Return(nil, usecase.ErrNoMaterialsForHouseType)

	w := doRequest(r, http.MethodGet, "/api/materials/house-type/blocks", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMaterialHandler_GetMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "m404").Return(entities.Material{}, usecase.ErrMaterialNotFound)

		w := doRequest(r, http.MethodGet, "/api/materials/m404", "", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{}, errors.New("scan failed"))

		w := doRequest(r, http.MethodGet, "/api/materials/m1", "", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMaterialHandler_CreateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const payload = `{"name":"Clay Brick","type":"brick","house_type":"brick","price_per_unit":0.7,"unit":"piece"}`

	post := func(r *gin.Engine, body, role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/materials", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.HeaderUserID, "u1")
		if role != "" {
			req.Header.Set(middleware.HeaderUserRole, role)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		w := post(r, `{"type":"brick","unit":"piece"}`, middleware.RoleAdmin)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		uc.EXPECT().Create(gomock.Any(), false, gomock.Any()).Return(entities.Material{}, usecase.ErrForbidden)

		w := post(r, payload, "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		r := newMaterialRouter(NewMaterialHandler(uc))

		uc.EXPECT().Create(gomock.Any(), true, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ bool, m entities.Material) (entities.Material, error) {
				if m.HouseType == nil || *m.HouseType != entities.HouseTypeBrick || m.PricePerUnit != 0.7 {
					t.Fatalf("unexpected material: %+v", m)
				}
				m.ID = "m1"
				return m, nil
			})

		w := post(r, payload, middleware.RoleAdmin)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

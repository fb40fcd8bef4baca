package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "house_calculator/internal/adapter/http/dto/request"
	response "house_calculator/internal/adapter/http/dto/response"
	"house_calculator/internal/adapter/http/middleware"
	"house_calculator/internal/domain/entities"
	"house_calculator/internal/usecase"
	"house_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)

// MaterialHandler serves the price catalog.

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

// ListMaterials godoc
// @Summary      List catalog materials
// @Tags         materials
// @Produce      json
// @Param        house_type  query  string  false  "brick, concrete, wooden or blocks"
// @Success      200  {array}   response.MaterialResponse
// @Failure      422  {object}  pkg.HTTPError
// @Router       /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	var filter *entities.HouseType
	if raw := strings.TrimSpace(c.Query("house_type")); raw != "" {
		ht, err := entities.ParseHouseType(raw)
		if err != nil {
			writeError(c, mapMaterialError(err))
			return
		}
		filter = &ht
	}

	items, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(items))
}

// ListMaterialsByHouseType godoc
// @Summary      List materials dedicated to a house type
// @Tags         materials
// @Produce      json
// @Param        house_type  path  string  true  "brick, concrete, wooden or blocks"
// @Success      200  {array}   response.MaterialResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /materials/house-type/{house_type} [get]
func (h *MaterialHandler) ListMaterialsByHouseType(c *gin.Context) {
	ht, err := entities.ParseHouseType(c.Param("house_type"))
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}

	items, err := h.usecase.ListByHouseType(c.Request.Context(), ht)
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(items))
}

// GetMaterial godoc
// @Summary      Get a catalog material
// @Tags         materials
// @Produce      json
// @Param        id  path  string  true  "Material id"
// @Success      200  {object}  response.MaterialResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// CreateMaterial godoc
// @Summary      Add a catalog material
// @Tags         materials
// @Accept       json
// @Produce      json
// @Param        X-User-ID    header  string                   true  "Caller id"
// @Param        X-User-Role  header  string                   true  "Must be admin"
// @Param        body         body    request.MaterialRequest  true  "Material"
// @Success      201  {object}  response.MaterialResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}
	m, err := payload.ToMaterial()
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), middleware.IsAdmin(c), m)
	if err != nil {
		writeError(c, mapMaterialError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterial(created))
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not authorized to create materials", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidMaterial), errors.Is(err, usecase.ErrInvalidMaterialID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedHouseType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_HOUSE_TYPE", "Unsupported house type", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoMaterialsForHouseType):
		return pkg.NewDomainErrorSimple("MATERIALS_NOT_FOUND", "No materials found for house type", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

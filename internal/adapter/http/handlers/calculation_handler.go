package handlers

import (
	"errors"
	"net/http"

	request "house_calculator/internal/adapter/http/dto/request"
	response "house_calculator/internal/adapter/http/dto/response"
	"house_calculator/internal/adapter/http/middleware"
	"house_calculator/internal/usecase"
	"house_calculator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCalculationPayload = pkg.NewDomainErrorSimple("INVALID_CALCULATION_INPUT", "Invalid calculation payload", http.StatusBadRequest)
	errInvalidPagination         = pkg.NewDomainErrorSimple("INVALID_PAGINATION", "skip and limit must be non-negative integers", http.StatusBadRequest)
)

// CalculationHandler serves the material estimation endpoints.

type CalculationHandler struct {
	usecase usecase.ICalculationUseCase
}

func NewCalculationHandler(uc usecase.ICalculationUseCase) *CalculationHandler {
	return &CalculationHandler{usecase: uc}
}

// CreateCalculation godoc
// @Summary      Estimate and save a calculation
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                      true  "Caller id"
// @Param        body       body    request.CalculationRequest  true  "House geometry"
// @Success      201  {object}  response.CalculationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /calculations [post]
func (h *CalculationHandler) CreateCalculation(c *gin.Context) {
	var payload request.CalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculationPayload.HTTPStatus, errInvalidCalculationPayload.ToHTTPError())
		return
	}
	input, err := payload.ToInput()
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	calc, err := h.usecase.CreateCalculation(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromCalculation(calc))
}

// Calculate godoc
// @Summary      Estimate without saving
// @Tags         calculations
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string                      true  "Caller id"
// @Param        body       body    request.CalculationRequest  true  "House geometry"
// @Success      200  {object}  response.CalculationResultResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /calculations/calculate [post]
func (h *CalculationHandler) Calculate(c *gin.Context) {
	var payload request.CalculationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculationPayload.HTTPStatus, errInvalidCalculationPayload.ToHTTPError())
		return
	}
	input, err := payload.ToInput()
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), input)
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEstimationResult(result))
}

// ListCalculations godoc
// @Summary      List the caller's calculations
// @Tags         calculations
// @Produce      json
// @Param        X-User-ID  header  string  true   "Caller id"
// @Param        skip       query   int     false  "Offset"     default(0)
// @Param        limit      query   int     false  "Page size"  default(100)
// @Success      200  {array}   response.CalculationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /calculations [get]
func (h *CalculationHandler) ListCalculations(c *gin.Context) {
	var q request.ListCalculationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidPagination.HTTPStatus, errInvalidPagination.ToHTTPError())
		return
	}

	items, err := h.usecase.ListByUser(c.Request.Context(), middleware.UserID(c), q.Skip, q.Limit)
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculations(items))
}

// GetCalculation godoc
// @Summary      Get one of the caller's calculations
// @Tags         calculations
// @Produce      json
// @Param        X-User-ID  header  string  true  "Caller id"
// @Param        id         path    string  true  "Calculation id"
// @Success      200  {object}  response.CalculationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /calculations/{id} [get]
func (h *CalculationHandler) GetCalculation(c *gin.Context) {
	calc, err := h.usecase.GetByID(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		writeError(c, mapCalculationError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(calc))
}

func mapCalculationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing user identity", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidCalculationID), errors.Is(err, usecase.ErrInvalidPagination):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedHouseType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_HOUSE_TYPE", "Unsupported house type", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCalculationNotFound):
		return pkg.NewDomainErrorSimple("CALCULATION_NOT_FOUND", "Calculation not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

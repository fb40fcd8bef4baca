package routes

import (
	"house_calculator/internal/adapter/http/handlers"
	"house_calculator/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathCalculations = "/calculations"

func addCalculationRoutes(rg *gin.RouterGroup, h *handlers.CalculationHandler) {
	calculations := rg.Group(PathCalculations, middleware.RequireUser())
	{
		calculations.POST("", h.CreateCalculation)
		calculations.POST("/calculate", h.Calculate)
		calculations.GET("", h.ListCalculations)
		calculations.GET("/:id", h.GetCalculation)
	}
}

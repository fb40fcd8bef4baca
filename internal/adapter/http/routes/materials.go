package routes

import (
	"house_calculator/internal/adapter/http/handlers"
	"house_calculator/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathMaterials = "/materials"

func addMaterialRoutes(rg *gin.RouterGroup, h *handlers.MaterialHandler) {
	materials := rg.Group(PathMaterials)
	{
		// Reads are public.
		materials.GET("", h.ListMaterials)
		materials.GET("/house-type/:house_type", h.ListMaterialsByHouseType)
		materials.GET("/:id", h.GetMaterial)

		materials.POST("", middleware.RequireUser(), h.CreateMaterial)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/AndresWalter/petzone--template/controllers/admin"
	"github.com/AndresWalter/petzone--template/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires a JWT
// carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", adminController.CreateProduct(deps.Catalog))
			productAdmin.PUT("/:id", adminController.UpdateProduct(deps.Catalog))
			productAdmin.DELETE("/:id", adminController.DeleteProduct(deps.Catalog))
			productAdmin.POST("/refresh", adminController.RefreshProducts(deps.Catalog))
			productAdmin.GET("/export-excel", adminController.ExportProductsToExcel(deps.Catalog))
		}

		// ─────────── Health ───────────
		adminGroup.GET("/status", adminController.GetStatus(deps.Catalog))
	}
}

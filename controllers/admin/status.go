package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/catalog"
)

// GET /admin/status
// Surfaces the degraded-catalog state the storefront itself masks, so
// an operator can tell a live catalog from the fallback list.
func GetStatus(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := cat.Status()
		c.JSON(http.StatusOK, gin.H{
			"catalog_status": status,
			"degraded":       status == catalog.StatusDegraded,
			"loading":        cat.Loading(),
			"product_count":  len(cat.Products()),
		})
	}
}

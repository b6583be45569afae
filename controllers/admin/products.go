package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/catalog"
	"github.com/AndresWalter/petzone--template/models"
	"github.com/AndresWalter/petzone--template/validation"
)

// POST /admin/products
func CreateProduct(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := validation.Product(input); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		created, err := cat.Create(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create product: " + err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// PUT /admin/products/:id
func UpdateProduct(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var input models.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := validation.Product(input); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		updated, err := cat.Update(c.Request.Context(), id, input)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to update product: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DELETE /admin/products/:id
func DeleteProduct(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		if err := cat.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to delete product: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

// POST /admin/products/refresh
func RefreshProducts(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := cat.Refresh(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"status": status,
			"count":  len(cat.Products()),
		})
	}
}

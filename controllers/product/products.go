package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/catalog"
	"github.com/AndresWalter/petzone--template/models"
	"github.com/AndresWalter/petzone--template/pagination"
)

const defaultPerPage = 8

// GetProducts serves the storefront's product listing with the search
// filter and page math the catalog page renders from.
// Query params: search, page, per_page.
func GetProducts(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// First hit after startup loads the catalog lazily. Refresh
		// never fails; a backend outage yields the fallback list.
		if cat.Status() == catalog.StatusEmpty {
			cat.Refresh(c.Request.Context())
		}

		products := cat.Products()

		if search := c.Query("search"); search != "" {
			products = filterProducts(products, search)
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
		if err != nil || perPage < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid per_page"})
			return
		}

		totalPages := pagination.TotalPages(len(products), perPage)
		page = pagination.Clamp(page, totalPages)

		c.JSON(http.StatusOK, gin.H{
			"products":    pagination.Slice(products, page, perPage),
			"total":       len(products),
			"page":        page,
			"total_pages": totalPages,
			"pages":       pagination.Window(page, totalPages),
			"status":      cat.Status(),
		})
	}
}

// GetProductByID serves the product detail page from the cache.
func GetProductByID(cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		if cat.Status() == catalog.StatusEmpty {
			cat.Refresh(c.Request.Context())
		}

		product, ok := cat.Get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func filterProducts(products []models.Product, search string) []models.Product {
	search = strings.ToLower(search)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), search) ||
			strings.Contains(strings.ToLower(p.Description), search) {
			matched = append(matched, p)
		}
	}
	return matched
}

package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/cart"
	"github.com/AndresWalter/petzone--template/catalog"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// cartPayload is what every cart endpoint answers with: the merged
// view against the live catalog plus the derived totals.
func cartPayload(carts *cart.Manager, cat *catalog.Manager) gin.H {
	views := cart.Merge(carts.Lines(), cat.Products())
	return gin.H{
		"items": views,
		"total": cart.Total(views),
		"count": carts.Count(),
	}
}

// GET /user/cart
func GetCart(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartPayload(carts, cat))
	}
}

// POST /user/cart
func AddCartItem(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, ok := cat.Get(input.ProductID); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		carts.Add(input.ProductID)
		c.JSON(http.StatusCreated, cartPayload(carts, cat))
	}
}

// PUT /user/cart
func UpdateCartItem(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Quantity zero or below removes the line, so no minimum bound.
		carts.UpdateQuantity(input.ProductID, input.Quantity)
		c.JSON(http.StatusOK, cartPayload(carts, cat))
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Removing an absent line is a silent no-op.
		carts.Remove(c.Param("product_id"))
		c.JSON(http.StatusOK, cartPayload(carts, cat))
	}
}

// DELETE /user/cart
func ClearCart(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		carts.Clear()
		c.JSON(http.StatusOK, cartPayload(carts, cat))
	}
}

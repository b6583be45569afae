package checkoutControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AndresWalter/petzone--template/cart"
	"github.com/AndresWalter/petzone--template/catalog"
	"github.com/AndresWalter/petzone--template/models"
)

// GET /user/checkout
func GetCheckout(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := cart.Merge(carts.Lines(), cat.Products())
		if len(views) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items": views,
			"total": cart.Total(views),
		})
	}
}

// POST /user/checkout
// There is no payment step behind the confirmation; the order record
// exists so the shopper gets a number and an itemized summary. The
// cart is cleared once the order is built.
func ConfirmOrder(carts *cart.Manager, cat *catalog.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		views := cart.Merge(carts.Lines(), cat.Products())
		if len(views) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		order := models.Order{
			Number:   generateOrderNumber(),
			Items:    views,
			Total:    cart.Total(views),
			PlacedAt: time.Now(),
		}

		carts.Clear()
		c.JSON(http.StatusCreated, order)
	}
}

func generateOrderNumber() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/AndresWalter/petzone--template/controllers/cart"
	checkoutControllers "github.com/AndresWalter/petzone--template/controllers/checkout"
	productcontroller "github.com/AndresWalter/petzone--template/controllers/product"
	"github.com/AndresWalter/petzone--template/middleware"
)

// SetupStoreRoutes registers the public catalog endpoints and the
// JWT‐protected “/user/*” cart and checkout endpoints.
func SetupStoreRoutes(r *gin.Engine, deps Deps) {
	// ──────────────── Browse Products (public) ────────────────
	r.GET("/products", productcontroller.GetProducts(deps.Catalog))
	r.GET("/products/:id", productcontroller.GetProductByID(deps.Catalog))

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Carts, deps.Catalog))
			cartGroup.POST("", cartControllers.AddCartItem(deps.Carts, deps.Catalog))
			cartGroup.PUT("", cartControllers.UpdateCartItem(deps.Carts, deps.Catalog))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Carts, deps.Catalog))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts, deps.Catalog))
		}

		// ──────────────── Checkout ────────────────
		userGroup.GET("/checkout", checkoutControllers.GetCheckout(deps.Carts, deps.Catalog))
		userGroup.POST("/checkout", checkoutControllers.ConfirmOrder(deps.Carts, deps.Catalog))
	}
}

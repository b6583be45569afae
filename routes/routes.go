package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/AndresWalter/petzone--template/cart"
	"github.com/AndresWalter/petzone--template/catalog"
	"github.com/AndresWalter/petzone--template/session"
)

// Deps are the service objects built once in main and shared by every
// route group.
type Deps struct {
	Sessions *session.Manager
	Carts    *cart.Manager
	Catalog  *catalog.Manager
}

// SetupRoutes is the single entry‐point that wires up Auth, Store, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Storefront routes (browse public, cart/checkout JWT‐protected)
	SetupStoreRoutes(r, deps)

	// 3️⃣ Admin routes (JWT + admin role)
	SetupAdminRoutes(r, deps)
}

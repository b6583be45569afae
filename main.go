package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AndresWalter/petzone--template/cart"
	"github.com/AndresWalter/petzone--template/catalog"
	"github.com/AndresWalter/petzone--template/localstore"
	"github.com/AndresWalter/petzone--template/remote"
	"github.com/AndresWalter/petzone--template/routes"
	"github.com/AndresWalter/petzone--template/session"
)

func main() {
	log.Println("✅ Starting PetZone storefront API...")

	// Load environment variables
	_ = godotenv.Load()

	// Local persistent store (cart + session live here)
	store, err := localstore.Open(os.Getenv("DATABASE_URL"), os.Getenv("LOCALSTORE_PATH"))
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}

	// Remote mock-API collaborators
	client := remote.NewClient(os.Getenv("MOCKAPI_BASE_URL"))

	// Service objects, built once and passed by reference
	deps := routes.Deps{
		Sessions: session.New(client, store),
		Carts:    cart.New(store),
		Catalog:  catalog.New(client),
	}

	// Initial catalog load. Never fatal: a failed fetch serves the
	// fallback list and reports degraded.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	status := deps.Catalog.Refresh(ctx)
	cancel()
	if status == catalog.StatusDegraded {
		log.Println("⚠️ Catalog degraded: serving fallback products")
	} else {
		log.Printf("✅ Catalog loaded: %d products", len(deps.Catalog.Products()))
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

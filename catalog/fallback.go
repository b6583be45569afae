package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/AndresWalter/petzone--template/models"
)

// fallbackProducts is the fixed sample catalog served when the remote
// store is unreachable, so the storefront never renders empty.
func fallbackProducts() []models.Product {
	return []models.Product{
		{
			ID:          "fallback-1",
			Name:        "Alimento Premium para Perros 3kg",
			Price:       decimal.RequireFromString("24.99"),
			Description: "Croquetas balanceadas para perros adultos de todas las razas.",
			Image:       models.PlaceholderImage,
		},
		{
			ID:          "fallback-2",
			Name:        "Rascador para Gatos",
			Price:       decimal.RequireFromString("39.50"),
			Description: "Torre rascadora de sisal con plataforma acolchada.",
			Image:       models.PlaceholderImage,
		},
		{
			ID:          "fallback-3",
			Name:        "Correa Retráctil 5m",
			Price:       decimal.RequireFromString("12.75"),
			Description: "Correa retráctil con mango ergonómico y freno de seguridad.",
			Image:       models.PlaceholderImage,
		},
		{
			ID:          "fallback-4",
			Name:        "Pecera Kit Inicial 20L",
			Price:       decimal.RequireFromString("54.00"),
			Description: "Acuario de 20 litros con filtro, luz LED y grava decorativa.",
			Image:       models.PlaceholderImage,
		},
	}
}

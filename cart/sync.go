package cart

import (
	"github.com/shopspring/decimal"

	"github.com/AndresWalter/petzone--template/models"
)

// Merge reconciles cart lines against the live catalog. Each line
// takes the catalog's current price, name and image with the cart's
// quantity, so the charged price always reflects the latest catalog
// state rather than a snapshot taken at add-to-cart time. Lines whose
// product no longer exists in the catalog are dropped from the view.
// Order follows the cart's insertion order.
func Merge(lines []models.CartLine, catalog []models.Product) []models.CartView {
	byID := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	views := make([]models.CartView, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		views = append(views, models.CartView{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  line.Quantity,
			LineTotal: product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}
	return views
}

// Total sums the merged view's line totals.
func Total(views []models.CartView) decimal.Decimal {
	total := decimal.Zero
	for _, v := range views {
		total = total.Add(v.LineTotal)
	}
	return total
}

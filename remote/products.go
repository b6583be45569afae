package remote

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/AndresWalter/petzone--template/models"
)

// wireProduct tolerates the two field-naming variants the product
// collection has carried over time: "descripcion"/"imagen" alongside
// the canonical "description"/"image". Canonical wins when both are set.
type wireProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Descripcion string          `json:"descripcion"`
	Image       string          `json:"image"`
	Imagen      string          `json:"imagen"`
}

func (w wireProduct) normalize() models.Product {
	p := models.Product{
		ID:          w.ID,
		Name:        w.Name,
		Price:       w.Price,
		Description: w.Description,
		Image:       w.Image,
	}
	if p.Description == "" {
		p.Description = w.Descripcion
	}
	if p.Image == "" {
		p.Image = w.Imagen
	}
	if p.Image == "" {
		p.Image = models.PlaceholderImage
	}
	return p
}

// ListProducts fetches the whole product collection, normalized.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var wire []wireProduct
	if err := c.do(ctx, "GET", "/products", nil, &wire); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, w.normalize())
	}
	return products, nil
}

// CreateProduct POSTs the input and returns the server-assigned record.
func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var created wireProduct
	if err := c.do(ctx, "POST", "/products", input, &created); err != nil {
		return models.Product{}, err
	}
	return created.normalize(), nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, input models.ProductInput) (models.Product, error) {
	var updated wireProduct
	if err := c.do(ctx, "PUT", "/products/"+id, input, &updated); err != nil {
		return models.Product{}, err
	}
	return updated.normalize(), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/products/"+id, nil, nil)
}

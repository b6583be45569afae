package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AndresWalter/petzone--template/models"
)

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("abcd1"))
	assert.True(t, ValidPassword("clave99"))
	assert.False(t, ValidPassword("ab1"), "too short")
	assert.False(t, ValidPassword("abcdef"), "no digit")
	assert.False(t, ValidPassword(""))
}

func TestRegisterValid(t *testing.T) {
	errs := Register(models.RegisterInput{
		Name:            "Juan Pérez",
		Username:        "juanperez",
		Email:           "juan@mail.com",
		Password:        "clave1",
		ConfirmPassword: "clave1",
	})
	assert.Empty(t, errs)
}

func TestRegisterFieldErrors(t *testing.T) {
	errs := Register(models.RegisterInput{
		Name:            "  ",
		Username:        "ab",
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different1",
	})

	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "username must be at least 3 characters", errs["username"])
	assert.Equal(t, "invalid email format", errs["email"])
	assert.Equal(t, "password must have at least 5 characters and 1 number", errs["password"])
	assert.Equal(t, "passwords do not match", errs["confirmPassword"])
}

func TestProductValid(t *testing.T) {
	errs := Product(models.ProductInput{
		Name:        "Collar",
		Price:       decimal.RequireFromString("9.50"),
		Description: "Collar de nylon ajustable",
		Image:       "https://img/1.jpg",
	})
	assert.Empty(t, errs)
}

func TestProductFieldErrors(t *testing.T) {
	errs := Product(models.ProductInput{
		Name:        "",
		Price:       decimal.Zero,
		Description: "corto",
		Image:       " ",
	})

	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "price must be greater than 0", errs["price"])
	assert.Equal(t, "description must be at least 10 characters", errs["description"])
	assert.Equal(t, "image URL is required", errs["image"])

	errs = Product(models.ProductInput{
		Name:        "Collar",
		Price:       decimal.RequireFromString("-1"),
		Description: "Collar de nylon ajustable",
		Image:       "https://img/1.jpg",
	})
	assert.Equal(t, "price must be greater than 0", errs["price"])
}

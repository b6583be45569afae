// Package validation holds the client-side field checks the forms ran
// before dispatching anything to the remote store.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/AndresWalter/petzone--template/models"
)

// Errors maps field name to a human-readable message.
type Errors map[string]string

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidPassword requires at least 5 characters and at least one digit.
func ValidPassword(password string) bool {
	if len(password) < 5 {
		return false
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Register checks the registration form fields.
func Register(input models.RegisterInput) Errors {
	errs := Errors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	}

	if strings.TrimSpace(input.Username) == "" {
		errs["username"] = "username is required"
	} else if len(input.Username) < 3 {
		errs["username"] = "username must be at least 3 characters"
	}

	if input.Email == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(input.Email) {
		errs["email"] = "invalid email format"
	}

	if input.Password == "" {
		errs["password"] = "password is required"
	} else if !ValidPassword(input.Password) {
		errs["password"] = "password must have at least 5 characters and 1 number"
	}

	if input.ConfirmPassword == "" {
		errs["confirmPassword"] = "password confirmation is required"
	} else if input.ConfirmPassword != input.Password {
		errs["confirmPassword"] = "passwords do not match"
	}

	return errs
}

// Product checks the admin product form fields. These checks gate
// creation and edits only; records already in the remote store may
// violate them.
func Product(input models.ProductInput) Errors {
	errs := Errors{}

	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "name is required"
	}

	if input.Price.LessThanOrEqual(decimal.Zero) {
		errs["price"] = "price must be greater than 0"
	}

	description := strings.TrimSpace(input.Description)
	if description == "" {
		errs["description"] = "description is required"
	} else if len(description) < 10 {
		errs["description"] = "description must be at least 10 characters"
	}

	if strings.TrimSpace(input.Image) == "" {
		errs["image"] = "image URL is required"
	}

	return errs
}

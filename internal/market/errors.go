package market

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrCompanyNotFound = errors.New("shipping company not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrEmptyCart       = errors.New("cart is empty")
)

// CartUnavailableError means one or more cart products were sold before
// checkout completed. The cart keeps only the still-available items and no
// orders are created.
type CartUnavailableError struct {
	// Missing lists the product ids that are no longer for sale.
	Missing []string
}

func (e *CartUnavailableError) Error() string {
	return fmt.Sprintf("products no longer available: %s", strings.Join(e.Missing, ", "))
}

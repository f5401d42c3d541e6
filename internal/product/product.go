package product

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNoDetails        = errors.New("product has no category details")
	ErrNegativePrice    = errors.New("base price must not be negative")
	ErrNegativeOwners   = errors.New("number of previous owners must not be negative")
	ErrInvalidDiscount  = errors.New("seller discount must be between 0 and 1")
	ErrInvalidDimension = errors.New("handbag dimension must be positive")
)

// Kind identifies a product category.
type Kind string

const (
	KindFootwear Kind = "footwear"
	KindApparel  Kind = "apparel"
	KindHandbag  Kind = "handbag"
)

// Details carries the category-specific fields and the category's price
// correction rule. The set of implementations is closed: the unexported
// method keeps outside packages from adding categories.
type Details interface {
	Kind() Kind
	Premium() bool
	correction(p Product, now time.Time) decimal.Decimal
	validate() error
}

// Product is a listed item. It is handed around by value: carts and orders
// keep their own copies, so a published product is effectively immutable.
type Product struct {
	ID             string
	SellerID       string
	CompanyID      string
	Description    string
	Brand          string
	BasePrice      decimal.Decimal
	PreviousOwners int
	Condition      Condition
	Details        Details
}

// New reports whether the product has never changed hands.
func (p Product) New() bool { return p.PreviousOwners == 0 }

// Used reports whether the product had at least one previous owner.
func (p Product) Used() bool { return p.PreviousOwners > 0 }

// Premium reports whether the category variant is a premium one.
func (p Product) Premium() bool { return p.Details != nil && p.Details.Premium() }

// PriceCorrection returns the category multiplier for the product at now.
func (p Product) PriceCorrection(now time.Time) decimal.Decimal {
	return p.Details.correction(p, now)
}

// Price is basePrice x condition multiplier x category correction.
// Pure: no state is touched, time comes in as an argument.
func (p Product) Price(now time.Time) decimal.Decimal {
	return p.BasePrice.Mul(p.Condition.Multiplier()).Mul(p.PriceCorrection(now))
}

// Validate checks the fields a seller controls at listing time.
func (p Product) Validate() error {
	if p.Details == nil {
		return ErrNoDetails
	}
	if p.BasePrice.IsNegative() {
		return ErrNegativePrice
	}
	if p.PreviousOwners < 0 {
		return ErrNegativeOwners
	}
	if err := p.Condition.validate(); err != nil {
		return err
	}
	return p.Details.validate()
}

// yearsSince counts whole calendar years from a collection year, never
// negative even if the collection year is in the future.
func yearsSince(collectionYear int, now time.Time) int {
	years := now.Year() - collectionYear
	if years < 0 {
		return 0
	}
	return years
}

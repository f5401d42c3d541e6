package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Material is what a handbag is made of.
type Material string

const (
	MaterialCanvas       Material = "canvas"
	MaterialCotton       Material = "cotton"
	MaterialDenim        Material = "denim"
	MaterialLeather      Material = "leather"
	MaterialNylon        Material = "nylon"
	MaterialRaffia       Material = "raffia"
	MaterialStraw        Material = "straw"
	MaterialVeganLeather Material = "vegan_leather"
	MaterialVelvet       Material = "velvet"
	MaterialVinyl        Material = "vinyl"
)

var handbagFloor = decimal.RequireFromString("0.5")

// Handbag is a bag with a capacity in liters. Bigger bags discount less;
// the correction never drops below 0.5.
type Handbag struct {
	Dimension      decimal.Decimal `json:"dimension"`
	Material       Material        `json:"material"`
	CollectionYear int             `json:"collection_year"`
}

func (Handbag) Kind() Kind    { return KindHandbag }
func (Handbag) Premium() bool { return false }

func (h Handbag) correction(_ Product, _ time.Time) decimal.Decimal {
	// 1 - 1/(2*dimension), division rounded half-even at 2 places before
	// the floor check.
	div := decimal.NewFromInt(1).Div(h.Dimension.Mul(decimal.NewFromInt(2))).RoundBank(2)
	r := decimal.NewFromInt(1).Sub(div)
	if r.LessThan(handbagFloor) {
		return handbagFloor
	}
	return r
}

func (h Handbag) validate() error {
	if !h.Dimension.IsPositive() {
		return ErrInvalidDimension
	}
	return nil
}

// PremiumHandbag compounds appreciation on top of the dimension discount,
// unlike premium footwear which replaces its base rule.
type PremiumHandbag struct {
	Handbag
	Appreciation decimal.Decimal `json:"appreciation"`
}

func (PremiumHandbag) Premium() bool { return true }

func (h PremiumHandbag) correction(p Product, now time.Time) decimal.Decimal {
	years := yearsSince(h.CollectionYear, now)
	growth := decimal.NewFromInt(1).Add(h.Appreciation).Pow(decimal.NewFromInt(int64(years)))
	return h.Handbag.correction(p, now).Mul(growth)
}

func (h PremiumHandbag) validate() error {
	if err := h.Handbag.validate(); err != nil {
		return err
	}
	if h.Appreciation.IsNegative() {
		return ErrInvalidDiscount
	}
	return nil
}

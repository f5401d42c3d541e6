package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// LargeSizeThreshold is the size above which footwear sells at a discount
// even when new.
const LargeSizeThreshold = 45

// Footwear covers sneakers and the like. The seller picks the discount that
// applies once the pair is used or oversized.
type Footwear struct {
	Size           int             `json:"size"`
	Color          string          `json:"color"`
	Laces          bool            `json:"laces"`
	CollectionYear int             `json:"collection_year"`
	Discount       decimal.Decimal `json:"discount"`
}

func (Footwear) Kind() Kind    { return KindFootwear }
func (Footwear) Premium() bool { return false }

func (f Footwear) correction(p Product, _ time.Time) decimal.Decimal {
	if p.Used() || f.Size > LargeSizeThreshold {
		return decimal.NewFromInt(1).Sub(f.Discount)
	}
	return decimal.NewFromInt(1)
}

func (f Footwear) validate() error {
	if f.Discount.IsNegative() || f.Discount.GreaterThan(decimal.NewFromInt(1)) {
		return ErrInvalidDiscount
	}
	return nil
}

// PremiumFootwear appreciates instead of depreciating: the discount rule is
// replaced outright by compounding appreciation since the collection year.
type PremiumFootwear struct {
	Footwear
	Appreciation decimal.Decimal `json:"appreciation"`
}

func (PremiumFootwear) Premium() bool { return true }

func (f PremiumFootwear) correction(_ Product, now time.Time) decimal.Decimal {
	years := yearsSince(f.CollectionYear, now)
	return decimal.NewFromInt(1).Add(f.Appreciation).Pow(decimal.NewFromInt(int64(years)))
}

func (f PremiumFootwear) validate() error {
	if f.Appreciation.IsNegative() {
		return ErrInvalidDiscount
	}
	return nil
}

package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pattern is the print on an apparel item. Patterned pieces lose half their
// value once worn; plain ones hold it.
type Pattern string

const (
	PatternPlain     Pattern = "plain"
	PatternStripes   Pattern = "stripes"
	PatternPalmTrees Pattern = "palm_trees"
)

func (pt Pattern) penalty() decimal.Decimal {
	switch pt {
	case PatternStripes, PatternPalmTrees:
		return decimal.RequireFromString("0.5")
	default:
		return decimal.NewFromInt(1)
	}
}

// ApparelSize is a clothing size label.
type ApparelSize string

const (
	SizeXS ApparelSize = "XS"
	SizeS  ApparelSize = "S"
	SizeM  ApparelSize = "M"
	SizeL  ApparelSize = "L"
	SizeXL ApparelSize = "XL"
)

// Apparel covers t-shirts and similar garments.
type Apparel struct {
	Size    ApparelSize `json:"size"`
	Pattern Pattern     `json:"pattern"`
}

func (Apparel) Kind() Kind    { return KindApparel }
func (Apparel) Premium() bool { return false }

func (a Apparel) correction(p Product, _ time.Time) decimal.Decimal {
	if p.Used() {
		return a.Pattern.penalty()
	}
	return decimal.NewFromInt(1)
}

func (Apparel) validate() error { return nil }

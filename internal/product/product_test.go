package product

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func footwearItem(owners, size int, discount string) Product {
	return Product{
		ID:             "p000000",
		SellerID:       "u000000",
		CompanyID:      "c000000",
		Description:    "running shoes",
		Brand:          "Acme",
		BasePrice:      dec("10"),
		PreviousOwners: owners,
		Condition:      ConditionPristine,
		Details: Footwear{
			Size:           size,
			Color:          "#ffffff",
			Laces:          true,
			CollectionYear: 2020,
			Discount:       dec(discount),
		},
	}
}

func TestFootwearNewSmallSizeNoDiscount(t *testing.T) {
	p := footwearItem(0, 38, "0.2")
	assert.True(t, p.Price(now).Equal(dec("10")), "got %s", p.Price(now))
}

func TestFootwearUsedGetsDiscount(t *testing.T) {
	p := footwearItem(1, 38, "0.2")
	assert.True(t, p.Price(now).Equal(dec("8")), "got %s", p.Price(now))
}

func TestFootwearOversizedGetsDiscountEvenWhenNew(t *testing.T) {
	p := footwearItem(0, 46, "0.2")
	assert.True(t, p.Price(now).Equal(dec("8")), "got %s", p.Price(now))
}

func TestFootwearAtSizeThresholdNoDiscount(t *testing.T) {
	p := footwearItem(0, LargeSizeThreshold, "0.2")
	assert.True(t, p.Price(now).Equal(dec("10")))
}

func TestPremiumFootwearCompoundsAppreciation(t *testing.T) {
	p := footwearItem(1, 38, "0")
	p.Details = PremiumFootwear{
		Footwear: Footwear{
			Size:           38,
			CollectionYear: now.Year() - 4,
		},
		Appreciation: dec("0.2"),
	}
	// (1.2)^4, compounding, and the used-item discount rule is replaced.
	assert.True(t, p.PriceCorrection(now).Equal(dec("2.0736")), "got %s", p.PriceCorrection(now))
}

func TestPremiumFootwearFutureCollectionYearClampsToZeroYears(t *testing.T) {
	p := footwearItem(0, 38, "0")
	p.Details = PremiumFootwear{
		Footwear:     Footwear{Size: 38, CollectionYear: now.Year() + 3},
		Appreciation: dec("0.2"),
	}
	assert.True(t, p.PriceCorrection(now).Equal(dec("1")))
}

func TestApparelPatternPenaltyOnlyWhenUsed(t *testing.T) {
	p := Product{
		BasePrice: dec("20"),
		Condition: ConditionPristine,
		Details:   Apparel{Size: SizeM, Pattern: PatternStripes},
	}
	assert.True(t, p.Price(now).Equal(dec("20")), "new item keeps full price")

	p.PreviousOwners = 2
	assert.True(t, p.Price(now).Equal(dec("10")), "used striped shirt loses half")

	p.Details = Apparel{Size: SizeM, Pattern: PatternPlain}
	assert.True(t, p.Price(now).Equal(dec("20")), "plain pattern has no penalty")
}

func TestHandbagDimensionDiscount(t *testing.T) {
	p := Product{
		BasePrice: dec("100"),
		Condition: ConditionPristine,
		Details:   Handbag{Dimension: dec("2"), Material: MaterialLeather, CollectionYear: 2020},
	}
	assert.True(t, p.PriceCorrection(now).Equal(dec("0.75")), "got %s", p.PriceCorrection(now))
}

func TestHandbagCorrectionFloor(t *testing.T) {
	for _, dim := range []string{"0.5", "0.3", "0.1"} {
		p := Product{
			BasePrice: dec("100"),
			Details:   Handbag{Dimension: dec(dim), Material: MaterialCanvas, CollectionYear: 2020},
		}
		assert.True(t, p.PriceCorrection(now).Equal(dec("0.5")), "dimension %s clamps to 0.5", dim)
	}
}

func TestPremiumHandbagCompoundsOnTopOfDimensionDiscount(t *testing.T) {
	p := Product{
		BasePrice: dec("100"),
		Details: PremiumHandbag{
			Handbag:      Handbag{Dimension: dec("2"), Material: MaterialLeather, CollectionYear: now.Year() - 2},
			Appreciation: dec("0.1"),
		},
	}
	// 0.75 * 1.1^2
	assert.True(t, p.PriceCorrection(now).Equal(dec("0.9075")), "got %s", p.PriceCorrection(now))
}

func TestConditionMultiplierComposesWithCategoryCorrection(t *testing.T) {
	p := footwearItem(1, 38, "0.2")
	p.Condition = ConditionGood
	// 10 * 0.8 * 0.8
	assert.True(t, p.Price(now).Equal(dec("6.4")), "got %s", p.Price(now))
}

func TestValidate(t *testing.T) {
	p := footwearItem(0, 38, "0.2")
	require.NoError(t, p.Validate())

	bad := p
	bad.BasePrice = dec("-1")
	assert.ErrorIs(t, bad.Validate(), ErrNegativePrice)

	bad = p
	bad.PreviousOwners = -1
	assert.ErrorIs(t, bad.Validate(), ErrNegativeOwners)

	bad = p
	bad.Details = nil
	assert.ErrorIs(t, bad.Validate(), ErrNoDetails)

	bad = p
	bad.Details = Footwear{Size: 38, Discount: dec("1.5")}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDiscount)

	bad = p
	bad.Details = Handbag{Dimension: dec("0")}
	assert.ErrorIs(t, bad.Validate(), ErrInvalidDimension)

	bad = p
	bad.Condition = Condition(9)
	assert.ErrorIs(t, bad.Validate(), ErrInvalidCondition)
}

func TestSnapshotRoundTrip(t *testing.T) {
	items := []Product{
		footwearItem(1, 46, "0.2"),
		{
			ID:        "p000001",
			BasePrice: dec("50"),
			Condition: ConditionFair,
			Details:   Apparel{Size: SizeL, Pattern: PatternPalmTrees},
		},
		{
			ID:        "p000002",
			BasePrice: dec("200"),
			Details: PremiumHandbag{
				Handbag:      Handbag{Dimension: dec("3"), Material: MaterialVelvet, CollectionYear: 2019},
				Appreciation: dec("0.15"),
			},
		},
		{
			ID:        "p000003",
			BasePrice: dec("150"),
			Details: PremiumFootwear{
				Footwear:     Footwear{Size: 42, CollectionYear: 2021},
				Appreciation: dec("0.2"),
			},
		},
	}
	for _, p := range items {
		got, err := FromSnapshot(p.Snapshot())
		require.NoError(t, err)
		assert.Equal(t, p.Details.Kind(), got.Details.Kind())
		assert.Equal(t, p.Premium(), got.Premium())
		assert.True(t, p.Price(now).Equal(got.Price(now)), "price survives the round trip")
	}
}

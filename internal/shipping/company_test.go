package shipping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCompany() *Company {
	// small 2.5, medium 5, big 10; fee 0.1; margin 2
	return New("c000000", "SwiftShip", dec("2.5"), dec("5"), dec("10"), dec("0.1"), dec("2"))
}

func TestCostTierBoundaries(t *testing.T) {
	c := testCompany()
	// base * margin * (1+fee) * 0.9
	small := dec("4.95")
	medium := dec("9.9")
	big := dec("19.8")

	cases := []struct {
		items int
		want  decimal.Decimal
	}{
		{1, small},
		{2, medium},
		{4, medium},
		{5, big},
		{9, big},
	}
	for _, tc := range cases {
		got := c.Cost(tc.items, 0)
		assert.True(t, got.Equal(tc.want), "items=%d: got %s want %s", tc.items, got, tc.want)
	}
}

func TestPremiumSurcharge(t *testing.T) {
	c := NewPremium("c000001", "GoldCourier", dec("2.5"), dec("5"), dec("10"), dec("0.1"), dec("2"), dec("1.5"))
	got := c.Cost(2, 2)
	// medium 9.9 + 1.5*2
	assert.True(t, got.Equal(dec("12.9")), "got %s", got)

	// No premium items, no surcharge.
	assert.True(t, c.Cost(2, 0).Equal(dec("9.9")))
}

func TestStandardCompanyIgnoresPremiumCount(t *testing.T) {
	c := testCompany()
	assert.True(t, c.Cost(1, 1).Equal(dec("4.95")))
}

func TestAddOrderAccruesRevenue(t *testing.T) {
	c := testCompany()
	c.AddOrder("o000000", dec("4.95"))
	c.AddOrder("o000001", dec("9.9"))
	assert.True(t, c.Revenue().Equal(dec("14.85")), "got %s", c.Revenue())
	assert.Len(t, c.OrderIDs(), 2)
}

func TestAddOrderIsIdempotentPerID(t *testing.T) {
	c := testCompany()
	c.AddOrder("o000000", dec("4.95"))
	c.AddOrder("o000000", dec("4.95"))
	assert.True(t, c.Revenue().Equal(dec("4.95")), "double booking must not double-count")
	assert.Len(t, c.OrderIDs(), 1)
}

func TestSnapshotRoundTrip(t *testing.T) {
	c := NewPremium("c000002", "GoldCourier", dec("2.5"), dec("5"), dec("10"), dec("0.1"), dec("2"), dec("1.5"))
	c.AddOrder("o000000", dec("12.9"))

	got := FromSnapshot(c.Snapshot())
	assert.Equal(t, c.ID(), got.ID())
	assert.Equal(t, c.Name(), got.Name())
	assert.True(t, got.Premium())
	assert.True(t, got.Revenue().Equal(dec("12.9")))
	assert.True(t, got.Cost(2, 1).Equal(c.Cost(2, 1)))

	// The booked order survives, so re-adding still cannot double-count.
	got.AddOrder("o000000", dec("12.9"))
	assert.True(t, got.Revenue().Equal(dec("12.9")))
}

package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudo-init-do/vintage/internal/product"
)

var t0 = time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func item(id string, owners int, basePrice string) product.Product {
	return product.Product{
		ID:             id,
		SellerID:       "u000000",
		CompanyID:      "c000000",
		Brand:          "Acme",
		BasePrice:      dec(basePrice),
		PreviousOwners: owners,
		Condition:      product.ConditionPristine,
		Details:        product.Footwear{Size: 38, CollectionYear: 2020, Discount: dec("0")},
	}
}

func testOrder(t *testing.T) *Order {
	t.Helper()
	o, err := New("o000000", "u000001", "u000000", "c000000",
		[]product.Product{item("p000000", 0, "10"), item("p000001", 3, "20")},
		dec("4.95"), t0)
	require.NoError(t, err)
	return o
}

func TestNewComputesCostBreakdown(t *testing.T) {
	o := testOrder(t)
	assert.True(t, o.ProductsCost().Equal(dec("30")), "got %s", o.ProductsCost())
	assert.True(t, o.ShippingCost().Equal(dec("4.95")))
	// One new item (0.50) and one used item (0.25).
	assert.True(t, o.MarketplaceFees().Equal(dec("0.75")), "got %s", o.MarketplaceFees())
	assert.True(t, o.TotalCost().Equal(dec("35.70")), "got %s", o.TotalCost())
	assert.Equal(t, StatusInitialized, o.Status())
	assert.Equal(t, t0, o.CreatedAt())
}

func TestNewRejectsEmptyOrder(t *testing.T) {
	_, err := New("o000000", "b", "s", "c", nil, dec("1"), t0)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestCostsPricedAtCreationTime(t *testing.T) {
	p := item("p000000", 0, "100")
	p.Details = product.PremiumFootwear{
		Footwear:     product.Footwear{Size: 38, CollectionYear: t0.Year()},
		Appreciation: dec("0.2"),
	}
	o, err := New("o000000", "b", "s", "c", []product.Product{p}, dec("0"), t0)
	require.NoError(t, err)
	// Years later the breakdown still reflects checkout-time prices.
	assert.True(t, o.ProductsCost().Equal(dec("100")))
	assert.Equal(t, 1, o.PremiumItems())
}

func TestHappyPathTransitions(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Expedite())
	assert.Equal(t, StatusExpedited, o.Status())

	deliveredAt := t0.Add(24 * time.Hour)
	require.NoError(t, o.Deliver(deliveredAt))
	assert.Equal(t, StatusDelivered, o.Status())
	got, ok := o.DeliveredAt()
	require.True(t, ok)
	assert.Equal(t, deliveredAt, got)

	require.NoError(t, o.SetReturned(deliveredAt.Add(time.Hour)))
	assert.Equal(t, StatusReturned, o.Status())
}

func TestInvalidTransitions(t *testing.T) {
	o := testOrder(t)

	err := o.Deliver(t0)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StatusInitialized, invalid.From)
	assert.Equal(t, StatusDelivered, invalid.Attempted)

	err = o.SetReturned(t0)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StatusReturned, invalid.Attempted)

	require.NoError(t, o.Expedite())
	err = o.Expedite()
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, StatusExpedited, invalid.From)
	assert.Equal(t, StatusExpedited, invalid.Attempted)

	require.NoError(t, o.Deliver(t0))
	require.NoError(t, o.SetReturned(t0))
	// RETURNED is terminal.
	assert.Error(t, o.Expedite())
	assert.Error(t, o.Deliver(t0))
	assert.Error(t, o.SetReturned(t0))
}

func TestReturnWindowBoundary(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Expedite())
	require.NoError(t, o.Deliver(t0))

	// Exactly 48h is still inside the window.
	assert.True(t, o.Returnable(t0.Add(ReturnWindow)))
	require.NoError(t, o.SetReturned(t0.Add(ReturnWindow)))
}

func TestReturnOneSecondLate(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Expedite())
	require.NoError(t, o.Deliver(t0))

	late := t0.Add(ReturnWindow + time.Second)
	assert.False(t, o.Returnable(late))
	err := o.SetReturned(late)
	var lateErr *LateReturnError
	require.ErrorAs(t, err, &lateErr)
	assert.Equal(t, t0, lateErr.DeliveredAt)
	assert.Equal(t, StatusDelivered, o.Status(), "order stays delivered")
}

func TestSellerRevenueZeroAfterReturn(t *testing.T) {
	o := testOrder(t)
	assert.True(t, o.SellerRevenue().Equal(dec("30")))

	require.NoError(t, o.Expedite())
	require.NoError(t, o.Deliver(t0))
	require.NoError(t, o.SetReturned(t0.Add(time.Hour)))
	assert.True(t, o.SellerRevenue().IsZero())
}

func TestSnapshotRoundTrip(t *testing.T) {
	o := testOrder(t)
	require.NoError(t, o.Expedite())
	require.NoError(t, o.Deliver(t0.Add(time.Hour)))

	got, err := FromSnapshot(o.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, o.ID(), got.ID())
	assert.Equal(t, o.Status(), got.Status())
	assert.True(t, o.TotalCost().Equal(got.TotalCost()))
	wantAt, _ := o.DeliveredAt()
	gotAt, ok := got.DeliveredAt()
	require.True(t, ok)
	assert.True(t, wantAt.Equal(gotAt))
	assert.Len(t, got.Products(), 2)
}

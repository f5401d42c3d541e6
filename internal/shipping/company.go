package shipping

import (
	"github.com/shopspring/decimal"
)

// marketplaceMarkdown is the platform-wide discount negotiated with every
// carrier.
var marketplaceMarkdown = decimal.RequireFromString("0.9")

// Company is a carrier. It owns its cost schedule and books every order it
// ships, accruing the shipping cost as revenue.
type Company struct {
	id           string
	name         string
	baseSmall    decimal.Decimal
	baseMedium   decimal.Decimal
	baseBig      decimal.Decimal
	fee          decimal.Decimal
	profitMargin decimal.Decimal
	premium      bool
	premiumTax   decimal.Decimal
	revenue      decimal.Decimal
	// orders keys the book by order id so booking the same order twice
	// cannot double-count revenue.
	orders map[string]decimal.Decimal
}

// New builds a standard carrier from the marketplace's base cost schedule.
func New(id, name string, baseSmall, baseMedium, baseBig, fee, profitMargin decimal.Decimal) *Company {
	return &Company{
		id:           id,
		name:         name,
		baseSmall:    baseSmall,
		baseMedium:   baseMedium,
		baseBig:      baseBig,
		fee:          fee,
		profitMargin: profitMargin,
		orders:       make(map[string]decimal.Decimal),
	}
}

// NewPremium builds a carrier that charges an extra tax per premium item.
func NewPremium(id, name string, baseSmall, baseMedium, baseBig, fee, profitMargin, premiumTax decimal.Decimal) *Company {
	c := New(id, name, baseSmall, baseMedium, baseBig, fee, profitMargin)
	c.premium = true
	c.premiumTax = premiumTax
	return c
}

func (c *Company) ID() string   { return c.id }
func (c *Company) Name() string { return c.name }

// Premium reports whether the carrier levies the premium surcharge.
func (c *Company) Premium() bool { return c.premium }

// Revenue is the sum of shipping costs over every order ever booked.
func (c *Company) Revenue() decimal.Decimal { return c.revenue }

// OrderIDs lists the ids of all booked orders.
func (c *Company) OrderIDs() []string {
	ids := make([]string, 0, len(c.orders))
	for id := range c.orders {
		ids = append(ids, id)
	}
	return ids
}

// Cost prices shipping an order of items products, premiumItems of which are
// premium-category. The base tier is picked by item count, then margin, fee
// and the platform markdown apply; premium carriers add their per-item tax.
func (c *Company) Cost(items, premiumItems int) decimal.Decimal {
	base := c.baseBig
	switch {
	case items <= 1:
		base = c.baseSmall
	case items <= 4:
		base = c.baseMedium
	}
	cost := base.
		Mul(c.profitMargin).
		Mul(decimal.NewFromInt(1).Add(c.fee)).
		Mul(marketplaceMarkdown)
	if c.premium && premiumItems > 0 {
		cost = cost.Add(c.premiumTax.Mul(decimal.NewFromInt(int64(premiumItems))))
	}
	return cost
}

// AddOrder books an order and accrues its shipping cost. Booking an already
// known order id is a no-op.
func (c *Company) AddOrder(orderID string, shippingCost decimal.Decimal) {
	if _, ok := c.orders[orderID]; ok {
		return
	}
	c.orders[orderID] = shippingCost
	c.revenue = c.revenue.Add(shippingCost)
}

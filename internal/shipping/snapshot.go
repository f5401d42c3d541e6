package shipping

import "github.com/shopspring/decimal"

// Snapshot is the serializable form of a Company.
type Snapshot struct {
	ID           string                     `json:"id"`
	Name         string                     `json:"name"`
	BaseSmall    decimal.Decimal            `json:"base_small"`
	BaseMedium   decimal.Decimal            `json:"base_medium"`
	BaseBig      decimal.Decimal            `json:"base_big"`
	Fee          decimal.Decimal            `json:"fee"`
	ProfitMargin decimal.Decimal            `json:"profit_margin"`
	Premium      bool                       `json:"premium"`
	PremiumTax   decimal.Decimal            `json:"premium_tax"`
	Revenue      decimal.Decimal            `json:"revenue"`
	Orders       map[string]decimal.Decimal `json:"orders"`
}

// Snapshot converts the carrier into its serializable form.
func (c *Company) Snapshot() Snapshot {
	orders := make(map[string]decimal.Decimal, len(c.orders))
	for id, cost := range c.orders {
		orders[id] = cost
	}
	return Snapshot{
		ID:           c.id,
		Name:         c.name,
		BaseSmall:    c.baseSmall,
		BaseMedium:   c.baseMedium,
		BaseBig:      c.baseBig,
		Fee:          c.fee,
		ProfitMargin: c.profitMargin,
		Premium:      c.premium,
		PremiumTax:   c.premiumTax,
		Revenue:      c.revenue,
		Orders:       orders,
	}
}

// FromSnapshot rebuilds a carrier from its serializable form.
func FromSnapshot(s Snapshot) *Company {
	c := &Company{
		id:           s.ID,
		name:         s.Name,
		baseSmall:    s.BaseSmall,
		baseMedium:   s.BaseMedium,
		baseBig:      s.BaseBig,
		fee:          s.Fee,
		profitMargin: s.ProfitMargin,
		premium:      s.Premium,
		premiumTax:   s.PremiumTax,
		revenue:      s.Revenue,
		orders:       make(map[string]decimal.Decimal, len(s.Orders)),
	}
	for id, cost := range s.Orders {
		c.orders[id] = cost
	}
	return c
}

package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudo-init-do/vintage/internal/product"
)

// Snapshot is the serializable, read-only view of an order. It is what the
// aggregate hands to callers, so leaked references cannot mutate state.
type Snapshot struct {
	ID              string             `json:"id"`
	BuyerID         string             `json:"buyer_id"`
	SellerID        string             `json:"seller_id"`
	CompanyID       string             `json:"company_id"`
	Products        []product.Snapshot `json:"products"`
	CreatedAt       time.Time          `json:"created_at"`
	DeliveredAt     *time.Time         `json:"delivered_at,omitempty"`
	Status          Status             `json:"status"`
	ProductsCost    decimal.Decimal    `json:"products_cost"`
	ShippingCost    decimal.Decimal    `json:"shipping_cost"`
	MarketplaceFees decimal.Decimal    `json:"marketplace_fees"`
	TotalCost       decimal.Decimal    `json:"total_cost"`
}

// Snapshot converts the order into its serializable form.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		ID:              o.id,
		BuyerID:         o.buyerID,
		SellerID:        o.sellerID,
		CompanyID:       o.companyID,
		Products:        make([]product.Snapshot, 0, len(o.products)),
		CreatedAt:       o.createdAt,
		Status:          o.status,
		ProductsCost:    o.productsCost,
		ShippingCost:    o.shippingCost,
		MarketplaceFees: o.marketplaceFees,
		TotalCost:       o.totalCost,
	}
	for _, p := range o.products {
		s.Products = append(s.Products, p.Snapshot())
	}
	if !o.deliveredAt.IsZero() {
		t := o.deliveredAt
		s.DeliveredAt = &t
	}
	return s
}

// FromSnapshot rebuilds an order from its serializable form.
func FromSnapshot(s Snapshot) (*Order, error) {
	if len(s.Products) == 0 {
		return nil, ErrEmptyOrder
	}
	o := &Order{
		id:              s.ID,
		buyerID:         s.BuyerID,
		sellerID:        s.SellerID,
		companyID:       s.CompanyID,
		createdAt:       s.CreatedAt,
		status:          s.Status,
		productsCost:    s.ProductsCost,
		shippingCost:    s.ShippingCost,
		marketplaceFees: s.MarketplaceFees,
		totalCost:       s.TotalCost,
	}
	for _, ps := range s.Products {
		p, err := product.FromSnapshot(ps)
		if err != nil {
			return nil, err
		}
		o.products = append(o.products, p)
	}
	if s.DeliveredAt != nil {
		o.deliveredAt = *s.DeliveredAt
	}
	return o, nil
}

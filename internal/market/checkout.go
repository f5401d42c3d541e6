package market

import (
	"sort"

	"github.com/sudo-init-do/vintage/internal/order"
	"github.com/sudo-init-do/vintage/internal/product"
)

// groupKey partitions a cart: one order is created per (seller, carrier)
// pair present in it.
type groupKey struct {
	sellerID  string
	companyID string
}

// Checkout converts the buyer's cart into orders, atomically.
//
// The whole cart is validated against the live catalog before anything is
// mutated. If any item was sold in the meantime, the cart is restored with
// only the still-available items and CartUnavailableError is returned with
// no orders created. Once validation passes, order creation cannot fail:
// all products leave the catalog, one order per (seller, carrier) group is
// registered everywhere, and every ledger is updated in the same critical
// section.
func (m *Market) Checkout(buyerID string) ([]order.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buyer, ok := m.users[buyerID]
	if !ok {
		return nil, ErrUserNotFound
	}
	items := buyer.takeCart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var missing []string
	for _, p := range items {
		if _, ok := m.catalog[p.ID]; !ok {
			missing = append(missing, p.ID)
		}
	}
	if len(missing) > 0 {
		for _, p := range items {
			if _, ok := m.catalog[p.ID]; ok {
				buyer.addToCart(p)
			}
		}
		return nil, &CartUnavailableError{Missing: missing}
	}

	// No product may appear in two simultaneously open orders.
	for _, p := range items {
		delete(m.catalog, p.ID)
	}

	groups := make(map[groupKey][]product.Product)
	for _, p := range items {
		k := groupKey{sellerID: p.SellerID, companyID: p.CompanyID}
		groups[k] = append(groups[k], p)
	}
	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	// Deterministic order-id assignment across runs.
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].sellerID != keys[j].sellerID {
			return keys[i].sellerID < keys[j].sellerID
		}
		return keys[i].companyID < keys[j].companyID
	})

	now := m.clk.Now()
	created := make([]order.Snapshot, 0, len(keys))
	for _, k := range keys {
		group := groups[k]
		company := m.companies[k.companyID]
		premiumItems := 0
		for _, p := range group {
			if p.Premium() {
				premiumItems++
			}
		}
		shippingCost := company.Cost(len(group), premiumItems)

		o, err := order.New(m.orderSeq.Next(), buyerID, k.sellerID, k.companyID, group, shippingCost, now)
		if err != nil {
			// Unreachable: groups are never empty once validation passed.
			return nil, err
		}

		m.orders[o.ID()] = o
		buyer.addOrderMade(o)
		if seller, ok := m.users[k.sellerID]; ok {
			seller.addOrderReceived(o)
		}
		company.AddOrder(o.ID(), shippingCost)
		m.revenue = m.revenue.Add(o.MarketplaceFees())

		created = append(created, o.Snapshot())
	}
	return created, nil
}

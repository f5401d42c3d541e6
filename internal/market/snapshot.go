package market

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudo-init-do/vintage/internal/clock"
	"github.com/sudo-init-do/vintage/internal/order"
	"github.com/sudo-init-do/vintage/internal/product"
	"github.com/sudo-init-do/vintage/internal/shipping"
)

// Snapshot is the full serializable state of the marketplace: catalogs,
// ledgers, sequences and the simulated clock offset. The core never does
// file or network I/O with it; persistence is a collaborator's job.
type Snapshot struct {
	TakenAt     time.Time       `json:"taken_at"`
	BaseSmall   decimal.Decimal `json:"base_small"`
	BaseMedium  decimal.Decimal `json:"base_medium"`
	BaseBig     decimal.Decimal `json:"base_big"`
	OrderFee    decimal.Decimal `json:"order_fee"`
	ClockOffset time.Duration   `json:"clock_offset_ns"`

	Users     []UserSnapshot      `json:"users"`
	Catalog   []product.Snapshot  `json:"catalog"`
	Orders    []order.Snapshot    `json:"orders"`
	Companies []shipping.Snapshot `json:"companies"`

	Revenue decimal.Decimal `json:"revenue"`

	NextUser    uint64 `json:"next_user"`
	NextProduct uint64 `json:"next_product"`
	NextOrder   uint64 `json:"next_order"`
	NextCompany uint64 `json:"next_company"`
}

// UserSnapshot is the serializable form of a user. Live listings are not
// duplicated here: they are exactly the catalog entries with the user's
// seller id. Orders are stored once globally and referenced by id.
type UserSnapshot struct {
	ID             string             `json:"id"`
	Email          string             `json:"email"`
	Name           string             `json:"name"`
	Address        string             `json:"address"`
	TaxNumber      string             `json:"tax_number"`
	Cart           []product.Snapshot `json:"cart"`
	OrdersMade     []string           `json:"orders_made"`
	OrdersReceived []string           `json:"orders_received"`
	Revenue        decimal.Decimal    `json:"revenue"`
	Spending       decimal.Decimal    `json:"spending"`
}

// Snapshot captures the aggregate's full state.
func (m *Market) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Snapshot{
		TakenAt:     m.clk.Now(),
		BaseSmall:   m.cfg.BaseSmall,
		BaseMedium:  m.cfg.BaseMedium,
		BaseBig:     m.cfg.BaseBig,
		OrderFee:    m.cfg.OrderFee,
		ClockOffset: m.clk.Offset(),
		Revenue:     m.revenue,
		NextUser:    m.userSeq.next,
		NextProduct: m.productSeq.next,
		NextOrder:   m.orderSeq.next,
		NextCompany: m.companySeq.next,
	}
	for _, p := range m.catalog {
		s.Catalog = append(s.Catalog, p.Snapshot())
	}
	for _, u := range m.users {
		us := UserSnapshot{
			ID:        u.id,
			Email:     u.email,
			Name:      u.name,
			Address:   u.address,
			TaxNumber: u.taxNumber,
			Revenue:   u.revenue,
			Spending:  u.spending,
		}
		for _, p := range u.Cart() {
			us.Cart = append(us.Cart, p.Snapshot())
		}
		for id := range u.ordersMade {
			us.OrdersMade = append(us.OrdersMade, id)
		}
		for id := range u.ordersReceived {
			us.OrdersReceived = append(us.OrdersReceived, id)
		}
		s.Users = append(s.Users, us)
	}
	for _, o := range m.orders {
		s.Orders = append(s.Orders, o.Snapshot())
	}
	for _, c := range m.companies {
		s.Companies = append(s.Companies, c.Snapshot())
	}
	return s
}

// FromSnapshot rebuilds a marketplace from a snapshot. The clock base
// defaults to the system clock with the snapshot's offset reapplied.
func FromSnapshot(s Snapshot, base clock.Clock) (*Market, error) {
	m := New(Config{
		BaseSmall:  s.BaseSmall,
		BaseMedium: s.BaseMedium,
		BaseBig:    s.BaseBig,
		OrderFee:   s.OrderFee,
		Clock:      base,
	})
	m.clk.SetOffset(s.ClockOffset)
	m.revenue = s.Revenue
	m.userSeq.next = s.NextUser
	m.productSeq.next = s.NextProduct
	m.orderSeq.next = s.NextOrder
	m.companySeq.next = s.NextCompany

	for _, cs := range s.Companies {
		m.companies[cs.ID] = shipping.FromSnapshot(cs)
	}
	for _, ps := range s.Catalog {
		p, err := product.FromSnapshot(ps)
		if err != nil {
			return nil, err
		}
		m.catalog[p.ID] = p
	}
	for _, os := range s.Orders {
		o, err := order.FromSnapshot(os)
		if err != nil {
			return nil, err
		}
		m.orders[o.ID()] = o
	}
	for _, us := range s.Users {
		u := newUser(us.ID, us.Email, us.Name, us.Address, us.TaxNumber)
		u.revenue = us.Revenue
		u.spending = us.Spending
		for _, ps := range us.Cart {
			p, err := product.FromSnapshot(ps)
			if err != nil {
				return nil, err
			}
			u.cart[p.ID] = p
		}
		for _, id := range us.OrdersMade {
			o, ok := m.orders[id]
			if !ok {
				return nil, fmt.Errorf("user %s: made order %s missing from snapshot", us.ID, id)
			}
			u.ordersMade[id] = o
		}
		for _, id := range us.OrdersReceived {
			o, ok := m.orders[id]
			if !ok {
				return nil, fmt.Errorf("user %s: received order %s missing from snapshot", us.ID, id)
			}
			u.ordersReceived[id] = o
		}
		m.users[u.id] = u
		m.emails[u.email] = u.id
	}
	// Rebuild each seller's shelf from the live catalog.
	for _, p := range m.catalog {
		if u, ok := m.users[p.SellerID]; ok {
			u.selling[p.ID] = p
		}
	}
	return m, nil
}

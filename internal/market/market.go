package market

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudo-init-do/vintage/internal/clock"
	"github.com/sudo-init-do/vintage/internal/order"
	"github.com/sudo-init-do/vintage/internal/product"
	"github.com/sudo-init-do/vintage/internal/shipping"
)

// Config is the marketplace-wide pricing configuration: the base shipping
// values every carrier is constructed from and the order fee carriers apply
// as their fee multiplier.
type Config struct {
	BaseSmall  decimal.Decimal
	BaseMedium decimal.Decimal
	BaseBig    decimal.Decimal
	OrderFee   decimal.Decimal

	// Clock is the time source; defaults to the system clock. It is always
	// wrapped in a simulated clock so time can be advanced.
	Clock clock.Clock
}

// Market is the aggregate root. All registries hang off it and every
// operation runs under its lock, so checkout validation-and-removal,
// per-order transitions and ledger increments are each atomic.
type Market struct {
	mu sync.RWMutex

	clk *clock.Simulated
	cfg Config

	users     map[string]*User
	emails    map[string]string
	catalog   map[string]product.Product
	companies map[string]*shipping.Company
	orders    map[string]*order.Order

	revenue decimal.Decimal

	userSeq    codeSeq
	productSeq codeSeq
	orderSeq   codeSeq
	companySeq codeSeq
}

// New builds an empty marketplace from cfg.
func New(cfg Config) *Market {
	return &Market{
		clk:        clock.NewSimulated(cfg.Clock),
		cfg:        cfg,
		users:      make(map[string]*User),
		emails:     make(map[string]string),
		catalog:    make(map[string]product.Product),
		companies:  make(map[string]*shipping.Company),
		orders:     make(map[string]*order.Order),
		userSeq:    codeSeq{prefix: "u"},
		productSeq: codeSeq{prefix: "p"},
		orderSeq:   codeSeq{prefix: "o"},
		companySeq: codeSeq{prefix: "c"},
	}
}

// Now reports the marketplace's current instant.
func (m *Market) Now() time.Time { return m.clk.Now() }

// AdvanceTime jumps the simulated clock forward by d.
func (m *Market) AdvanceTime(d time.Duration) { m.clk.Advance(d) }

// Revenue is the sum of marketplace fees over all orders ever created.
// Fees are earned at checkout and are not reverted by returns.
func (m *Market) Revenue() decimal.Decimal {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.revenue
}

// RegisterUser adds a user and returns the assigned id. Emails are unique.
func (m *Market) RegisterUser(email, name, address, taxNumber string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.emails[email]; ok {
		return "", ErrEmailTaken
	}
	u := newUser(m.userSeq.Next(), email, name, address, taxNumber)
	m.users[u.id] = u
	m.emails[email] = u.id
	return u.id, nil
}

// RegisterCompany adds a standard carrier built from the marketplace's base
// shipping values and order fee, and returns its id.
func (m *Market) RegisterCompany(name string, profitMargin decimal.Decimal) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := shipping.New(m.companySeq.Next(), name,
		m.cfg.BaseSmall, m.cfg.BaseMedium, m.cfg.BaseBig, m.cfg.OrderFee, profitMargin)
	m.companies[c.ID()] = c
	return c.ID()
}

// RegisterPremiumCompany adds a carrier with a per-item premium surcharge.
func (m *Market) RegisterPremiumCompany(name string, profitMargin, premiumTax decimal.Decimal) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := shipping.NewPremium(m.companySeq.Next(), name,
		m.cfg.BaseSmall, m.cfg.BaseMedium, m.cfg.BaseBig, m.cfg.OrderFee, profitMargin, premiumTax)
	m.companies[c.ID()] = c
	return c.ID()
}

// Publish lists a product for sale on behalf of sellerID and returns the
// assigned product id. The product's carrier must already be registered.
func (m *Market) Publish(sellerID string, p product.Product) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seller, ok := m.users[sellerID]
	if !ok {
		return "", ErrUserNotFound
	}
	if _, ok := m.companies[p.CompanyID]; !ok {
		return "", ErrCompanyNotFound
	}
	p.SellerID = sellerID
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.ID = m.productSeq.Next()
	m.catalog[p.ID] = p
	seller.addSelling(p)
	return p.ID, nil
}

// Product looks up a live listing.
func (m *Market) Product(id string) (product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.catalog[id]
	if !ok {
		return product.Product{}, ErrProductNotFound
	}
	return p, nil
}

// Products lists the live catalog sorted by product id.
func (m *Market) Products() []product.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]product.Product, 0, len(m.catalog))
	for _, p := range m.catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddToCart stages a live listing in the user's cart.
func (m *Market) AddToCart(userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	p, ok := m.catalog[productID]
	if !ok {
		return ErrProductNotFound
	}
	u.addToCart(p)
	return nil
}

// RemoveFromCart drops a product from the user's cart.
func (m *Market) RemoveFromCart(userID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.removeFromCart(productID)
	return nil
}

// Cart returns the user's staged products.
func (m *Market) Cart(userID string) ([]product.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.Cart(), nil
}

// UserIDByEmail resolves a registered email to its user id.
func (m *Market) UserIDByEmail(email string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.emails[email]
	if !ok {
		return "", ErrUserNotFound
	}
	return id, nil
}

// User returns the user aggregate for read access.
func (m *Market) User(id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// CompanyIDByName resolves a carrier name to its id.
func (m *Market) CompanyIDByName(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.companies {
		if c.Name() == name {
			return c.ID(), nil
		}
	}
	return "", ErrCompanyNotFound
}

// Companies lists all carriers as read-only snapshots sorted by id.
func (m *Market) Companies() []shipping.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]shipping.Snapshot, 0, len(m.companies))
	for _, c := range m.companies {
		out = append(out, c.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Order returns a read-only view of an order.
func (m *Market) Order(id string) (order.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return order.Snapshot{}, ErrOrderNotFound
	}
	return o.Snapshot(), nil
}

// ExpediteOrder hands the order to its carrier.
func (m *Market) ExpediteOrder(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	return o.Expedite()
}

// DeliverOrder marks the order delivered at the marketplace's current
// instant, opening the return window.
func (m *Market) DeliverOrder(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	return o.Deliver(m.clk.Now())
}

// ReturnOrder runs the return transition and, on success, un-counts the
// order from the seller's revenue and the buyer's spending. The order stays
// in every registry for audit; marketplace fees are not reverted.
func (m *Market) ReturnOrder(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	if err := o.SetReturned(m.clk.Now()); err != nil {
		return err
	}
	if buyer, ok := m.users[o.BuyerID()]; ok {
		buyer.orderMadeReturned(id)
	}
	if seller, ok := m.users[o.SellerID()]; ok {
		seller.orderReceivedReturned(id)
	}
	return nil
}

// CompanyOrders lists a carrier's booked orders in the given status.
func (m *Market) CompanyOrders(companyID string, status order.Status) ([]order.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.companies[companyID]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	out := make([]order.Snapshot, 0)
	for _, id := range c.OrderIDs() {
		if o, ok := m.orders[id]; ok && o.Status() == status {
			out = append(out, o.Snapshot())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ReturnableOrders lists the user's delivered purchases still inside the
// return window.
func (m *Market) ReturnableOrders(userID string) ([]order.Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}
	now := m.clk.Now()
	out := make([]order.Snapshot, 0)
	for _, o := range u.ordersMade {
		if o.Returnable(now) {
			out = append(out, o.Snapshot())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

package market

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudo-init-do/vintage/internal/order"
	"github.com/sudo-init-do/vintage/internal/product"
)

// User is a marketplace identity acting as seller and buyer. Its revenue and
// spending counters are maintained incrementally and always match a
// recomputation from the retained orders filtered by non-returned status.
type User struct {
	id        string
	email     string
	name      string
	address   string
	taxNumber string

	selling        map[string]product.Product
	cart           map[string]product.Product
	ordersMade     map[string]*order.Order
	ordersReceived map[string]*order.Order

	revenue  decimal.Decimal
	spending decimal.Decimal
}

func newUser(id, email, name, address, taxNumber string) *User {
	return &User{
		id:             id,
		email:          email,
		name:           name,
		address:        address,
		taxNumber:      taxNumber,
		selling:        make(map[string]product.Product),
		cart:           make(map[string]product.Product),
		ordersMade:     make(map[string]*order.Order),
		ordersReceived: make(map[string]*order.Order),
	}
}

func (u *User) ID() string        { return u.id }
func (u *User) Email() string     { return u.email }
func (u *User) Name() string      { return u.name }
func (u *User) Address() string   { return u.address }
func (u *User) TaxNumber() string { return u.taxNumber }

// Revenue is the cumulative products cost of non-returned received orders.
func (u *User) Revenue() decimal.Decimal { return u.revenue }

// Spending is the cumulative products cost of non-returned made orders.
func (u *User) Spending() decimal.Decimal { return u.spending }

// RevenueBetween recomputes revenue from orders received inside (from, to).
func (u *User) RevenueBetween(from, to time.Time) decimal.Decimal {
	return sumInInterval(u.ordersReceived, from, to)
}

// SpendingBetween recomputes spending from orders made inside (from, to).
func (u *User) SpendingBetween(from, to time.Time) decimal.Decimal {
	return sumInInterval(u.ordersMade, from, to)
}

func sumInInterval(orders map[string]*order.Order, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		if o.CreatedAt().After(from) && o.CreatedAt().Before(to) {
			total = total.Add(o.SellerRevenue())
		}
	}
	return total
}

// Cart returns the staged products sorted by id.
func (u *User) Cart() []product.Product {
	return sortedProducts(u.cart)
}

// Selling returns the user's live listings sorted by id.
func (u *User) Selling() []product.Product {
	return sortedProducts(u.selling)
}

func sortedProducts(m map[string]product.Product) []product.Product {
	out := make([]product.Product, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (u *User) addToCart(p product.Product)  { u.cart[p.ID] = p }
func (u *User) removeFromCart(id string)     { delete(u.cart, id) }
func (u *User) addSelling(p product.Product) { u.selling[p.ID] = p }

// takeCart empties the cart and returns its contents sorted by product id.
func (u *User) takeCart() []product.Product {
	items := sortedProducts(u.cart)
	u.cart = make(map[string]product.Product)
	return items
}

func (u *User) addOrderMade(o *order.Order) {
	u.ordersMade[o.ID()] = o
	u.spending = u.spending.Add(o.ProductsCost())
}

// addOrderReceived books a sale: the sold listings leave the shelf and the
// products cost accrues as revenue.
func (u *User) addOrderReceived(o *order.Order) {
	u.ordersReceived[o.ID()] = o
	for _, p := range o.Products() {
		delete(u.selling, p.ID)
	}
	u.revenue = u.revenue.Add(o.ProductsCost())
}

// orderMadeReturned un-counts a returned order from the buyer's spending.
func (u *User) orderMadeReturned(orderID string) {
	if o, ok := u.ordersMade[orderID]; ok {
		u.spending = u.spending.Sub(o.ProductsCost())
	}
}

// orderReceivedReturned un-counts a returned order from the seller's revenue.
func (u *User) orderReceivedReturned(orderID string) {
	if o, ok := u.ordersReceived[orderID]; ok {
		u.revenue = u.revenue.Sub(o.ProductsCost())
	}
}

func sortedOrderSnapshots(m map[string]*order.Order) []order.Snapshot {
	out := make([]order.Snapshot, 0, len(m))
	for _, o := range m {
		out = append(out, o.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OrdersMade returns read-only views of the user's purchases.
func (u *User) OrdersMade() []order.Snapshot { return sortedOrderSnapshots(u.ordersMade) }

// OrdersReceived returns read-only views of the user's sales.
func (u *User) OrdersReceived() []order.Snapshot { return sortedOrderSnapshots(u.ordersReceived) }

package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudo-init-do/vintage/internal/product"
)

// Status is the lifecycle state of an order. Transitions only ever move
// forward: INITIALIZED -> EXPEDITED -> DELIVERED -> RETURNED.
type Status string

const (
	// StatusInitialized is a freshly created order awaiting expedition.
	StatusInitialized Status = "INITIALIZED"
	// StatusExpedited means the carrier has the order.
	StatusExpedited Status = "EXPEDITED"
	// StatusDelivered means the buyer has the order; the return window runs
	// from the delivery timestamp.
	StatusDelivered Status = "DELIVERED"
	// StatusReturned is terminal.
	StatusReturned Status = "RETURNED"
)

// ReturnWindow is how long after delivery a buyer may still return an order.
// Exactly the window boundary is still within it.
const ReturnWindow = 48 * time.Hour

// Flat per-item platform fees charged at checkout.
var (
	feeNewItem  = decimal.RequireFromString("0.50")
	feeUsedItem = decimal.RequireFromString("0.25")
)

// Order bundles products from one seller shipped by one carrier to one
// buyer. The cost breakdown is computed once from checkout-time prices and
// never changes; only the status and delivery timestamp mutate afterwards.
type Order struct {
	id        string
	buyerID   string
	sellerID  string
	companyID string
	products  []product.Product

	createdAt   time.Time
	deliveredAt time.Time
	status      Status

	productsCost    decimal.Decimal
	shippingCost    decimal.Decimal
	marketplaceFees decimal.Decimal
	totalCost       decimal.Decimal
}

// New creates an order over the given product snapshots, pricing them at
// now. The caller guarantees every product shares sellerID and companyID.
func New(id, buyerID, sellerID, companyID string, products []product.Product, shippingCost decimal.Decimal, now time.Time) (*Order, error) {
	if len(products) == 0 {
		return nil, ErrEmptyOrder
	}
	o := &Order{
		id:           id,
		buyerID:      buyerID,
		sellerID:     sellerID,
		companyID:    companyID,
		products:     append([]product.Product(nil), products...),
		createdAt:    now,
		status:       StatusInitialized,
		shippingCost: shippingCost,
	}
	for _, p := range o.products {
		o.productsCost = o.productsCost.Add(p.Price(now))
		if p.New() {
			o.marketplaceFees = o.marketplaceFees.Add(feeNewItem)
		} else {
			o.marketplaceFees = o.marketplaceFees.Add(feeUsedItem)
		}
	}
	o.totalCost = o.productsCost.Add(o.shippingCost).Add(o.marketplaceFees)
	return o, nil
}

func (o *Order) ID() string        { return o.id }
func (o *Order) BuyerID() string   { return o.buyerID }
func (o *Order) SellerID() string  { return o.sellerID }
func (o *Order) CompanyID() string { return o.companyID }
func (o *Order) Status() Status    { return o.status }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DeliveredAt returns the delivery timestamp; ok is false before delivery.
func (o *Order) DeliveredAt() (t time.Time, ok bool) {
	return o.deliveredAt, !o.deliveredAt.IsZero()
}

// Products returns copies of the order's product snapshots.
func (o *Order) Products() []product.Product {
	return append([]product.Product(nil), o.products...)
}

func (o *Order) ProductsCost() decimal.Decimal    { return o.productsCost }
func (o *Order) ShippingCost() decimal.Decimal    { return o.shippingCost }
func (o *Order) MarketplaceFees() decimal.Decimal { return o.marketplaceFees }
func (o *Order) TotalCost() decimal.Decimal       { return o.totalCost }

// PremiumItems counts the premium-category products in the order.
func (o *Order) PremiumItems() int {
	n := 0
	for _, p := range o.products {
		if p.Premium() {
			n++
		}
	}
	return n
}

// Expedite moves the order from INITIALIZED to EXPEDITED.
func (o *Order) Expedite() error {
	if o.status != StatusInitialized {
		return &InvalidTransitionError{OrderID: o.id, From: o.status, Attempted: StatusExpedited}
	}
	o.status = StatusExpedited
	return nil
}

// Deliver moves the order from EXPEDITED to DELIVERED and stamps the
// delivery time.
func (o *Order) Deliver(now time.Time) error {
	if o.status != StatusExpedited {
		return &InvalidTransitionError{OrderID: o.id, From: o.status, Attempted: StatusDelivered}
	}
	o.status = StatusDelivered
	o.deliveredAt = now
	return nil
}

// SetReturned moves the order from DELIVERED to RETURNED while the return
// window is still open. Strictly past the window it fails with
// LateReturnError; exactly at the boundary the return succeeds.
func (o *Order) SetReturned(now time.Time) error {
	if o.status != StatusDelivered {
		return &InvalidTransitionError{OrderID: o.id, From: o.status, Attempted: StatusReturned}
	}
	if now.Sub(o.deliveredAt) > ReturnWindow {
		return &LateReturnError{OrderID: o.id, DeliveredAt: o.deliveredAt, AttemptedAt: now}
	}
	o.status = StatusReturned
	return nil
}

// Returnable reports whether a return at now would be accepted.
func (o *Order) Returnable(now time.Time) bool {
	return o.status == StatusDelivered && now.Sub(o.deliveredAt) <= ReturnWindow
}

// SellerRevenue is what the order contributes to its seller's ledger:
// the products cost unless the order was returned.
func (o *Order) SellerRevenue() decimal.Decimal {
	if o.status == StatusReturned {
		return decimal.Zero
	}
	return o.productsCost
}

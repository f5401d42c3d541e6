package market

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Standing ranks a user by an accumulated amount.
type Standing struct {
	UserID string          `json:"user_id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// UserWithMostRevenue returns the top seller by cumulative revenue.
func (m *Market) UserWithMostRevenue() (Standing, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.topUser(func(u *User) decimal.Decimal { return u.Revenue() })
}

// UserWithMostRevenueBetween returns the top seller inside (from, to).
func (m *Market) UserWithMostRevenueBetween(from, to time.Time) (Standing, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.topUser(func(u *User) decimal.Decimal { return u.RevenueBetween(from, to) })
}

func (m *Market) topUser(amount func(*User) decimal.Decimal) (Standing, bool) {
	var best Standing
	found := false
	for _, u := range m.users {
		a := amount(u)
		// Ties break on the lower user id so results are stable.
		if !found || a.GreaterThan(best.Amount) || (a.Equal(best.Amount) && u.id < best.UserID) {
			best = Standing{UserID: u.id, Name: u.name, Amount: a}
			found = true
		}
	}
	return best, found
}

// TopSellersBetween ranks all users by revenue inside (from, to), highest
// first.
func (m *Market) TopSellersBetween(from, to time.Time) []Standing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rankUsers(func(u *User) decimal.Decimal { return u.RevenueBetween(from, to) })
}

// TopBuyersBetween ranks all users by spending inside (from, to), highest
// first.
func (m *Market) TopBuyersBetween(from, to time.Time) []Standing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rankUsers(func(u *User) decimal.Decimal { return u.SpendingBetween(from, to) })
}

func (m *Market) rankUsers(amount func(*User) decimal.Decimal) []Standing {
	out := make([]Standing, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, Standing{UserID: u.id, Name: u.name, Amount: amount(u)})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}

// CompanyWithMostRevenue returns the carrier with the highest accrued
// shipping revenue.
func (m *Market) CompanyWithMostRevenue() (id string, revenue decimal.Decimal, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.companies {
		if !ok || c.Revenue().GreaterThan(revenue) || (c.Revenue().Equal(revenue) && c.ID() < id) {
			id, revenue, ok = c.ID(), c.Revenue(), true
		}
	}
	return id, revenue, ok
}

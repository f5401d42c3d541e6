package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Snapshot is the serializable form of a Product. The Details interface is
// flattened into a tagged union: exactly one category block is set, and
// premium variants additionally carry the appreciation rate.
type Snapshot struct {
	ID             string          `json:"id"`
	SellerID       string          `json:"seller_id"`
	CompanyID      string          `json:"company_id"`
	Description    string          `json:"description"`
	Brand          string          `json:"brand"`
	BasePrice      decimal.Decimal `json:"base_price"`
	PreviousOwners int             `json:"previous_owners"`
	Condition      Condition       `json:"condition"`
	Kind           Kind            `json:"kind"`
	Premium        bool            `json:"premium"`

	Footwear     *Footwear        `json:"footwear,omitempty"`
	Apparel      *Apparel         `json:"apparel,omitempty"`
	Handbag      *Handbag         `json:"handbag,omitempty"`
	Appreciation *decimal.Decimal `json:"appreciation,omitempty"`
}

// Snapshot converts the product into its serializable form.
func (p Product) Snapshot() Snapshot {
	s := Snapshot{
		ID:             p.ID,
		SellerID:       p.SellerID,
		CompanyID:      p.CompanyID,
		Description:    p.Description,
		Brand:          p.Brand,
		BasePrice:      p.BasePrice,
		PreviousOwners: p.PreviousOwners,
		Condition:      p.Condition,
	}
	if p.Details == nil {
		return s
	}
	s.Kind = p.Details.Kind()
	s.Premium = p.Details.Premium()
	switch d := p.Details.(type) {
	case Footwear:
		f := d
		s.Footwear = &f
	case PremiumFootwear:
		f := d.Footwear
		rate := d.Appreciation
		s.Footwear = &f
		s.Appreciation = &rate
	case Apparel:
		a := d
		s.Apparel = &a
	case Handbag:
		h := d
		s.Handbag = &h
	case PremiumHandbag:
		h := d.Handbag
		rate := d.Appreciation
		s.Handbag = &h
		s.Appreciation = &rate
	}
	return s
}

// FromSnapshot rebuilds a product from its serializable form.
func FromSnapshot(s Snapshot) (Product, error) {
	p := Product{
		ID:             s.ID,
		SellerID:       s.SellerID,
		CompanyID:      s.CompanyID,
		Description:    s.Description,
		Brand:          s.Brand,
		BasePrice:      s.BasePrice,
		PreviousOwners: s.PreviousOwners,
		Condition:      s.Condition,
	}
	switch s.Kind {
	case KindFootwear:
		if s.Footwear == nil {
			return Product{}, fmt.Errorf("product %s: footwear snapshot missing details", s.ID)
		}
		if s.Premium {
			if s.Appreciation == nil {
				return Product{}, fmt.Errorf("product %s: premium footwear snapshot missing appreciation", s.ID)
			}
			p.Details = PremiumFootwear{Footwear: *s.Footwear, Appreciation: *s.Appreciation}
		} else {
			p.Details = *s.Footwear
		}
	case KindApparel:
		if s.Apparel == nil {
			return Product{}, fmt.Errorf("product %s: apparel snapshot missing details", s.ID)
		}
		p.Details = *s.Apparel
	case KindHandbag:
		if s.Handbag == nil {
			return Product{}, fmt.Errorf("product %s: handbag snapshot missing details", s.ID)
		}
		if s.Premium {
			if s.Appreciation == nil {
				return Product{}, fmt.Errorf("product %s: premium handbag snapshot missing appreciation", s.ID)
			}
			p.Details = PremiumHandbag{Handbag: *s.Handbag, Appreciation: *s.Appreciation}
		} else {
			p.Details = *s.Handbag
		}
	default:
		return Product{}, fmt.Errorf("product %s: unknown kind %q", s.ID, s.Kind)
	}
	return p, nil
}

package product

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidCondition = errors.New("unknown condition grade")

// Condition is the graded wear of a second-hand item. The grade contributes
// a base-price multiplier that composes with the category correction.
type Condition int

const (
	ConditionPristine Condition = iota
	ConditionExcellent
	ConditionGood
	ConditionFair
	ConditionWorn
)

var conditionMultipliers = map[Condition]decimal.Decimal{
	ConditionPristine:  decimal.RequireFromString("1.0"),
	ConditionExcellent: decimal.RequireFromString("0.9"),
	ConditionGood:      decimal.RequireFromString("0.8"),
	ConditionFair:      decimal.RequireFromString("0.7"),
	ConditionWorn:      decimal.RequireFromString("0.6"),
}

// Multiplier returns the grade's base-price factor.
func (c Condition) Multiplier() decimal.Decimal {
	return conditionMultipliers[c]
}

func (c Condition) String() string {
	switch c {
	case ConditionPristine:
		return "pristine"
	case ConditionExcellent:
		return "excellent"
	case ConditionGood:
		return "good"
	case ConditionFair:
		return "fair"
	case ConditionWorn:
		return "worn"
	}
	return "unknown"
}

func (c Condition) validate() error {
	if c < ConditionPristine || c > ConditionWorn {
		return ErrInvalidCondition
	}
	return nil
}

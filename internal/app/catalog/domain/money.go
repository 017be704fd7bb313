package domain

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// Money represents a monetary value with exact decimal arithmetic using big.Rat.
// Prices in the catalog are currency-agnostic. Money values are immutable:
// every operation returns a new instance.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a new Money instance from numerator and denominator.
// Example: NewMoney(119990, 1) represents 119990.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator == 0 {
		return nil, fmt.Errorf("denominator cannot be zero")
	}
	if denominator < 0 {
		return nil, fmt.Errorf("denominator must be positive")
	}

	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// MustMoney is NewMoney(amount, 1) for whole amounts.
func MustMoney(amount int64) *Money {
	return &Money{rat: big.NewRat(amount, 1)}
}

// ParseMoney parses a decimal string such as "119990" or "1299.99".
func ParseMoney(s string) (*Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty money value")
	}
	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid money value %q", s)
	}
	return &Money{rat: rat}, nil
}

// NewMoneyFromFloat converts a float, as received from JSON or structpb payloads.
func NewMoneyFromFloat(f float64) *Money {
	rat := new(big.Rat)
	rat.SetFloat64(f)
	return &Money{rat: rat}
}

// NewMoneyFromRat creates a new Money instance from a big.Rat.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Rat returns a copy of the underlying rational.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat)
}

// Add adds two Money values and returns a new Money instance.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract subtracts another Money value from this one.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyInt multiplies by an integer quantity.
func (m *Money) MultiplyInt(n int) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, big.NewRat(int64(n), 1))}
}

// IsZero returns true if the money value is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative returns true if the money value is negative.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// IsPositive returns true if the money value is positive.
func (m *Money) IsPositive() bool {
	return m.rat.Sign() > 0
}

// Cmp compares m and other and returns -1, 0 or +1.
func (m *Money) Cmp(other *Money) int {
	return m.rat.Cmp(other.rat)
}

// LessThan returns true if this Money value is less than another.
func (m *Money) LessThan(other *Money) bool {
	return m.rat.Cmp(other.rat) < 0
}

// GreaterThan returns true if this Money value is greater than another.
func (m *Money) GreaterThan(other *Money) bool {
	return m.rat.Cmp(other.rat) > 0
}

// Equals returns true if this Money value equals another.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (for display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String returns the value with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// DecimalString returns the shortest exact decimal form used for storage:
// whole amounts have no fraction digits.
func (m *Money) DecimalString() string {
	if m.rat.IsInt() {
		return m.rat.Num().String()
	}
	return strings.TrimRight(m.rat.FloatString(8), "0")
}

// UnmarshalYAML accepts scalar seed values like 119990 or 1299.99.
func (m *Money) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: money must be a scalar", node.Line)
	}
	parsed, err := ParseMoney(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	m.rat = parsed.rat
	return nil
}

// MarshalJSON encodes the value as a JSON number.
func (m *Money) MarshalJSON() ([]byte, error) {
	return []byte(m.DecimalString()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(b []byte) error {
	parsed, err := ParseMoney(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	m.rat = parsed.rat
	return nil
}

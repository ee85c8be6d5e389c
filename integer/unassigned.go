package integer

import (
	"math/big"

	"github.com/AronisAt79/halo2wrong/integer/rns"
	"github.com/AronisAt79/halo2wrong/maingate"
)

// UnassignedInteger is a witness integer that is about to be assigned. The
// underlying value may be entirely absent when synthesizing a circuit
// template without a witness.
type UnassignedInteger[T rns.FieldParams] struct {
	integer *rns.Integer[T]
}

// NewUnassignedInteger wraps an optional witness integer. A nil integer
// denotes an absent witness.
func NewUnassignedInteger[T rns.FieldParams](integer *rns.Integer[T]) UnassignedInteger[T] {
	return UnassignedInteger[T]{integer: integer}
}

// Value returns the represented big integer to calculate further witnesses,
// or nil when the witness is absent.
func (u UnassignedInteger[T]) Value() *big.Int {
	if u.integer == nil {
		return nil
	}
	return u.integer.Value()
}

// Limb returns the indexed limb as an unassigned value.
func (u UnassignedInteger[T]) Limb(idx int) maingate.UnassignedValue {
	if u.integer == nil {
		return maingate.NewUnassignedValue(nil)
	}
	return maingate.NewUnassignedValue(u.integer.Limb(idx).Fe())
}

// Native returns the witness value projected into the native field as an
// unassigned value.
func (u UnassignedInteger[T]) Native() maingate.UnassignedValue {
	if u.integer == nil {
		return maingate.NewUnassignedValue(nil)
	}
	return maingate.NewUnassignedValue(u.integer.Native())
}

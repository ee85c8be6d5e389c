// Package maingate defines the data contract between the foreign-field
// integer core and the constraint-synthesis layer. The synthesis layer owns
// cell allocation and constraint emission; this package only carries the
// resulting value and location tokens around.
package maingate

import (
	"math/big"

	"github.com/AronisAt79/halo2wrong/internal/utils"
)

// Cell identifies where a committed value lives inside the constraint system.
// It is an opaque token for the integer core: produced and interpreted by the
// synthesis layer only.
type Cell struct {
	// RegionIndex is the index of the region the cell was assigned in.
	RegionIndex int
	// RowOffset is the row offset relative to the region start.
	RowOffset int
	// Column is the advice column index.
	Column int
}

// AssignedValue is a native field value committed into the constraint system
// together with the cell that accommodates it. The witness value may be absent
// when synthesizing a circuit template without a witness.
type AssignedValue struct {
	value *big.Int
	cell  Cell
}

// NewAssignedValue wraps a committed witness value and its cell. A nil value
// denotes an unassigned witness.
func NewAssignedValue(cell Cell, value *big.Int) AssignedValue {
	var v *big.Int
	if value != nil {
		v = new(big.Int).Set(value)
	}
	return AssignedValue{value: v, cell: cell}
}

// Value returns the witness value, or nil when unassigned.
func (a AssignedValue) Value() *big.Int {
	if a.value == nil {
		return nil
	}
	return new(big.Int).Set(a.value)
}

// Cell returns the location token of the committed value.
func (a AssignedValue) Cell() Cell {
	return a.cell
}

// UnassignedValue is a witness value that is about to be assigned. The value
// may be absent.
type UnassignedValue struct {
	value *big.Int
}

// NewUnassignedValue wraps an optional witness value. A nil value denotes an
// absent witness.
func NewUnassignedValue(value *big.Int) UnassignedValue {
	var v *big.Int
	if value != nil {
		v = new(big.Int).Set(value)
	}
	return UnassignedValue{value: v}
}

// ValueOf builds an UnassignedValue from a constant. The input is converted
// with [utils.FromInterface], so gnark-crypto field elements, strings and
// integer primitives are accepted.
func ValueOf(constant interface{}) UnassignedValue {
	b := utils.FromInterface(constant)
	return UnassignedValue{value: &b}
}

// Value returns the witness value, or nil when absent.
func (u UnassignedValue) Value() *big.Int {
	if u.value == nil {
		return nil
	}
	return new(big.Int).Set(u.value)
}

// ValueAssigner is the commit primitive supplied by the constraint-synthesis
// layer. It turns a witness value into a committed AssignedValue, allocating
// the cell. The integer core invokes it but never implements it.
type ValueAssigner interface {
	AssignValue(value UnassignedValue) (AssignedValue, error)
}

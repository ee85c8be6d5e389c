package integer

import (
	"fmt"
	"math/big"

	"github.com/AronisAt79/halo2wrong/integer/rns"
	"github.com/AronisAt79/halo2wrong/internal/utils"
	"github.com/AronisAt79/halo2wrong/maingate"
)

// AssignedLimb is a limb of a non-native integer committed into the
// constraint system. Next to the witness value and its cell it carries the
// maximum value the limb may take, used to track overflow and decide the
// reduction flow. The bound is an independent static ledger, never derived
// from the value.
//
// AssignedLimb is immutable; the bound combinators return the bound of the
// would-be result and leave the operands untouched.
type AssignedLimb struct {
	// witness value, nil for placeholder circuits
	value *rns.Limb
	// cell that this value accommodates
	cell maingate.Cell
	// maximum value to track overflow and reduction flow
	maxVal *big.Int
}

// NewAssignedLimb constructs an AssignedLimb from a committed native field
// value, its cell and the asserted maximum value. A nil value denotes an
// unassigned witness. When a value is present it must not exceed the bound;
// a violation is a programming error and panics.
func NewAssignedLimb(cell maingate.Cell, value *big.Int, maxVal *big.Int) AssignedLimb {
	var limb *rns.Limb
	if value != nil {
		l := rns.NewLimb(value)
		limb = &l
	}
	return newAssignedLimb(cell, limb, maxVal)
}

// AssignedLimbFrom constructs an AssignedLimb from an already committed value
// and an externally asserted maximum value.
func AssignedLimbFrom(assigned maingate.AssignedValue, maxVal *big.Int) AssignedLimb {
	var limb *rns.Limb
	if v := assigned.Value(); v != nil {
		l := rns.NewLimb(v)
		limb = &l
	}
	return newAssignedLimb(assigned.Cell(), limb, maxVal)
}

func newAssignedLimb(cell maingate.Cell, value *rns.Limb, maxVal *big.Int) AssignedLimb {
	if maxVal == nil {
		panic("assigned limb without max value")
	}
	if value != nil && value.Big().Cmp(maxVal) > 0 {
		panic(fmt.Sprintf("limb value %s exceeds max value %s", value.Big(), maxVal))
	}
	return AssignedLimb{
		value:  value,
		cell:   cell,
		maxVal: new(big.Int).Set(maxVal),
	}
}

// Value returns the limb in its native field representation, or nil when the
// witness is unassigned.
func (l AssignedLimb) Value() *big.Int {
	if l.value == nil {
		return nil
	}
	return l.value.Fe()
}

// Limb returns the witness limb. The second return value is false when the
// witness is unassigned.
func (l AssignedLimb) Limb() (rns.Limb, bool) {
	if l.value == nil {
		return rns.Limb{}, false
	}
	return *l.value, true
}

// Cell returns the location token of the committed limb.
func (l AssignedLimb) Cell() maingate.Cell {
	return l.cell
}

// MaxVal returns the current maximum value bound.
func (l AssignedLimb) MaxVal() *big.Int {
	return new(big.Int).Set(l.maxVal)
}

// AssignedValue represents the limb as a plain committed value. The
// conversion is lossless in value and cell but drops the bound; the caller
// forfeits the overflow ledger and must not re-derive a bound from the
// result.
func (l AssignedLimb) AssignedValue() maingate.AssignedValue {
	return maingate.NewAssignedValue(l.cell, l.Value())
}

// Bound combinators. Each returns the maximum value of the corresponding
// operation result; combining the witness values and emitting the constraint
// is the caller's responsibility.

// Add returns the bound of the sum of the two limbs.
func (l AssignedLimb) Add(other AssignedLimb) *big.Int {
	return new(big.Int).Add(l.maxVal, other.maxVal)
}

// Mul2 returns the bound of the doubled limb.
func (l AssignedLimb) Mul2() *big.Int {
	return new(big.Int).Add(l.maxVal, l.maxVal)
}

// Mul3 returns the bound of the tripled limb.
func (l AssignedLimb) Mul3() *big.Int {
	r := new(big.Int).Add(l.maxVal, l.maxVal)
	return r.Add(r, l.maxVal)
}

// AddBig returns the bound of the limb increased by a constant.
func (l AssignedLimb) AddBig(other *big.Int) *big.Int {
	return new(big.Int).Add(l.maxVal, other)
}

// AddFe returns the bound of the limb increased by a native field constant.
// The constant is converted with [utils.FromInterface].
func (l AssignedLimb) AddFe(other interface{}) *big.Int {
	b := utils.FromInterface(other)
	return l.AddBig(&b)
}

package integer

import (
	"fmt"
	"math/big"

	"github.com/AronisAt79/halo2wrong/integer/rns"
	limbs "github.com/AronisAt79/halo2wrong/internal/limbcomposition"
	"github.com/AronisAt79/halo2wrong/internal/utils"
	"github.com/AronisAt79/halo2wrong/maingate"
)

// AssignedInteger is a foreign-field element committed into the constraint
// system: a fixed-size tuple of bounded limbs, the redundant projection of
// the element into the native field, and the Rns handle shared across all
// integers emulated over the same foreign modulus.
//
// The type is a carrier, not a validator: the congruence between the limb
// composition and the native projection is the constraint emitter's
// responsibility.
type AssignedInteger[T rns.FieldParams] struct {
	// limbs of the emulated integer
	limbs []AssignedLimb
	// value in the native field
	nativeValue maingate.AssignedValue
	// rns is shared across all AssignedIntegers
	rns *rns.Rns[T]
}

// New assembles an AssignedInteger from exactly NbLimbs limbs and a native
// projection. A limb count mismatch is rejected, never truncated or padded.
func New[T rns.FieldParams](r *rns.Rns[T], ls []AssignedLimb, nativeValue maingate.AssignedValue) (*AssignedInteger[T], error) {
	if uint(len(ls)) != r.NbLimbs() {
		return nil, fmt.Errorf("limb count mismatch got %d expected %d", len(ls), r.NbLimbs())
	}
	cp := make([]AssignedLimb, len(ls))
	copy(cp, ls)
	return &AssignedInteger[T]{limbs: cp, nativeValue: nativeValue, rns: r}, nil
}

// MaxVal reconstructs the aggregate maximum value by positional composition
// of the per-limb bounds.
func (a *AssignedInteger[T]) MaxVal() *big.Int {
	res := new(big.Int)
	if err := limbs.Recompose(a.MaxVals(), a.rns.BitsPerLimb(), res); err != nil {
		panic(fmt.Errorf("recompose max values: %w", err))
	}
	return res
}

// MaxVals returns the per-limb maximum value bounds.
func (a *AssignedInteger[T]) MaxVals() []*big.Int {
	res := make([]*big.Int, len(a.limbs))
	for i := range a.limbs {
		res[i] = a.limbs[i].MaxVal()
	}
	return res
}

// RequiresReduction reports whether the aggregate bound has grown past the
// threshold above which further combination may wrap around the native
// modulus. Reduction itself belongs to the instruction layer; this core only
// surfaces the condition.
func (a *AssignedInteger[T]) RequiresReduction() bool {
	return a.MaxVal().Cmp(a.rns.MaxUnreduced()) > 0
}

// Limb returns the limb at the given position as a committed value.
func (a *AssignedInteger[T]) Limb(idx int) maingate.AssignedValue {
	return a.limbs[idx].AssignedValue()
}

// Limbs returns a copy of the bounded limb tuple.
func (a *AssignedInteger[T]) Limbs() []AssignedLimb {
	cp := make([]AssignedLimb, len(a.limbs))
	copy(cp, a.limbs)
	return cp
}

// Native returns the redundant native field projection of the element.
func (a *AssignedInteger[T]) Native() maingate.AssignedValue {
	return a.nativeValue
}

// Rns returns the shared parameter handle.
func (a *AssignedInteger[T]) Rns() *rns.Rns[T] {
	return a.rns
}

// Integer reconstructs the witness integer from the assigned limbs.
// Reconstruction is all-or-nothing: when any limb is unassigned the result is
// nil, never a partial value.
func (a *AssignedInteger[T]) Integer() *rns.Integer[T] {
	ls := make([]rns.Limb, len(a.limbs))
	for i := range a.limbs {
		l, ok := a.limbs[i].Limb()
		if !ok {
			return nil
		}
		ls[i] = l
	}
	res, err := rns.NewInteger(a.rns, ls)
	if err != nil {
		// arity is fixed for the lifetime of the instantiation
		panic(fmt.Errorf("reconstruct integer: %w", err))
	}
	return res
}

// MakeAux derives, from the current bounds, the auxiliary constant to add
// before a subtraction so that no limb can underflow. The base auxiliary
// vector composes to a multiple of the wrong modulus; every limb is shifted
// left by the same amount, the maximum shift required over all positions, so
// the result stays a power-of-two multiple of the base vector. Per-limb
// shifts would give tighter bounds but a different soundness argument and
// must not be used.
//
// The returned integer is a derived constant, not a witnessed value; no
// native consistency check applies to it.
func (a *AssignedInteger[T]) MakeAux() *rns.Integer[T] {
	baseAux := a.rns.BaseAux()
	shift := auxShift(a.MaxVals(), baseAux)
	shifted := make([]*big.Int, len(baseAux))
	for i := range baseAux {
		shifted[i] = new(big.Int).Lsh(baseAux[i], shift)
	}
	aux, err := a.rns.FromLimbs(shifted)
	if err != nil {
		panic(fmt.Errorf("aux from limbs: %w", err))
	}
	return aux
}

// auxShift returns the uniform left shift to apply to the base auxiliary
// vector: the maximum over all limb positions of the doublings needed until
// the auxiliary limb is not less than the limb's bound.
func auxShift(maxVals, baseAux []*big.Int) uint {
	if len(maxVals) == 0 || len(maxVals) != len(baseAux) {
		panic("malformed aux shift input")
	}
	maxShift := uint(0)
	for i := range maxVals {
		shift := uint(1)
		aux := new(big.Int).Set(baseAux[i])
		for maxVals[i].Cmp(aux) > 0 {
			aux.Lsh(aux, 1)
			maxShift = utils.Max(shift, maxShift)
			shift++
		}
	}
	return maxShift
}

// AssignInteger commits a witness integer through the synthesis layer's
// assigner, bounding limb i by maxVals[i], and commits the native projection
// alongside.
func AssignInteger[T rns.FieldParams](assigner maingate.ValueAssigner, r *rns.Rns[T], u UnassignedInteger[T], maxVals []*big.Int) (*AssignedInteger[T], error) {
	if uint(len(maxVals)) != r.NbLimbs() {
		return nil, fmt.Errorf("bound count mismatch got %d expected %d", len(maxVals), r.NbLimbs())
	}
	ls := make([]AssignedLimb, r.NbLimbs())
	for i := range ls {
		av, err := assigner.AssignValue(u.Limb(i))
		if err != nil {
			return nil, fmt.Errorf("assign limb %d: %w", i, err)
		}
		ls[i] = AssignedLimbFrom(av, maxVals[i])
	}
	nat, err := assigner.AssignValue(u.Native())
	if err != nil {
		return nil, fmt.Errorf("assign native value: %w", err)
	}
	return New(r, ls, nat)
}

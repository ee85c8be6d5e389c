package rns

import (
	"fmt"
	"math/big"

	limbs "github.com/AronisAt79/halo2wrong/internal/limbcomposition"
	"github.com/AronisAt79/halo2wrong/internal/utils"
)

// Limb is a single residue digit of an emulated integer. It wraps the digit
// in its native field representation; since canonical digits are always
// smaller than the native modulus, the native representation and the big
// integer form coincide and are exposed as two views over the same value.
// Limbs are immutable value types, always owned by an Integer or an assigned
// limb.
type Limb struct {
	fe *big.Int
}

// NewLimb wraps a native field value as a limb. The input is copied.
func NewLimb(fe *big.Int) Limb {
	return Limb{fe: new(big.Int).Set(fe)}
}

// LimbOf builds a limb from a constant converted with
// [utils.FromInterface].
func LimbOf(constant interface{}) Limb {
	b := utils.FromInterface(constant)
	return Limb{fe: &b}
}

// Fe returns the limb in its native field representation.
func (l Limb) Fe() *big.Int {
	return new(big.Int).Set(l.fe)
}

// Big returns the big integer form of the limb.
func (l Limb) Big() *big.Int {
	return new(big.Int).Set(l.fe)
}

// Integer is a witness-level foreign-field element: a fixed-size ordered
// tuple of limbs together with the shared Rns handle. The limb count is
// enforced at construction and never changes.
type Integer[T FieldParams] struct {
	limbs []Limb
	rns   *Rns[T]
}

// NewInteger assembles an integer from exactly NbLimbs limbs. A limb count
// mismatch is rejected, never truncated or padded.
func NewInteger[T FieldParams](rns *Rns[T], ls []Limb) (*Integer[T], error) {
	if uint(len(ls)) != rns.NbLimbs() {
		return nil, fmt.Errorf("limb count mismatch got %d expected %d", len(ls), rns.NbLimbs())
	}
	cp := make([]Limb, len(ls))
	copy(cp, ls)
	return &Integer[T]{limbs: cp, rns: rns}, nil
}

// FromLimbs assembles an integer from raw limb values.
func (r *Rns[T]) FromLimbs(values []*big.Int) (*Integer[T], error) {
	if uint(len(values)) != r.NbLimbs() {
		return nil, fmt.Errorf("limb count mismatch got %d expected %d", len(values), r.NbLimbs())
	}
	ls := make([]Limb, len(values))
	for i := range values {
		ls[i] = NewLimb(values[i])
	}
	return &Integer[T]{limbs: ls, rns: r}, nil
}

// FromBig decomposes a big integer into an Integer. The input is first
// reduced modulo the wrong modulus, so decomposition always fits the fixed
// limb count.
func (r *Rns[T]) FromBig(v *big.Int) *Integer[T] {
	e := new(big.Int).Mod(v, r.fParams.Modulus())
	bLimbs := make([]*big.Int, r.NbLimbs())
	for i := range bLimbs {
		bLimbs[i] = new(big.Int)
	}
	if err := limbs.Decompose(e, r.BitsPerLimb(), bLimbs); err != nil {
		panic(fmt.Errorf("decompose value: %w", err))
	}
	ls := make([]Limb, len(bLimbs))
	for i := range bLimbs {
		ls[i] = NewLimb(bLimbs[i])
	}
	return &Integer[T]{limbs: ls, rns: r}
}

// FromInterface decomposes a constant converted with [utils.FromInterface].
func (r *Rns[T]) FromInterface(constant interface{}) *Integer[T] {
	b := utils.FromInterface(constant)
	return r.FromBig(&b)
}

// Value reconstructs the represented big integer by positional composition of
// the limbs.
func (i *Integer[T]) Value() *big.Int {
	bigs := make([]*big.Int, len(i.limbs))
	for j := range i.limbs {
		bigs[j] = i.limbs[j].Big()
	}
	res := new(big.Int)
	if err := limbs.Recompose(bigs, i.rns.BitsPerLimb(), res); err != nil {
		panic(fmt.Errorf("recompose value: %w", err))
	}
	return res
}

// Native returns the element projected into the native field, used by
// downstream consistency checks.
func (i *Integer[T]) Native() *big.Int {
	return new(big.Int).Mod(i.Value(), i.rns.nativeModulus)
}

// Limb returns the limb at the given position.
func (i *Integer[T]) Limb(idx int) Limb {
	return i.limbs[idx]
}

// Limbs returns a copy of the limb tuple.
func (i *Integer[T]) Limbs() []Limb {
	cp := make([]Limb, len(i.limbs))
	copy(cp, i.limbs)
	return cp
}

// Rns returns the shared parameter handle.
func (i *Integer[T]) Rns() *Rns[T] {
	return i.rns
}

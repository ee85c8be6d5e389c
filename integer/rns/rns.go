// Package rns implements the residue number system representation used to
// emulate arithmetic over a foreign (wrong) prime field inside a native prime
// field. A foreign-field element is decomposed into fixed-width limbs; the
// Rns object carries every per-instantiation constant derived from the
// foreign modulus and the native modulus.
package rns

import (
	"fmt"
	"math/big"

	limbs "github.com/AronisAt79/halo2wrong/internal/limbcomposition"
	"github.com/AronisAt79/halo2wrong/logger"
)

// FieldParams describes the emulated (wrong) field characteristics.
type FieldParams interface {
	NbLimbs() uint
	BitsPerLimb() uint // number of bits per limb. Top limb may contain less than BitsPerLimb bits.
	IsPrime() bool
	Modulus() *big.Int
}

// Rns carries the constants shared by every integer emulated over the same
// foreign modulus. It is immutable after construction and shared by pointer
// across all integers of one circuit-building session, so concurrent readers
// are safe.
type Rns[T FieldParams] struct {
	fParams T

	nativeModulus *big.Int

	// limb decomposition of the wrong modulus and its projection into the
	// native field
	wrongModulusLimbs    []*big.Int
	wrongModulusInNative *big.Int

	// baseAux composes to a multiple of the wrong modulus while every limb
	// exceeds the maximum reduced limb value. Doubling the whole vector keeps
	// both properties, which is what aux construction relies on.
	baseAux []*big.Int

	maxReducedLimb   *big.Int
	maxUnreducedLimb *big.Int
	maxUnreduced     *big.Int
	maxOverflow      uint
}

// New derives the RNS constants for the wrong field given by the type
// parameter over the given native modulus.
func New[T FieldParams](nativeModulus *big.Int) (*Rns[T], error) {
	r := &Rns[T]{}

	if nativeModulus == nil || nativeModulus.Cmp(big.NewInt(1)) < 1 {
		return nil, fmt.Errorf("native modulus must be at least 2")
	}

	if r.fParams.IsPrime() {
		if !r.fParams.Modulus().ProbablyPrime(20) {
			return nil, fmt.Errorf("invalid parametrization: modulus is not prime")
		}
	}

	if r.fParams.BitsPerLimb() < 3 {
		// even three is way too small, but it should probably work.
		return nil, fmt.Errorf("nbBits must be at least 3")
	}

	if r.fParams.Modulus().Cmp(big.NewInt(1)) < 1 {
		return nil, fmt.Errorf("wrong modulus must be at least 2")
	}

	nbLimbs := (uint(r.fParams.Modulus().BitLen()) + r.fParams.BitsPerLimb() - 1) / r.fParams.BitsPerLimb()
	if nbLimbs != r.fParams.NbLimbs() {
		return nil, fmt.Errorf("nbLimbs mismatch got %d expected %d", r.fParams.NbLimbs(), nbLimbs)
	}

	if uint(nativeModulus.BitLen()) < 2*r.fParams.BitsPerLimb()+1 {
		return nil, fmt.Errorf("elements with limb length %d do not fit into native field", r.fParams.BitsPerLimb())
	}

	r.nativeModulus = new(big.Int).Set(nativeModulus)

	r.wrongModulusLimbs = make([]*big.Int, r.fParams.NbLimbs())
	for i := range r.wrongModulusLimbs {
		r.wrongModulusLimbs[i] = new(big.Int)
	}
	if err := limbs.Decompose(r.fParams.Modulus(), r.fParams.BitsPerLimb(), r.wrongModulusLimbs); err != nil {
		return nil, fmt.Errorf("decompose wrong modulus: %w", err)
	}
	r.wrongModulusInNative = new(big.Int).Mod(r.fParams.Modulus(), r.nativeModulus)

	r.baseAux = calculateBaseAux(r.fParams.Modulus(), r.fParams.NbLimbs(), r.fParams.BitsPerLimb())

	one := big.NewInt(1)
	r.maxReducedLimb = new(big.Int).Lsh(one, r.fParams.BitsPerLimb())
	r.maxReducedLimb.Sub(r.maxReducedLimb, one)

	// a limb bound may grow up to one bit below the native modulus bit length
	// before the next addition can wrap around the native field
	r.maxOverflow = uint(r.nativeModulus.BitLen()-1) - r.fParams.BitsPerLimb()
	r.maxUnreducedLimb = new(big.Int).Lsh(one, r.fParams.BitsPerLimb()+r.maxOverflow)
	r.maxUnreducedLimb.Sub(r.maxUnreducedLimb, one)

	unreduced := make([]*big.Int, r.fParams.NbLimbs())
	for i := range unreduced {
		unreduced[i] = new(big.Int).Set(r.maxUnreducedLimb)
	}
	r.maxUnreduced = new(big.Int)
	if err := limbs.Recompose(unreduced, r.fParams.BitsPerLimb(), r.maxUnreduced); err != nil {
		return nil, fmt.Errorf("recompose max unreduced: %w", err)
	}

	log := logger.Logger()
	log.Debug().
		Int("wrongBitLen", r.fParams.Modulus().BitLen()).
		Int("nativeBitLen", r.nativeModulus.BitLen()).
		Uint("nbLimbs", r.fParams.NbLimbs()).
		Uint("bitsPerLimb", r.fParams.BitsPerLimb()).
		Msg("derived rns parameters")

	return r, nil
}

// calculateBaseAux returns the base auxiliary vector. Denote the vector
// b=(b[0], ..., b[nbLimbs-1]). It satisfies, by construction:
//
//	compose(b) = k*p for some k >= 1
//	b[i] >= 2^bitsPerLimb for every i
//
// so that adding b limb-wise before a subtraction prevents underflow without
// changing the represented value modulo p.
func calculateBaseAux(p *big.Int, nbLimbs, bitsPerLimb uint) []*big.Int {
	// start with the per-limb power of two strictly above any reduced limb
	nLimbs := make([]*big.Int, nbLimbs)
	for i := range nLimbs {
		nLimbs[i] = new(big.Int).Lsh(big.NewInt(1), bitsPerLimb)
	}

	n := new(big.Int)
	if err := limbs.Recompose(nLimbs, bitsPerLimb, n); err != nil {
		panic(fmt.Sprintf("recompose: %v", err))
	}

	// lift the composition to the next multiple of p by adding the deficit
	// back limb-wise
	n.Mod(n, p)
	n.Sub(p, n)

	aux := make([]*big.Int, nbLimbs)
	for i := range aux {
		aux[i] = new(big.Int)
	}
	if err := limbs.Decompose(n, bitsPerLimb, aux); err != nil {
		panic(fmt.Sprintf("decompose: %v", err))
	}
	for i := range aux {
		aux[i].Add(aux[i], nLimbs[i])
	}
	return aux
}

// NbLimbs returns the fixed limb count of the instantiation.
func (r *Rns[T]) NbLimbs() uint {
	return r.fParams.NbLimbs()
}

// BitsPerLimb returns the fixed limb width of the instantiation.
func (r *Rns[T]) BitsPerLimb() uint {
	return r.fParams.BitsPerLimb()
}

// WrongModulus returns the emulated field modulus.
func (r *Rns[T]) WrongModulus() *big.Int {
	return new(big.Int).Set(r.fParams.Modulus())
}

// NativeModulus returns the native field modulus.
func (r *Rns[T]) NativeModulus() *big.Int {
	return new(big.Int).Set(r.nativeModulus)
}

// WrongModulusLimbs returns the limb decomposition of the wrong modulus.
func (r *Rns[T]) WrongModulusLimbs() []*big.Int {
	return copyBigs(r.wrongModulusLimbs)
}

// WrongModulusInNative returns the wrong modulus reduced into the native
// field.
func (r *Rns[T]) WrongModulusInNative() *big.Int {
	return new(big.Int).Set(r.wrongModulusInNative)
}

// BaseAux returns the base auxiliary vector used for safe subtraction.
func (r *Rns[T]) BaseAux() []*big.Int {
	return copyBigs(r.baseAux)
}

// MaxReducedLimb returns the largest value a limb of a reduced integer may
// take.
func (r *Rns[T]) MaxReducedLimb() *big.Int {
	return new(big.Int).Set(r.maxReducedLimb)
}

// MaxUnreducedLimb returns the largest bound a limb may reach before the next
// operation can wrap around the native modulus.
func (r *Rns[T]) MaxUnreducedLimb() *big.Int {
	return new(big.Int).Set(r.maxUnreducedLimb)
}

// MaxUnreduced returns the aggregate bound threshold above which an integer
// must be reduced before further combination.
func (r *Rns[T]) MaxUnreduced() *big.Int {
	return new(big.Int).Set(r.maxUnreduced)
}

// MaxOverflow returns the number of overflow bits a limb bound may accumulate
// on top of the limb width before reduction is mandatory.
func (r *Rns[T]) MaxOverflow() uint {
	return r.maxOverflow
}

func copyBigs(in []*big.Int) []*big.Int {
	out := make([]*big.Int, len(in))
	for i := range in {
		out[i] = new(big.Int).Set(in[i])
	}
	return out
}

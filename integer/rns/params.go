package rns

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/field/goldilocks"
)

var qSecp256k1 *big.Int

func init() {
	qSecp256k1, _ = new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
}

type fourLimb68 struct{}

func (fourLimb68) NbLimbs() uint     { return 4 }
func (fourLimb68) BitsPerLimb() uint { return 68 }
func (fourLimb68) IsPrime() bool     { return true }

// Secp256k1Fp provides type parametrization for emulating the secp256k1 base
// field on 4 limbs of width 68 bits for modulus
// 0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f
type Secp256k1Fp struct{ fourLimb68 }

func (fp Secp256k1Fp) Modulus() *big.Int { return new(big.Int).Set(qSecp256k1) }

// BN254Fp provides type parametrization for emulating the BN254 base field on
// 4 limbs of width 68 bits for modulus
// 0x30644e72e131a029b85045b68181585d97816a916871ca8d3c208c16d87cfd47
type BN254Fp struct{ fourLimb68 }

func (fp BN254Fp) Modulus() *big.Int { return ecc.BN254.BaseField() }

// BLS12377Fp provides type parametrization for emulating the BLS12-377 base
// field on 6 limbs of width 66 bits.
type BLS12377Fp struct{}

func (fp BLS12377Fp) NbLimbs() uint     { return 6 }
func (fp BLS12377Fp) BitsPerLimb() uint { return 66 }
func (fp BLS12377Fp) IsPrime() bool     { return true }
func (fp BLS12377Fp) Modulus() *big.Int { return ecc.BLS12_377.BaseField() }

// Goldilocks provides type parametrization for emulating the Goldilocks field
// on 1 limb of width 64 bits for modulus 0xffffffff00000001
type Goldilocks struct{}

func (fp Goldilocks) NbLimbs() uint     { return 1 }
func (fp Goldilocks) BitsPerLimb() uint { return 64 }
func (fp Goldilocks) IsPrime() bool     { return true }
func (fp Goldilocks) Modulus() *big.Int { return goldilocks.Modulus() }

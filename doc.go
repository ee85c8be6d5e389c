// Package halo2wrong provides emulated (wrong field) arithmetic building
// blocks for proving systems whose native field differs from the field the
// computation is defined over.
//
// A foreign-field element is represented as a tuple of bounded native-field
// limbs; see the integer and integer/rns packages. The constraint-synthesis
// contract consumed by those packages is defined in the maingate package.
package halo2wrong

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")

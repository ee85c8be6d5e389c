/*
Package integer implements the in-circuit representation of foreign-field
elements: limbed integers committed into a constraint system together with the
statically tracked bounds that prove no limb ever wraps around the native
modulus.

A witness value starts as an [UnassignedInteger]. Once committed through the
synthesis layer it becomes an [AssignedInteger] whose limbs carry explicit
maximum-value bounds. Arithmetic combinators never mutate their operands; each
produces a fresh value with an updated bound, computed purely from the operand
bounds. When an aggregate bound exceeds the threshold given by the shared
[rns.Rns] parameters, the caller must reduce the integer before combining it
further; this package only surfaces the condition.

Subtraction inside the circuit is made safe against limb underflow by adding
an auxiliary constant derived with [AssignedInteger.MakeAux]: a power-of-two
multiple of the base auxiliary vector, so the represented value is unchanged
modulo the foreign modulus.
*/
package integer

// NumberOfLookupLimbs is the number of sub-limbs each limb is decomposed into
// for fine-grained range checking. The range checker supports up to four full
// limb decompositions of a value: a 68-bit limb is decomposed into four
// 17-bit sub-limbs.
const NumberOfLookupLimbs = 4

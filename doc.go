/*
Package evmmath implements fixed-point decimal arithmetic over arbitrary
precision integers, with the rounding semantics of EVM smart contracts.
It is specifically designed for off-chain systems that must reproduce
on-chain results bit for bit.

# Representation

A fixed-point number is an integer v together with a power-of-ten scale S.
The numerical value is v / S.
For example, with the 18-digit [WadScale] the integer 1_500_000_000_000_000_000
represents 1.5.

The package works on two levels:

  - Functions such as [MulDiv], [Pow], [Sqrt] and [ExpTaylorN] take and
    return [big.Int] values together with an explicit [Scale] or precision.
    Inputs are never modified, and results are always fresh values.
  - [Fixed] binds a scaled integer to its unit at compile time.
    The aliases [Percent], [Wad] and [Ray] cover the common units, and
    [Convert] is the only way to mix them.

# Scales

The following scales are predefined:

	| Scale          | Digits | One                                     |
	| -------------- | ------ | --------------------------------------- |
	| [Unscaled]     | 0      | 1                                       |
	| [PercentScale] | 4      | 10_000                                  |
	| [WadScale]     | 18     | 1_000_000_000_000_000_000               |
	| [RayScale]     | 27     | 1_000_000_000_000_000_000_000_000_000   |

Other scales can be created with [NewScale], up to [MaxPrec] digits.

# Rounding

Every inexact quotient is rounded explicitly using one of three modes:

  - [Down]: truncation towards zero.
  - [Up]: the smallest integer not less than the quotient.
  - [HalfUp]: the nearest integer, with ties rounded up.

The formulas are the ones used by Solidity libraries, evaluated with integer
division that truncates towards zero.
For negative operands the same formulas are applied literally.

# Operations

Each multiplication and division is carried out in two steps:

 1. The operation is initially performed using 256-bit arithmetic with
    a 512-bit intermediate product.
    If all operands are non-negative and no overflow occurs, the exact
    result is immediately returned.
 2. Otherwise the operation is repeated using [big.Int] arithmetic.

Both steps produce identical results.

# Errors

Errors are returned in the following cases:

  - Division by Zero.
    [MulDiv] and the division methods return an error when dividing by 0,
    unless the dividend is 0.
  - Invalid Operation.
    [Pow] and [ExpTaylorN] return an error for a negative exponent or
    number of terms, and [Sqrt] returns an error for a negative operand.
  - Invalid Rounding Mode.
    Functions taking a [RoundingMode] return an error for undefined modes.

Functions prefixed with Must panic instead of returning an error.

[big.Int]: https://pkg.go.dev/math/big#Int
*/
package evmmath

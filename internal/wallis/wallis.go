// Package wallis computes finite truncations of Wallis' infinite product:
//
//	π = 2·∏_{i=1}^∞ (4i²)/(4i²−1)
//
// The primary strategy accumulates numerator and denominator as exact
// big.Int products and performs a single correctly-rounded division at the
// end. The individual accumulators outgrow int64 after a handful of terms
// (the numerator alone passes 2^63 around n=8), so fixed-width arithmetic
// would silently corrupt the result long before the ratio itself misbehaves.
// Deferring the float conversion to one final step keeps every intermediate
// value exact.
//
// A secondary strategy (RunningRatio) multiplies the per-term ratios in
// float64. It never forms the huge intermediates, at the cost of one
// rounding per term; the two agree to roughly 1e-13 relative error for
// practical n.
//
// Convergence is slow, O(1/n): n=1000 yields about three correct digits.
package wallis

import "math/big"

// Method names an approximation strategy.
type Method string

const (
	// MethodExact is the exact-integer accumulation strategy.
	MethodExact Method = "exact"

	// MethodRatio is the running floating-point ratio strategy.
	MethodRatio Method = "ratio"
)

// Valid reports whether m names a registered strategy.
func (m Method) Valid() bool {
	return m == MethodExact || m == MethodRatio
}

// Approximate returns the n-term Wallis approximation of π using exact
// integer accumulation.
//
// n == 0 is the empty product and yields exactly 2.0. Negative n is a
// domain violation and returns a DomainError with code INVALID_ARGUMENT.
//
// The result is deterministic: the same n always yields a bit-identical
// float64, regardless of platform, because the only rounding step is the
// final correctly-rounded rational-to-float conversion.
func Approximate(n int) (float64, error) {
	num, den, err := Product(n)
	if err != nil {
		return 0, err
	}
	return FromProduct(num, den), nil
}

// FromProduct performs the single terminating conversion of the exact
// accumulators: 2·num/den, correctly rounded to float64.
//
// Callers that already hold the accumulators (for digit counts or other
// inspection) use this instead of Approximate to avoid redoing the
// accumulation.
func FromProduct(num, den *big.Int) float64 {
	r := new(big.Rat).SetFrac(num, den)
	r.Mul(r, big.NewRat(2, 1))
	f, _ := r.Float64()
	return f
}

// RunningRatio returns the n-term Wallis approximation of π using a
// float64 running ratio, the overflow-free alternative to Approximate.
//
// Each term contributes one multiplication `ratio *= term/(term−1)`, so
// rounding error grows with n; callers wanting the reference semantics
// should use Approximate. Domain contract is identical to Approximate.
func RunningRatio(n int) (float64, error) {
	if n < 0 {
		return 0, newInvalidArgument(n)
	}
	ratio := 1.0
	for i := 1; i <= n; i++ {
		term := 4 * float64(i) * float64(i)
		ratio *= term / (term - 1)
	}
	return 2 * ratio, nil
}

// ApproximateWith dispatches to the strategy named by method.
// Unknown methods return a DomainError with code UNKNOWN_METHOD.
func ApproximateWith(method Method, n int) (float64, error) {
	switch method {
	case MethodExact:
		return Approximate(n)
	case MethodRatio:
		return RunningRatio(n)
	}
	return 0, newUnknownMethod(method)
}

// Product returns the exact partial-product accumulators for n terms:
// numerator = ∏ (2i)², denominator = ∏ ((2i)²−1), both starting at 1.
//
// Exposed so callers can inspect accumulator magnitude (digit counts in
// sweep reports) without redoing the accumulation.
func Product(n int) (num, den *big.Int, err error) {
	if n < 0 {
		return nil, nil, newInvalidArgument(n)
	}
	num = big.NewInt(1)
	den = big.NewInt(1)
	term := new(big.Int)
	for i := int64(1); i <= int64(n); i++ {
		term.SetInt64(4 * i * i)
		num.Mul(num, term)
		term.Sub(term, bigOne)
		den.Mul(den, term)
	}
	return num, den, nil
}

// DecimalDigits returns the number of decimal digits of a positive integer.
func DecimalDigits(x *big.Int) int {
	return len(x.Text(10))
}

var bigOne = big.NewInt(1)

package sweep

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/roach88/wallis/internal/wallis"
)

// Row is one evaluated point of a sweep.
type Row struct {
	// N is the term count.
	N int `json:"n"`

	// Value is the computed approximation.
	Value float64 `json:"value"`

	// AbsError is |Value − π|, with π the nearest float64 to the constant.
	AbsError float64 `json:"abs_error"`

	// NumeratorDigits and DenominatorDigits are the decimal digit counts of
	// the exact accumulators. Zero for the ratio method, which never forms
	// the integer products.
	NumeratorDigits   int `json:"numerator_digits,omitempty"`
	DenominatorDigits int `json:"denominator_digits,omitempty"`
}

// Report is the result of running a sweep.
type Report struct {
	Sweep *Sweep `json:"sweep"`
	Rows  []Row  `json:"rows"`
}

// Run evaluates every point of the sweep in order.
//
// Points are already validated as non-negative, so the only error path is
// an unknown method, which Load has also already rejected; Run still
// propagates domain errors rather than panicking so programmatic callers
// constructing Sweep values directly get the same contract as the core.
func Run(s *Sweep, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	report := &Report{
		Sweep: s,
		Rows:  make([]Row, 0, len(s.Points)),
	}

	for _, n := range s.Points {
		var row Row
		if s.Method == wallis.MethodExact {
			// Accumulate once; the value and the digit counts both come
			// from the same product.
			num, den, err := wallis.Product(n)
			if err != nil {
				return nil, fmt.Errorf("point n=%d: %w", n, err)
			}
			value := wallis.FromProduct(num, den)
			row = Row{
				N:                 n,
				Value:             value,
				AbsError:          math.Abs(value - math.Pi),
				NumeratorDigits:   wallis.DecimalDigits(num),
				DenominatorDigits: wallis.DecimalDigits(den),
			}
		} else {
			value, err := wallis.ApproximateWith(s.Method, n)
			if err != nil {
				return nil, fmt.Errorf("point n=%d: %w", n, err)
			}
			row = Row{
				N:        n,
				Value:    value,
				AbsError: math.Abs(value - math.Pi),
			}
		}

		report.Rows = append(report.Rows, row)

		logger.Debug("sweep point evaluated",
			"sweep", s.Name,
			"n", n,
			"value", row.Value,
			"abs_error", row.AbsError,
		)
	}

	return report, nil
}

// Check validates the convergence properties of a completed report:
// absolute error must be non-increasing across the ordered points, and if
// the sweep declares a tolerance, the final point must be within it.
func (r *Report) Check() error {
	for i := 1; i < len(r.Rows); i++ {
		if r.Rows[i].AbsError > r.Rows[i-1].AbsError {
			return &ConvergenceError{
				Code:  ErrCodeErrorIncreased,
				Sweep: r.Sweep.Name,
				N:     r.Rows[i].N,
				Message: fmt.Sprintf("abs error increased from %v (n=%d) to %v (n=%d)",
					r.Rows[i-1].AbsError, r.Rows[i-1].N, r.Rows[i].AbsError, r.Rows[i].N),
			}
		}
	}

	if r.Sweep.Tolerance > 0 && len(r.Rows) > 0 {
		last := r.Rows[len(r.Rows)-1]
		if last.AbsError > r.Sweep.Tolerance {
			return &ConvergenceError{
				Code:  ErrCodeToleranceExceeded,
				Sweep: r.Sweep.Name,
				N:     last.N,
				Message: fmt.Sprintf("abs error %v at n=%d exceeds tolerance %v",
					last.AbsError, last.N, r.Sweep.Tolerance),
			}
		}
	}

	return nil
}

package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/wallis/internal/wallis"
)

// ApproxOptions holds flags for the approx command.
type ApproxOptions struct {
	*RootOptions
	Method string
	Digits bool
}

// ApproxResult is the payload for a single approximation.
type ApproxResult struct {
	N                 int     `json:"n"`
	Method            string  `json:"method"`
	Value             float64 `json:"value"`
	AbsError          float64 `json:"abs_error"`
	NumeratorDigits   int     `json:"numerator_digits,omitempty"`
	DenominatorDigits int     `json:"denominator_digits,omitempty"`
}

// NewApproxCommand creates the approx command.
func NewApproxCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ApproxOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "approx <n>",
		Short: "Compute the n-term Wallis approximation of pi",
		Long: `Compute a finite truncation of Wallis' infinite product.

The exact method accumulates numerator and denominator as arbitrary-precision
integers and divides once at the end; the ratio method keeps a running
float64 ratio and never forms the large intermediates.

Example:
  wallis approx 1000
  wallis approx 100000 --digits
  wallis approx 1000 --method ratio`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApprox(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Method, "method", string(wallis.MethodExact), "approximation method (exact|ratio)")
	cmd.Flags().BoolVar(&opts.Digits, "digits", false, "report accumulator digit counts (exact method only)")

	return cmd
}

func runApprox(opts *ApproxOptions, arg string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	n, err := strconv.Atoi(arg)
	if err != nil {
		outErr := formatter.Error(ErrCodeBadArgs, fmt.Sprintf("term count must be an integer, got %q", arg), nil)
		if outErr != nil {
			return outErr
		}
		return NewExitError(ExitCommandError, ErrCodeBadArgs+": invalid term count")
	}

	method := wallis.Method(opts.Method)
	wantDigits := opts.Digits && method == wallis.MethodExact

	result := ApproxResult{N: n, Method: string(method)}
	if wantDigits {
		// Accumulate once and derive both the value and the digit counts.
		num, den, err := wallis.Product(n)
		if err != nil {
			if outErr := formatter.Error(ErrCodeDomain, err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, ErrCodeDomain, err)
		}
		result.Value = wallis.FromProduct(num, den)
		result.NumeratorDigits = wallis.DecimalDigits(num)
		result.DenominatorDigits = wallis.DecimalDigits(den)
	} else {
		value, err := wallis.ApproximateWith(method, n)
		if err != nil {
			if outErr := formatter.Error(ErrCodeDomain, err.Error(), nil); outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, ErrCodeDomain, err)
		}
		result.Value = value
	}
	result.AbsError = math.Abs(result.Value - math.Pi)

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "wallis(%d) = %s (abs error %s)\n",
		result.N, formatFloat(result.Value), formatFloat(result.AbsError))
	if opts.Digits && method == wallis.MethodExact {
		fmt.Fprintf(formatter.Writer, "accumulators: %d/%d decimal digits\n",
			result.NumeratorDigits, result.DenominatorDigits)
	}
	return nil
}

// formatFloat renders a float64 as its shortest round-trip decimal,
// matching the sweep report rendering.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

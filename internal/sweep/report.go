package sweep

import (
	"fmt"
	"io"
	"strconv"

	"github.com/roach88/wallis/internal/wallis"
)

// Render writes the report in its canonical text form.
//
// The output is byte-deterministic for a given report: floats use the
// shortest round-trip decimal representation, so golden files and stored
// renderings never drift between runs or platforms.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "sweep: %s\n", r.Sweep.Name); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "method: %s\n", r.Sweep.Method); err != nil {
		return err
	}
	if r.Sweep.Tolerance > 0 {
		if _, err := fmt.Fprintf(w, "tolerance: %s\n", formatFloat(r.Sweep.Tolerance)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "points: %d\n", len(r.Rows)); err != nil {
		return err
	}

	for _, row := range r.Rows {
		line := fmt.Sprintf("n=%d value=%s abs_error=%s",
			row.N, formatFloat(row.Value), formatFloat(row.AbsError))
		if r.Sweep.Method == wallis.MethodExact {
			line += fmt.Sprintf(" digits=%d/%d", row.NumeratorDigits, row.DenominatorDigits)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// formatFloat renders a float64 as its shortest round-trip decimal.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

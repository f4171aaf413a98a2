package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/wallis/internal/schema"
	"github.com/roach88/wallis/internal/store"
	"github.com/roach88/wallis/internal/sweep"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Database string
}

// VerifyResult is the payload for a verification run.
type VerifyResult struct {
	Sweep      string           `json:"sweep"`
	Points     int              `json:"points"`
	Mismatches []store.Mismatch `json:"mismatches,omitempty"`
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify <sweep.yaml>",
		Short: "Recompute a sweep and compare against stored records",
		Long: `Recompute every point of a sweep and compare against the records
stored by a previous 'wallis sweep --db' run.

The core is a pure deterministic function, so stored and recomputed values
must match bit for bit. Any mismatch means the baseline and the current
implementation disagree.

Example:
  wallis verify sweeps/convergence.yaml --db records.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the record store (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runVerify(opts *VerifyOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	// Same schema pass as the sweep command, so the two report identical
	// positioned diagnostics for the same malformed file.
	if errs := schema.Validate(path); len(errs) > 0 {
		for _, err := range errs {
			if outErr := formatter.Error(ErrCodeSweepFile, err.Error(), nil); outErr != nil {
				return outErr
			}
		}
		return NewExitError(ExitFailure, ErrCodeSweepFile+": sweep file failed validation")
	}

	s, err := sweep.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, ErrCodeSweepFile, err)
	}

	report, err := sweep.Run(s, slog.Default())
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeDomain, err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeStore, err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing record store", "error", closeErr)
		}
	}()

	mismatches, err := st.Verify(cmd.Context(), report)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeStore, err)
	}

	result := VerifyResult{
		Sweep:      s.Name,
		Points:     len(report.Rows),
		Mismatches: mismatches,
	}

	if len(mismatches) == 0 {
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ verified %d point(s) against %s\n", result.Points, opts.Database)
		return nil
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(formatter.Writer, "✗ %d of %d point(s) failed verification\n", len(mismatches), result.Points)
		for _, m := range mismatches {
			fmt.Fprintf(formatter.Writer, "  %s\n", m.String())
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("%s: %d mismatch(es)", ErrCodeVerifyFail, len(mismatches)))
}

package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/wallis/internal/schema"
	"github.com/roach88/wallis/internal/store"
	"github.com/roach88/wallis/internal/sweep"
)

// SweepOptions holds flags for the sweep command.
type SweepOptions struct {
	*RootOptions
	Database  string
	Tolerance float64
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SweepOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sweep <sweep.yaml>",
		Short: "Run a convergence sweep",
		Long: `Validate, load, and run a sweep definition, printing the report.

The report shows the approximation, its absolute error against pi, and the
accumulator digit counts at every point. The convergence check fails if the
error ever grows between points or misses the declared tolerance.

Example:
  wallis sweep sweeps/convergence.yaml
  wallis sweep sweeps/convergence.yaml --db records.db
  wallis sweep sweeps/convergence.yaml --tolerance 0.0001`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "record results to this SQLite database")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 0, "override the sweep file's tolerance")

	return cmd
}

func runSweep(opts *SweepOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	// Schema validation first: positioned errors beat YAML decode errors.
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
	if opts.Tolerance > 0 {
		s.Tolerance = opts.Tolerance
	}

	slog.Info("running sweep", "sweep", s.Name, "method", s.Method, "points", len(s.Points))
	report, err := sweep.Run(s, slog.Default())
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeDomain, err)
	}

	if opts.Database != "" {
		if err := recordReport(opts.Database, report, cmd); err != nil {
			return err
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		if err := report.Render(formatter.Writer); err != nil {
			return err
		}
	}

	if err := report.Check(); err != nil {
		if outErr := formatter.Error(ErrCodeConverge, err.Error(), nil); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, ErrCodeConverge, err)
	}

	return nil
}

// recordReport persists every report row to the record store.
func recordReport(dbPath string, report *sweep.Report, cmd *cobra.Command) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeStore, err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing record store", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if err := st.WriteReport(ctx, report); err != nil {
		return WrapExitError(ExitCommandError, ErrCodeStore, err)
	}

	slog.Info("report recorded", "sweep", report.Sweep.Name, "points", len(report.Rows), "db", dbPath)
	return nil
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/wallis/internal/schema"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	File   string   `json:"file"`
	Errors []string `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <sweep.yaml>",
		Short: "Validate a sweep file without running it",
		Long: `Validate a sweep definition against the embedded CUE schema.

Performs type and range checking without computing anything. Faster than
sweep for development feedback on sweep files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,  // Don't print usage on errors
		SilenceErrors: true,  // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidateSweep(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidateSweep(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	errs := schema.Validate(path)
	if len(errs) == 0 {
		result := ValidationResult{Valid: true, File: path}
		if formatter.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintf(formatter.Writer, "✓ sweep file valid: %s\n", path)
		return nil
	}

	// A file we couldn't read is a command error; a file that fails the
	// schema is a validation failure.
	exitCode := ExitFailure
	var ve *schema.ValidationError
	if errors.As(errs[0], &ve) && ve.Code == schema.ErrCodeReadFailed {
		exitCode = ExitCommandError
	}

	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = err.Error()
	}

	if formatter.Format == "json" {
		if err := formatter.Success(ValidationResult{Valid: false, File: path, Errors: messages}); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(formatter.Writer, "✗ sweep file invalid: %s\n", path)
		for _, msg := range messages {
			fmt.Fprintf(formatter.Writer, "  %s\n", msg)
		}
	}

	return NewExitError(exitCode, fmt.Sprintf("%s: sweep file failed validation (%d error(s))", ErrCodeSweepFile, len(errs)))
}

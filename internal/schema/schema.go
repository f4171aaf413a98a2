// Package schema validates sweep definition files against an embedded CUE
// schema before they are parsed and executed. CUE catches type and range
// violations with positioned errors; ordering constraints between points
// stay in the sweep package's Go validation.
package schema

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed sweep.cue
var sweepSchema string

// Error codes for sweep file validation.
const (
	ErrCodeInternal    = "E200" // Embedded schema failed to compile
	ErrCodeReadFailed  = "E201" // Sweep file could not be read
	ErrCodeParseFailed = "E202" // Sweep file is not valid YAML
	ErrCodeViolation   = "E203" // Sweep file violates the schema
)

// ValidationError represents a single schema violation in a sweep file.
type ValidationError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *ValidationError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate checks a sweep YAML file against the embedded schema.
// Returns nil when the file conforms; otherwise all violations found.
func Validate(path string) []error {
	data, err := os.ReadFile(path)
	if err != nil {
		return []error{&ValidationError{
			Code:    ErrCodeReadFailed,
			Message: fmt.Sprintf("failed to read sweep file: %v", err),
		}}
	}
	return ValidateBytes(path, data)
}

// ValidateBytes checks sweep YAML bytes against the embedded schema.
// The filename is used for error positions only.
func ValidateBytes(filename string, data []byte) []error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(sweepSchema, cue.Filename("sweep.cue"))
	if err := schema.Err(); err != nil {
		return []error{&ValidationError{
			Code:    ErrCodeInternal,
			Message: fmt.Sprintf("embedded schema failed to compile: %v", err),
		}}
	}
	def := schema.LookupPath(cue.ParsePath("#Sweep"))
	if err := def.Err(); err != nil {
		return []error{&ValidationError{
			Code:    ErrCodeInternal,
			Message: fmt.Sprintf("schema definition #Sweep not found: %v", err),
		}}
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return []error{&ValidationError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("failed to parse YAML: %v", err),
		}}
	}

	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return []error{&ValidationError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("failed to build sweep value: %v", err),
		}}
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		var errs []error
		for _, e := range cueerrors.Errors(err) {
			errs = append(errs, &ValidationError{
				Code:    ErrCodeViolation,
				Message: e.Error(),
				Pos:     e.Position(),
			})
		}
		return errs
	}

	return nil
}

package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConformingSweep(t *testing.T) {
	errs := ValidateBytes("good.yaml", []byte(`
name: convergence_basic
description: error shrinks as terms are added
method: exact
points: [0, 1, 10, 100]
tolerance: 0.01
`))
	assert.Empty(t, errs)
}

func TestValidateMinimalSweep(t *testing.T) {
	// description, method, and tolerance are optional.
	errs := ValidateBytes("minimal.yaml", []byte("name: minimal\npoints: [5]\n"))
	assert.Empty(t, errs)
}

func TestValidateRejectsEmptyName(t *testing.T) {
	errs := ValidateBytes("bad.yaml", []byte(`name: ""
points: [1]
`))
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), ErrCodeViolation)
}

func TestValidateRejectsUnknownMethod(t *testing.T) {
	errs := ValidateBytes("bad.yaml", []byte(`name: bad
method: montecarlo
points: [1]
`))
	require.NotEmpty(t, errs)
	var ve *ValidationError
	require.ErrorAs(t, errs[0], &ve)
	assert.Equal(t, ErrCodeViolation, ve.Code)
}

func TestValidateRejectsNegativePoint(t *testing.T) {
	errs := ValidateBytes("bad.yaml", []byte(`name: bad
points: [0, -2]
`))
	assert.NotEmpty(t, errs)
}

func TestValidateRejectsEmptyPoints(t *testing.T) {
	errs := ValidateBytes("bad.yaml", []byte(`name: bad
points: []
`))
	assert.NotEmpty(t, errs)
}

func TestValidateRejectsNegativeTolerance(t *testing.T) {
	errs := ValidateBytes("bad.yaml", []byte(`name: bad
points: [1]
tolerance: -0.1
`))
	assert.NotEmpty(t, errs)
}

func TestValidateRejectsNonIntegerPoint(t *testing.T) {
	errs := ValidateBytes("bad.yaml", []byte(`name: bad
points: [1.5]
`))
	assert.NotEmpty(t, errs)
}

func TestValidateRejectsMalformedYAML(t *testing.T) {
	errs := ValidateBytes("garbage.yaml", []byte(": [unbalanced\n"))
	require.NotEmpty(t, errs)
	var ve *ValidationError
	require.ErrorAs(t, errs[0], &ve)
	assert.Equal(t, ErrCodeParseFailed, ve.Code)
}

func TestValidateMissingFile(t *testing.T) {
	errs := Validate(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotEmpty(t, errs)
	var ve *ValidationError
	require.ErrorAs(t, errs[0], &ve)
	assert.Equal(t, ErrCodeReadFailed, ve.Code)
}

func TestValidateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: on_disk\npoints: [1, 2]\n"), 0o644))
	assert.Empty(t, Validate(path))
}

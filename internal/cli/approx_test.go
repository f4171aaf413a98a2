package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"10"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "wallis(10) = 3.067703806643499")
}

func TestApproxJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"10"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 3.067703806643499, data["value"])
	assert.Equal(t, float64(10), data["n"])
	assert.Equal(t, "exact", data["method"])
}

func TestApproxDigits(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"10", "--digits"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "accumulators: 20/19 decimal digits")
}

func TestApproxRatioMethod(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"0", "--method", "ratio"})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "wallis(0) = 2 ")
}

func TestApproxNegativeTermCount(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	// "--" keeps cobra from parsing -1 as a flag.
	cmd.SetArgs([]string{"--", "-1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "INVALID_ARGUMENT")
}

func TestApproxNonIntegerArgument(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"ten"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "must be an integer")
}

func TestApproxUnknownMethod(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewApproxCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"10", "--method", "montecarlo"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "UNKNOWN_METHOD")
}

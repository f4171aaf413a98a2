package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/wallis/internal/sweep"
	"github.com/roach88/wallis/internal/wallis"
)

func runTestSweep(t *testing.T) *sweep.Report {
	t.Helper()
	s := &sweep.Sweep{
		Name:   "verify_basic",
		Method: wallis.MethodExact,
		Points: []int{0, 1, 10, 100},
	}
	report, err := sweep.Run(s, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return report
}

func TestVerifyFreshRecomputationMatches(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	report := runTestSweep(t)
	require.NoError(t, st.WriteReport(ctx, report))

	// Recompute the same sweep; pure function, so bit-identical.
	mismatches, err := st.Verify(ctx, runTestSweep(t))
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerifyReportsMissingPoints(t *testing.T) {
	st := openTestStore(t)

	mismatches, err := st.Verify(context.Background(), runTestSweep(t))
	require.NoError(t, err)
	require.Len(t, mismatches, 4)
	for _, m := range mismatches {
		assert.Equal(t, MismatchMissing, m.Kind)
	}
}

func TestVerifyDetectsValueDrift(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	report := runTestSweep(t)
	require.NoError(t, st.WriteReport(ctx, report))

	// Simulate an implementation that rounds differently at n=100.
	drifted := runTestSweep(t)
	drifted.Rows[3].Value += 1e-13

	mismatches, err := st.Verify(ctx, drifted)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)

	m := mismatches[0]
	assert.Equal(t, MismatchValue, m.Kind)
	assert.Equal(t, 100, m.N)
	assert.Equal(t, report.Rows[3].Value, m.Stored)
	assert.Contains(t, m.String(), "stored")
}

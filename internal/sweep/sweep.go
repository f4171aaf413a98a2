// Package sweep runs convergence sweeps of the Wallis product: a sweep
// names an ordered set of term counts, computes the approximation at each,
// and reports the absolute error against π so slow O(1/n) convergence is
// visible point by point.
package sweep

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/roach88/wallis/internal/wallis"
)

// Sweep defines a convergence sweep over term counts.
// Sweeps are declared in YAML files and validated before execution.
type Sweep struct {
	// Name uniquely identifies this sweep. It keys stored records and
	// golden files, so it is NFC-normalized at load time.
	Name string `yaml:"name"`

	// Description explains what this sweep demonstrates.
	Description string `yaml:"description,omitempty"`

	// Method selects the approximation strategy ("exact" or "ratio").
	// Defaults to "exact".
	Method wallis.Method `yaml:"method,omitempty"`

	// Points lists the term counts to evaluate, strictly increasing.
	Points []int `yaml:"points"`

	// Tolerance, if positive, is the maximum allowed absolute error at the
	// final point. Zero means no tolerance check.
	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// Load reads and parses a sweep YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields (typos), or fails field validation.
func Load(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sweep file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses sweep YAML bytes with strict field validation.
func Parse(data []byte) (*Sweep, error) {
	var s Sweep
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Normalize the name at the parsing boundary so records and golden
	// files key identically regardless of the file's source encoding.
	s.Name = norm.NFC.String(s.Name)

	if s.Method == "" {
		s.Method = wallis.MethodExact
	}

	if err := validateSweep(&s); err != nil {
		return nil, fmt.Errorf("invalid sweep: %w", err)
	}
	return &s, nil
}

// validateSweep checks that required fields are present and valid.
func validateSweep(s *Sweep) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if !s.Method.Valid() {
		return fmt.Errorf("method must be %q or %q, got %q",
			wallis.MethodExact, wallis.MethodRatio, s.Method)
	}

	if len(s.Points) == 0 {
		return fmt.Errorf("points list is required and must be non-empty")
	}

	for i, n := range s.Points {
		if n < 0 {
			return fmt.Errorf("points[%d]: term count must be non-negative, got %d", i, n)
		}
		if i > 0 && n <= s.Points[i-1] {
			return fmt.Errorf("points[%d]: points must be strictly increasing (%d after %d)",
				i, n, s.Points[i-1])
		}
	}

	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %v", s.Tolerance)
	}

	return nil
}

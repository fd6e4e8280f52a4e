// Package tuning loads the generation parameters: founders, child window,
// cutoff year and noise spreads.
package tuning

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Founder describes one of the two seed people.
type Founder struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	YearBorn  int    `yaml:"year_born"`
}

// ChildWindow bounds children's birth years relative to the elder parent.
type ChildWindow struct {
	MinOffset int `yaml:"min_offset"`
	MaxOffset int `yaml:"max_offset"`
}

// Tuning holds every generation parameter.
type Tuning struct {
	CutoffYear      int         `yaml:"cutoff_year"`
	Founders        []Founder   `yaml:"founders"`
	ChildWindow     ChildWindow `yaml:"child_window"`
	SpouseAgeSpread int         `yaml:"spouse_age_spread"`
	LifespanNoise   int         `yaml:"lifespan_noise"`
	ChildSpread     float64     `yaml:"child_spread"`
}

// Default returns the standard parameters.
func Default() Tuning {
	return Tuning{
		CutoffYear: 2120,
		Founders: []Founder{
			{FirstName: "Desmond", LastName: "Jones", YearBorn: 1950},
			{FirstName: "Molly", LastName: "Smith", YearBorn: 1950},
		},
		ChildWindow:     ChildWindow{MinOffset: 25, MaxOffset: 45},
		SpouseAgeSpread: 10,
		LifespanNoise:   10,
		ChildSpread:     1.5,
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Tuning, error) {
	t := Default()
	if strings.TrimSpace(path) == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	return Parse(raw)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(raw []byte) (Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate checks parameter consistency.
func (t Tuning) Validate() error {
	var errs []error
	if len(t.Founders) != 2 {
		errs = append(errs, fmt.Errorf("founders: want exactly 2, got %d", len(t.Founders)))
	}
	for i, f := range t.Founders {
		if strings.TrimSpace(f.FirstName) == "" || strings.TrimSpace(f.LastName) == "" {
			errs = append(errs, fmt.Errorf("founders[%d]: first and last name are required", i))
		}
	}
	if t.ChildWindow.MinOffset <= 0 {
		errs = append(errs, errors.New("child_window.min_offset must be positive"))
	}
	if t.ChildWindow.MaxOffset < t.ChildWindow.MinOffset {
		errs = append(errs, errors.New("child_window.max_offset must not be below min_offset"))
	}
	if t.SpouseAgeSpread < 0 || t.LifespanNoise < 0 || t.ChildSpread < 0 {
		errs = append(errs, errors.New("spreads must be non-negative"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	return nil
}

// FounderLastNames returns the surnames every descendant inherits from.
func (t Tuning) FounderLastNames() []string {
	names := make([]string, 0, len(t.Founders))
	for _, f := range t.Founders {
		names = append(names, f.LastName)
	}
	return names
}

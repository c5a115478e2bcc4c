// Package rules loads the optional YAML rules file that tunes the
// best-practice checks: individual checks can be disabled or have their
// severity overridden, and custom required-pattern rules can be added.
// Without a rules file the built-in defaults apply unchanged.
package rules

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/frrlint/frrlint/pkg/model"
	"github.com/frrlint/frrlint/pkg/util"
)

// Check names accepted in the rules file.
const (
	CheckRouterBGP          = "router-bgp"
	CheckRouterID           = "router-id"
	CheckNeighborLogging    = "log-neighbor-changes"
	CheckMaximumPrefix      = "maximum-prefix"
	CheckSoftReconfig       = "soft-reconfiguration"
	CheckBogonFiltering     = "bogon-filtering"
	CheckNeighborActivated  = "neighbor-activated"
	CheckNeighborDescribed  = "neighbor-description"
	CheckNeighborSoftConfig = "neighbor-soft-reconfiguration"
)

var knownChecks = map[string]bool{
	CheckRouterBGP:          true,
	CheckRouterID:           true,
	CheckNeighborLogging:    true,
	CheckMaximumPrefix:      true,
	CheckSoftReconfig:       true,
	CheckBogonFiltering:     true,
	CheckNeighborActivated:  true,
	CheckNeighborDescribed:  true,
	CheckNeighborSoftConfig: true,
}

// CheckTuning overrides one built-in check.
type CheckTuning struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	Severity string `yaml:"severity,omitempty" validate:"omitempty,oneof=error warning"`
}

// RequireRule is a custom presence rule: when no configuration line
// contains Pattern (case-insensitive), the given finding is emitted.
type RequireRule struct {
	Pattern  string `yaml:"pattern" validate:"required"`
	Message  string `yaml:"message" validate:"required"`
	Severity string `yaml:"severity,omitempty" validate:"omitempty,oneof=error warning"`
}

// Rules is the decoded rules file.
type Rules struct {
	Checks  map[string]CheckTuning `yaml:"checks,omitempty" validate:"dive"`
	Require []RequireRule          `yaml:"require,omitempty" validate:"dive"`
}

// Default returns the built-in rules: every check enabled at its
// default severity, no custom requirements.
func Default() *Rules {
	return &Rules{}
}

// Load reads and validates a rules file.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing rules YAML: %w", err)
	}

	if err := validator.New().Struct(&r); err != nil {
		b := util.NewRulesErrorBuilder(path)
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				b.AddErrorf("%s: failed %q validation", fe.Namespace(), fe.Tag())
			}
		} else {
			b.AddErrorf("%v", err)
		}
		return nil, b.Build()
	}

	b := util.NewRulesErrorBuilder(path)
	for name := range r.Checks {
		b.Add(knownChecks[name], fmt.Sprintf("unknown check %q", name))
	}
	if b.HasErrors() {
		return nil, b.Build()
	}

	util.WithFile(path).Debugf("loaded rules: %d tunings, %d custom requirements", len(r.Checks), len(r.Require))
	return &r, nil
}

// Enabled reports whether the named check should run.
func (r *Rules) Enabled(name string) bool {
	if t, ok := r.Checks[name]; ok && t.Enabled != nil {
		return *t.Enabled
	}
	return true
}

// Severity returns the severity for the named check, falling back to
// the built-in default when not overridden.
func (r *Rules) Severity(name string, def model.Severity) model.Severity {
	if t, ok := r.Checks[name]; ok && t.Severity != "" {
		return model.Severity(t.Severity)
	}
	return def
}

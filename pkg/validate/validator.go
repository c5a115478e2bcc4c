// Package validate runs syntax-presence, referential, and best-practice
// checks over a routing configuration. Checks accumulate findings and
// always run to completion; nothing aborts the run.
package validate

import (
	"time"

	"github.com/frrlint/frrlint/pkg/analyze"
	"github.com/frrlint/frrlint/pkg/conf"
	"github.com/frrlint/frrlint/pkg/model"
	"github.com/frrlint/frrlint/pkg/rules"
	"github.com/frrlint/frrlint/pkg/util"
)

// Status summarizes a validation run
type Status string

const (
	StatusPass         Status = "pass"
	StatusPassWarnings Status = "pass-with-warnings"
	StatusFail         Status = "fail"
)

// Report contains all findings from one validation run
type Report struct {
	Path      string          `json:"path"`
	Timestamp time.Time       `json:"timestamp"`
	Status    Status          `json:"status"`
	Findings  []model.Finding `json:"findings"`
	Duration  time.Duration   `json:"duration"`
}

// Errors returns the error-severity findings in report order.
func (r *Report) Errors() []model.Finding {
	return r.filter(model.SeverityError)
}

// Warnings returns the warning-severity findings in report order.
func (r *Report) Warnings() []model.Finding {
	return r.filter(model.SeverityWarning)
}

func (r *Report) filter(s model.Severity) []model.Finding {
	var out []model.Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// Passed reports whether the run produced zero errors.
func (r *Report) Passed() bool {
	return r.Status != StatusFail
}

// Check is one validation pass over the configuration and its facts
type Check interface {
	Name() string
	Run(cfg *conf.Config, facts *analyze.Facts, r *rules.Rules) []model.Finding
}

// Validator runs checks over a configuration
type Validator struct {
	checks []Check
	rules  *rules.Rules
}

// New creates a validator with the default check set and the given
// rules (nil means built-in defaults).
func New(r *rules.Rules) *Validator {
	if r == nil {
		r = rules.Default()
	}
	return &Validator{
		rules: r,
		checks: []Check{
			&PracticeCheck{},
			&NeighborCheck{},
			&ReferenceCheck{},
			&RequireCheck{},
		},
	}
}

// Run executes all checks and returns the accumulated report.
// Checks run strictly after extraction since the reference check needs
// the whole-file symbol tables.
func (v *Validator) Run(cfg *conf.Config, facts *analyze.Facts) *Report {
	start := time.Now()
	report := &Report{
		Path:      cfg.Path(),
		Timestamp: start,
		Findings:  []model.Finding{},
	}

	for _, check := range v.checks {
		findings := check.Run(cfg, facts, v.rules)
		util.WithCheck(check.Name()).Debugf("%d findings", len(findings))
		report.Findings = append(report.Findings, findings...)
	}

	report.Status = StatusPass
	for _, f := range report.Findings {
		if f.Severity == model.SeverityError {
			report.Status = StatusFail
			break
		}
		report.Status = StatusPassWarnings
	}

	report.Duration = time.Since(start)
	return report
}

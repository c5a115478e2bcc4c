package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/frrlint/frrlint/pkg/analyze"
	"github.com/frrlint/frrlint/pkg/conf"
	"github.com/frrlint/frrlint/pkg/model"
	"github.com/frrlint/frrlint/pkg/rules"
)

var (
	reRouterBGPLine = regexp.MustCompile(`^router\s+bgp\s+\d+`)
	reRouterID      = regexp.MustCompile(`bgp\s+router-id`)

	// Reference patterns are searched anywhere in the line, not
	// anchored: references appear in non-declaration contexts.
	reRouteMapRef   = regexp.MustCompile(`route-map\s+(\S+)\s+(in|out)`)
	rePrefixListRef = regexp.MustCompile(`match\s+ip\s+address\s+prefix-list\s+(\S+)`)
)

// practice is one row of the best-practice table: a presence predicate
// over the full raw line set, with the finding to emit when absent.
type practice struct {
	check          string
	present        func(cfg *conf.Config) bool
	severity       model.Severity
	message        string
	recommendation string // analysis-mode wording; empty when not advisory
}

func containsLine(cfg *conf.Config, substr string) bool {
	for _, l := range cfg.Lines() {
		if strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

func matchesLine(cfg *conf.Config, re *regexp.Regexp) bool {
	for _, l := range cfg.Lines() {
		if re.MatchString(l.Text) {
			return true
		}
	}
	return false
}

var practices = []practice{
	{
		check:    rules.CheckRouterBGP,
		present:  func(cfg *conf.Config) bool { return matchesLine(cfg, reRouterBGPLine) },
		severity: model.SeverityError,
		message:  "No 'router bgp' configuration found",
	},
	{
		check:          rules.CheckRouterID,
		present:        func(cfg *conf.Config) bool { return matchesLine(cfg, reRouterID) },
		severity:       model.SeverityError,
		message:        "No BGP router-id configured",
		recommendation: "Consider configuring explicit BGP router-id",
	},
	{
		check:          rules.CheckNeighborLogging,
		present:        func(cfg *conf.Config) bool { return containsLine(cfg, "log-neighbor-changes") },
		severity:       model.SeverityWarning,
		message:        "Enable 'bgp log-neighbor-changes' for better monitoring",
		recommendation: "Enable 'bgp log-neighbor-changes' for better monitoring",
	},
	{
		check:          rules.CheckMaximumPrefix,
		present:        func(cfg *conf.Config) bool { return containsLine(cfg, "maximum-prefix") },
		severity:       model.SeverityWarning,
		message:        "Consider configuring maximum-prefix limits on peers",
		recommendation: "Consider configuring maximum-prefix limits on peers",
	},
	{
		check:          rules.CheckSoftReconfig,
		present:        func(cfg *conf.Config) bool { return containsLine(cfg, "soft-reconfiguration") },
		severity:       model.SeverityWarning,
		message:        "Consider enabling soft-reconfiguration for policy changes",
		recommendation: "Consider enabling soft-reconfiguration for policy changes",
	},
	{
		check: rules.CheckBogonFiltering,
		present: func(cfg *conf.Config) bool {
			for _, l := range cfg.Lines() {
				if strings.Contains(strings.ToUpper(l.Text), "BOGON") {
					return true
				}
			}
			return false
		},
		severity:       model.SeverityWarning,
		message:        "No bogon filtering detected. Consider adding prefix-list for bogon networks",
		recommendation: "Implement bogon prefix filtering for security",
	},
}

// PracticeCheck emits one finding per absent best-practice pattern
type PracticeCheck struct{}

// Name returns the check name
func (c *PracticeCheck) Name() string { return "best-practices" }

// Run evaluates the practice table against the full line set.
func (c *PracticeCheck) Run(cfg *conf.Config, _ *analyze.Facts, r *rules.Rules) []model.Finding {
	var findings []model.Finding
	for _, p := range practices {
		if !r.Enabled(p.check) || p.present(cfg) {
			continue
		}
		findings = append(findings, model.Finding{
			Severity: r.Severity(p.check, p.severity),
			Message:  p.message,
		})
	}
	return findings
}

// Recommendations returns analysis-mode advisory messages for absent
// best practices, in table order.
func Recommendations(cfg *conf.Config) []string {
	var recs []string
	for _, p := range practices {
		if p.recommendation == "" || p.present(cfg) {
			continue
		}
		recs = append(recs, p.recommendation)
	}
	return recs
}

// NeighborCheck warns about per-neighbor gaps: not activated in an
// address-family, no description, no soft-reconfiguration inbound.
// One finding per neighbor per condition, referencing the neighbor's
// first-seen line.
type NeighborCheck struct{}

// Name returns the check name
func (c *NeighborCheck) Name() string { return "neighbors" }

// Run checks every extracted peer's flags.
func (c *NeighborCheck) Run(_ *conf.Config, facts *analyze.Facts, r *rules.Rules) []model.Finding {
	var findings []model.Finding
	for _, peer := range facts.Peers {
		if r.Enabled(rules.CheckNeighborActivated) && !peer.Activated {
			findings = append(findings, model.Finding{
				Severity: r.Severity(rules.CheckNeighborActivated, model.SeverityWarning),
				Message:  fmt.Sprintf("Neighbor %s at line %d is not activated in address-family", peer.Address, peer.Line),
			})
		}
		if r.Enabled(rules.CheckNeighborDescribed) && !peer.HasDescription {
			findings = append(findings, model.Finding{
				Severity: r.Severity(rules.CheckNeighborDescribed, model.SeverityWarning),
				Message:  fmt.Sprintf("Neighbor %s at line %d has no description", peer.Address, peer.Line),
			})
		}
		if r.Enabled(rules.CheckNeighborSoftConfig) && !peer.SoftReconfig {
			findings = append(findings, model.Finding{
				Severity: r.Severity(rules.CheckNeighborSoftConfig, model.SeverityWarning),
				Message:  fmt.Sprintf("Neighbor %s at line %d does not have soft-reconfiguration enabled", peer.Address, peer.Line),
			})
		}
	}
	return findings
}

// ReferenceCheck finds route-maps and prefix-lists that are referenced
// but never defined. The symbol tables cover the whole file, so forward
// references to later definitions are accepted.
type ReferenceCheck struct{}

// Name returns the check name
func (c *ReferenceCheck) Name() string { return "references" }

// Run scans raw lines for reference syntax and resolves against facts.
func (c *ReferenceCheck) Run(cfg *conf.Config, facts *analyze.Facts, _ *rules.Rules) []model.Finding {
	var findings []model.Finding
	for _, line := range cfg.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}

		if m := reRouteMapRef.FindStringSubmatch(line.Text); m != nil {
			if !facts.HasRouteMap(m[1]) {
				findings = append(findings,
					model.Errorf(line.Num, "Route-map '%s' is referenced but not defined", m[1]))
			}
		}

		if m := rePrefixListRef.FindStringSubmatch(line.Text); m != nil {
			if !facts.HasPrefixList(m[1]) {
				findings = append(findings,
					model.Errorf(line.Num, "Prefix-list '%s' is referenced but not defined", m[1]))
			}
		}
	}
	return findings
}

// RequireCheck evaluates custom required-pattern rules from the rules
// file: a case-insensitive substring absent from every line emits the
// rule's finding.
type RequireCheck struct{}

// Name returns the check name
func (c *RequireCheck) Name() string { return "require" }

// Run evaluates each custom rule against the full line set.
func (c *RequireCheck) Run(cfg *conf.Config, _ *analyze.Facts, r *rules.Rules) []model.Finding {
	var findings []model.Finding
	for _, req := range r.Require {
		pattern := strings.ToLower(req.Pattern)
		found := false
		for _, l := range cfg.Lines() {
			if strings.Contains(strings.ToLower(l.Text), pattern) {
				found = true
				break
			}
		}
		if found {
			continue
		}

		severity := model.SeverityWarning
		if req.Severity != "" {
			severity = model.Severity(req.Severity)
		}
		findings = append(findings, model.Finding{Severity: severity, Message: req.Message})
	}
	return findings
}

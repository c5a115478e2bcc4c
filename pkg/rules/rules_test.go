package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/frrlint/frrlint/pkg/model"
	"github.com/frrlint/frrlint/pkg/util"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing rules fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeRules(t, `
checks:
  bogon-filtering:
    enabled: false
  router-id:
    severity: warning
require:
  - pattern: graceful-restart
    message: Enable BGP graceful restart
    severity: warning
`)

	r, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if r.Enabled(CheckBogonFiltering) {
		t.Error("bogon-filtering should be disabled")
	}
	if r.Enabled(CheckRouterID) != true {
		t.Error("router-id should stay enabled")
	}
	if got := r.Severity(CheckRouterID, model.SeverityError); got != model.SeverityWarning {
		t.Errorf("Severity(router-id) = %v, want warning override", got)
	}
	if len(r.Require) != 1 {
		t.Fatalf("Require = %v, want 1 rule", r.Require)
	}
	if r.Require[0].Pattern != "graceful-restart" {
		t.Errorf("Pattern = %q", r.Require[0].Pattern)
	}
}

func TestLoad_UnknownCheck(t *testing.T) {
	path := writeRules(t, `
checks:
  no-such-check:
    enabled: false
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject unknown check names")
	}
	if !errors.Is(err, util.ErrInvalidRules) {
		t.Errorf("error should unwrap to ErrInvalidRules, got %v", err)
	}
}

func TestLoad_InvalidSeverity(t *testing.T) {
	path := writeRules(t, `
checks:
  router-id:
    severity: critical
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should reject severities outside error/warning")
	}
}

func TestLoad_RequireMissingFields(t *testing.T) {
	path := writeRules(t, `
require:
  - pattern: graceful-restart
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should require a message on custom rules")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeRules(t, "checks: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestDefault(t *testing.T) {
	r := Default()

	for name := range knownChecks {
		if !r.Enabled(name) {
			t.Errorf("default rules should enable %s", name)
		}
	}
	if got := r.Severity(CheckRouterID, model.SeverityError); got != model.SeverityError {
		t.Errorf("Severity fallback = %v, want error", got)
	}
	if len(r.Require) != 0 {
		t.Errorf("default rules should have no custom requirements")
	}
}

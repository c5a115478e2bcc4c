// Frrlint - FRR Configuration Analyzer & Validator
//
// A CLI tool for inspecting FRR routing daemon configurations:
//   - Analysis: extract BGP peers, advertised networks, route-maps,
//     and interfaces into a readable report
//   - Validation: syntax-presence checks, dangling route-map and
//     prefix-list reference detection, best-practice warnings
//   - Tunable rules via a YAML rules file
//   - Run history of past analyses and validations
//
// Examples:
//
//	frrlint analyze bgpd.conf zebra.conf     # Full analysis report
//	frrlint validate bgpd.conf               # Pass/fail validation (exit 1 on errors)
//	frrlint validate bgpd.conf --rules r.yml # Validation with tuned rules
//	frrlint history list --last 24h          # Recent runs
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frrlint/frrlint/pkg/cli"
	"github.com/frrlint/frrlint/pkg/rules"
	"github.com/frrlint/frrlint/pkg/settings"
	"github.com/frrlint/frrlint/pkg/util"
)

var (
	// Global option flags
	jsonOutput bool
	logLevel   string
	rulesFile  string

	// Global state
	userSettings *settings.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Validation failure already produced a full report; any
		// other error still needs to be shown.
		if !errors.Is(err, util.ErrValidationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "frrlint",
	Short:             "FRR Configuration Analyzer & Validator",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Frrlint inspects FRR routing daemon configuration files.

Analysis extracts BGP peers, advertised networks, route-maps, and
interfaces. Validation checks for missing mandatory configuration,
dangling route-map/prefix-list references, and best-practice gaps.

  frrlint analyze <bgpd.conf> [zebra.conf]
  frrlint validate <bgpd.conf> [--rules rules.yml]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := util.SetLogLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level: %s", logLevel)
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "JSON output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")

	rootCmd.AddCommand(analyzeCmd, validateCmd, historyCmd, settingsCmd, versionCmd)
}

// loadRules resolves the rules file from --rules or settings; nil means
// built-in defaults.
func loadRules() (*rules.Rules, error) {
	path := rulesFile
	if path == "" {
		path = userSettings.RulesFile
	}
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}

// historyPath returns the run-history location from settings, empty for
// the default.
func historyPath() string {
	return userSettings.HistoryFile
}

// Color helpers, delegating to pkg/cli
func green(s string) string  { return cli.Green(s) }
func yellow(s string) string { return cli.Yellow(s) }
func red(s string) string    { return cli.Red(s) }
func bold(s string) string   { return cli.Bold(s) }

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/frrlint/frrlint/pkg/analyze"
	"github.com/frrlint/frrlint/pkg/audit"
	"github.com/frrlint/frrlint/pkg/cli"
	"github.com/frrlint/frrlint/pkg/conf"
	"github.com/frrlint/frrlint/pkg/model"
	"github.com/frrlint/frrlint/pkg/util"
	"github.com/frrlint/frrlint/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bgpd.conf>",
	Short: "Validate an FRR BGP configuration file",
	Long: `Validate an FRR BGP configuration file.

Checks for missing mandatory configuration (router bgp, router-id),
route-map and prefix-list references without definitions, per-neighbor
gaps, and absent best practices. Exits 1 when any error is found;
warnings alone still pass.

Examples:
  frrlint validate bgpd.conf
  frrlint validate bgpd.conf --rules rules.yml
  frrlint validate bgpd.conf --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		r, err := loadRules()
		if err != nil {
			return err
		}

		var report *validate.Report
		cfg, err := conf.Load(path)
		if err != nil {
			// The load failure is the report: one error, exit 1.
			report = &validate.Report{
				Path:      path,
				Timestamp: time.Now(),
				Status:    validate.StatusFail,
				Findings: []model.Finding{
					{Severity: model.SeverityError, Message: "Configuration file not found: " + path},
				},
			}
		} else {
			facts := analyze.Run(cfg, conf.Empty(""))
			report = validate.New(r).Run(cfg, facts)
		}

		errs := report.Errors()
		warns := report.Warnings()

		if jsonOutput {
			if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
				return err
			}
		} else {
			printValidationReport(report, errs, warns)
		}

		audit.Record(historyPath(), audit.NewEvent("validate", path).
			WithCounts(len(errs), len(warns)).
			WithDuration(report.Duration))

		if !report.Passed() {
			return util.ErrValidationFailed
		}
		return nil
	},
}

func printValidationReport(report *validate.Report, errs, warns []model.Finding) {
	rule := cli.Rule('=', reportWidth)
	fmt.Println(rule)
	fmt.Println(bold("BGP Configuration Validation Report: " + report.Path))
	fmt.Println(rule)
	fmt.Println()

	if len(errs) > 0 {
		fmt.Println("ERRORS:")
		for _, f := range errs {
			fmt.Printf("  %s\n", red(f.String()))
		}
		fmt.Println()
	}

	if len(warns) > 0 {
		fmt.Println("WARNINGS:")
		for _, f := range warns {
			fmt.Printf("  %s\n", yellow(f.String()))
		}
		fmt.Println()
	}

	switch report.Status {
	case validate.StatusPass:
		fmt.Println(green("Configuration validation passed with no issues"))
	case validate.StatusPassWarnings:
		fmt.Println(green("Configuration validation passed with warnings"))
	default:
		fmt.Println(red("Configuration validation failed"))
	}

	fmt.Println()
	fmt.Printf("Summary: %d errors, %d warnings\n", len(errs), len(warns))
	fmt.Println(rule)
}

func init() {
	validateCmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rules file tuning the checks")
}

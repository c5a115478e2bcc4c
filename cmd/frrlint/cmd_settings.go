package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frrlint/frrlint/pkg/cli"
	"github.com/frrlint/frrlint/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.frrlint/settings.json.

Settings provide defaults for option flags:
  - rules_file:   Used when --rules is not specified
  - history_file: Run-history location

Examples:
  frrlint settings show
  frrlint settings set rules /etc/frrlint/rules.yml
  frrlint settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		t := cli.NewTable("SETTING", "VALUE")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value)
		}

		printSetting("rules_file", s.RulesFile)
		printSetting("history_file", s.HistoryFile)

		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  rules   - Rules file path (--rules flag default)
  history - Run-history file path

Examples:
  frrlint settings set rules /etc/frrlint/rules.yml
  frrlint settings set history /var/log/frrlint/history.jsonl`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "rules", "rules_file":
			s.RulesFile = value
			fmt.Printf("Rules file set to: %s\n", value)
		case "history", "history_file":
			s.HistoryFile = value
			fmt.Printf("History file set to: %s\n", value)
		default:
			return fmt.Errorf("unknown setting: %s (available: rules, history)", setting)
		}

		return s.Save()
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.DefaultSettingsPath()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing settings: %w", err)
		}
		fmt.Println("Settings cleared")
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsClearCmd)
}

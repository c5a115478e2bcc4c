package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frrlint/frrlint/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("frrlint %s\n", version.Info())
	},
}

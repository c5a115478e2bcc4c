package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
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

const reportWidth = 70

var analyzeCmd = &cobra.Command{
	Use:   "analyze <bgpd.conf> [zebra.conf]",
	Short: "Analyze FRR configuration files",
	Long: `Analyze FRR configuration files and report extracted facts.

The first file is the routing process configuration (bgpd.conf), the
optional second file is the link configuration (zebra.conf). A missing
file yields an empty section, not an error.

Examples:
  frrlint analyze bgpd.conf
  frrlint analyze bgpd.conf zebra.conf
  frrlint analyze bgpd.conf --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		routing := loadOptional(args[0])
		link := conf.Empty("")
		if len(args) > 1 {
			link = loadOptional(args[1])
		}

		facts := analyze.Run(routing, link)
		recs := validate.Recommendations(routing)

		audit.Record(historyPath(), audit.NewEvent("analyze", args...).
			WithCounts(0, len(recs)).
			WithDuration(time.Since(start)))

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(struct {
				*analyze.Facts
				Recommendations []string `json:"recommendations,omitempty"`
			}{facts, recs})
		}

		printAnalysisReport(facts, recs)
		return nil
	},
}

// loadOptional reads a config file, returning an empty config when the
// file is absent or unreadable.
func loadOptional(path string) *conf.Config {
	cfg, err := conf.Load(path)
	if err != nil {
		util.WithFile(path).Infof("skipping: %v", err)
		return conf.Empty(path)
	}
	return cfg
}

func printAnalysisReport(facts *analyze.Facts, recs []string) {
	rule := cli.Rule('=', reportWidth)
	fmt.Println(rule)
	fmt.Println(bold("FRR Configuration Analysis Report"))
	fmt.Println(rule)
	fmt.Println()

	if len(facts.Peers) > 0 {
		printSection("BGP Peer Summary")
		t := cli.NewTable("PEER", "AS", "TYPE", "POLICIES").WithPrefix("  ")
		for _, peer := range facts.Peers {
			t.Row(peer.Address, peer.RemoteAS, formatSessionType(peer.Type),
				strings.Join(peer.Policies, ", "))
		}
		t.Flush()
		fmt.Println()
	}

	if len(facts.Networks) > 0 {
		printSection("Advertised Networks")
		for _, net := range facts.Networks {
			fmt.Printf("  %s\n", net)
		}
		fmt.Println()
	}

	if len(facts.RouteMaps) > 0 {
		printSection("Route Maps")
		for _, rm := range facts.RouteMaps {
			fmt.Printf("  %s:\n", bold(rm.Name))
			for _, e := range rm.Entries {
				fmt.Printf("    seq %s: %s\n", e.Sequence, e.Action)
			}
		}
		fmt.Println()
	}

	if len(facts.Interfaces) > 0 {
		printSection("Interface Summary")
		t := cli.NewTable("INTERFACE", "STATUS", "ADDRESSES", "DESCRIPTION").WithPrefix("  ")
		for _, intf := range facts.Interfaces {
			status := green("up")
			if intf.Status == model.InterfaceDown {
				status = red("down")
			}
			t.Row(intf.Name, status, strings.Join(intf.Addresses, ", "), intf.Description)
		}
		t.Flush()
		fmt.Println()
	}

	if len(recs) > 0 {
		printSection("Best Practice Recommendations")
		for _, rec := range recs {
			fmt.Printf("  %s\n", yellow(rec))
		}
		fmt.Println()
	}

	fmt.Println(rule)
}

func printSection(title string) {
	fmt.Println(title + ":")
	fmt.Println(cli.Rule('-', reportWidth))
}

func formatSessionType(t model.SessionType) string {
	if t == model.SessionIBGP {
		return green(string(t))
	}
	return string(t)
}

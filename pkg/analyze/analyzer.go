// Package analyze extracts structured facts from FRR configuration
// text. Each extractor is a single pass over the shared line sequence;
// extractors are independent of each other and are pure functions of
// the input, so a re-run over the same config yields identical facts.
package analyze

import (
	"github.com/frrlint/frrlint/pkg/conf"
	"github.com/frrlint/frrlint/pkg/util"
)

// Run executes all extractors over the routing and link configurations
// and returns the accumulated facts. Either config may be empty.
func Run(routing, link *conf.Config) *Facts {
	facts := NewFacts()

	ExtractPeers(routing, facts)
	ExtractPolicies(routing, facts)
	ExtractInterfaces(link, facts)

	util.WithFields(map[string]interface{}{
		"peers":      len(facts.Peers),
		"route_maps": len(facts.RouteMaps),
		"networks":   len(facts.Networks),
		"interfaces": len(facts.Interfaces),
	}).Debug("extraction complete")

	return facts
}

package analyze

import (
	"fmt"
	"regexp"

	"github.com/frrlint/frrlint/pkg/conf"
	"github.com/frrlint/frrlint/pkg/model"
)

// Line patterns are anchored at the start of the trimmed line and
// evaluated in declaration order; the first match wins. IPv6 and
// hostname neighbors are out of scope and fall through unmatched.
var (
	reRouterBGP      = regexp.MustCompile(`^router\s+bgp\s+(\d+)`)
	reNeighborRemote = regexp.MustCompile(`^neighbor\s+([\d.]+)\s+remote-as\s+(\d+)`)
	reNeighborPolicy = regexp.MustCompile(`^neighbor\s+([\d.]+)\s+route-map\s+(\S+)\s+(in|out)`)
	reNeighborDesc   = regexp.MustCompile(`^neighbor\s+([\d.]+)\s+description\s+(.+)`)
	reNeighborActive = regexp.MustCompile(`^neighbor\s+([\d.]+)\s+activate`)
	reNeighborSoft   = regexp.MustCompile(`^neighbor\s+([\d.]+)\s+soft-reconfiguration\s+inbound`)

	reRouteMapDef   = regexp.MustCompile(`^route-map\s+(\S+)\s+(permit|deny)\s+(\d+)`)
	rePrefixListDef = regexp.MustCompile(`^ip\s+prefix-list\s+(\S+)\s+seq\s+(\d+)`)
	reNetwork       = regexp.MustCompile(`^network\s+([\d./]+)`)
)

// ExtractPeers walks the routing configuration once and records BGP
// peers and their per-neighbor settings into facts.
//
// The local AS context is positional: each `router bgp <N>` line updates
// it for every subsequent line, and it is never reset within the file.
// With multiple router bgp blocks the last AS wins and peers accumulate
// across blocks.
func ExtractPeers(cfg *conf.Config, facts *Facts) {
	localAS := ""

	for _, line := range cfg.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}

		if m := reRouterBGP.FindStringSubmatch(line.Text); m != nil {
			localAS = m[1]
			continue
		}

		if m := reNeighborRemote.FindStringSubmatch(line.Text); m != nil {
			facts.AddPeer(model.NewPeer(m[1], m[2], localAS, line.Num))
			continue
		}

		// Settings only attach to peers already declared above; a
		// policy or flag line for an unknown neighbor is dropped.
		if m := reNeighborPolicy.FindStringSubmatch(line.Text); m != nil {
			if peer := facts.Peer(m[1]); peer != nil {
				peer.Policies = append(peer.Policies, fmt.Sprintf("%s (%s)", m[2], m[3]))
			}
			continue
		}

		if m := reNeighborDesc.FindStringSubmatch(line.Text); m != nil {
			if peer := facts.Peer(m[1]); peer != nil {
				peer.HasDescription = true
			}
			continue
		}

		if m := reNeighborActive.FindStringSubmatch(line.Text); m != nil {
			if peer := facts.Peer(m[1]); peer != nil {
				peer.Activated = true
			}
			continue
		}

		if m := reNeighborSoft.FindStringSubmatch(line.Text); m != nil {
			if peer := facts.Peer(m[1]); peer != nil {
				peer.SoftReconfig = true
			}
		}
	}
}

// ExtractPolicies walks the routing configuration once and records
// route-map definitions, prefix-list definitions, and advertised
// networks. Networks keep file order and duplicates.
func ExtractPolicies(cfg *conf.Config, facts *Facts) {
	for _, line := range cfg.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}

		if m := reRouteMapDef.FindStringSubmatch(line.Text); m != nil {
			rm := facts.RouteMap(m[1])
			rm.Entries = append(rm.Entries, model.RouteMapEntry{
				Sequence: m[3],
				Action:   m[2],
			})
			continue
		}

		if m := rePrefixListDef.FindStringSubmatch(line.Text); m != nil {
			facts.AddPrefixList(m[1])
			continue
		}

		if m := reNetwork.FindStringSubmatch(line.Text); m != nil {
			facts.Networks = append(facts.Networks, m[1])
		}
	}
}

package analyze

import (
	"reflect"
	"testing"

	"github.com/frrlint/frrlint/pkg/conf"
)

const sampleBGP = `!
! FRR BGP configuration
!
router bgp 65001
 bgp router-id 10.255.0.1
 neighbor 10.0.0.1 remote-as 65001
 neighbor 10.0.0.1 description spine1
 neighbor 10.0.0.1 route-map RM-IN in
 neighbor 10.0.0.2 remote-as 65002
 network 10.1.0.0/24
 network 10.2.0.0/24
!
route-map RM-IN permit 10
 match ip address prefix-list CUSTOMERS
!
ip prefix-list CUSTOMERS seq 5 permit 192.0.2.0/24
`

const sampleZebra = `!
interface eth0
 description uplink
 ip address 10.0.0.10/31
!
interface eth1
 shutdown
!
`

func TestRun(t *testing.T) {
	routing := conf.Parse("bgpd.conf", sampleBGP)
	link := conf.Parse("zebra.conf", sampleZebra)

	facts := Run(routing, link)

	if len(facts.Peers) != 2 {
		t.Errorf("peers = %d, want 2", len(facts.Peers))
	}
	if len(facts.Networks) != 2 {
		t.Errorf("networks = %d, want 2", len(facts.Networks))
	}
	if len(facts.RouteMaps) != 1 {
		t.Errorf("route-maps = %d, want 1", len(facts.RouteMaps))
	}
	if len(facts.PrefixLists) != 1 {
		t.Errorf("prefix-lists = %d, want 1", len(facts.PrefixLists))
	}
	if len(facts.Interfaces) != 2 {
		t.Errorf("interfaces = %d, want 2", len(facts.Interfaces))
	}
}

func TestRun_EmptyConfigs(t *testing.T) {
	facts := Run(conf.Empty("bgpd.conf"), conf.Empty("zebra.conf"))

	if len(facts.Peers) != 0 || len(facts.Networks) != 0 || len(facts.Interfaces) != 0 {
		t.Error("empty configs must produce empty facts")
	}
}

func TestRun_Idempotent(t *testing.T) {
	routing := conf.Parse("bgpd.conf", sampleBGP)
	link := conf.Parse("zebra.conf", sampleZebra)

	first := Run(routing, link)
	second := Run(routing, link)

	if !reflect.DeepEqual(first.Peers, second.Peers) {
		t.Error("peers differ between runs")
	}
	if !reflect.DeepEqual(first.RouteMaps, second.RouteMaps) {
		t.Error("route-maps differ between runs")
	}
	if !reflect.DeepEqual(first.PrefixLists, second.PrefixLists) {
		t.Error("prefix-lists differ between runs")
	}
	if !reflect.DeepEqual(first.Networks, second.Networks) {
		t.Error("networks differ between runs")
	}
	if !reflect.DeepEqual(first.Interfaces, second.Interfaces) {
		t.Error("interfaces differ between runs")
	}
}

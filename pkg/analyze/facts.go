package analyze

import "github.com/frrlint/frrlint/pkg/model"

// Facts holds everything the extractors produce from one run. Slices
// preserve file order; lookup maps are kept alongside for the
// validator's existence checks.
type Facts struct {
	Peers       []*model.Peer      `json:"peers,omitempty"`
	RouteMaps   []*model.RouteMap  `json:"route_maps,omitempty"`
	PrefixLists []string           `json:"prefix_lists,omitempty"`
	Networks    []string           `json:"networks,omitempty"`
	Interfaces  []*model.Interface `json:"interfaces,omitempty"`

	peersByAddr map[string]*model.Peer
	mapsByName  map[string]*model.RouteMap
	prefixSet   map[string]bool
}

// NewFacts creates an empty fact set.
func NewFacts() *Facts {
	return &Facts{
		peersByAddr: make(map[string]*model.Peer),
		mapsByName:  make(map[string]*model.RouteMap),
		prefixSet:   make(map[string]bool),
	}
}

// Peer returns the peer keyed by neighbor address, or nil.
func (f *Facts) Peer(address string) *model.Peer {
	return f.peersByAddr[address]
}

// AddPeer records a peer. The first declaration for an address wins;
// re-declarations return the existing record unchanged.
func (f *Facts) AddPeer(p *model.Peer) *model.Peer {
	if existing, ok := f.peersByAddr[p.Address]; ok {
		return existing
	}
	f.peersByAddr[p.Address] = p
	f.Peers = append(f.Peers, p)
	return p
}

// RouteMap returns the route-map by name, creating it on first sighting.
func (f *Facts) RouteMap(name string) *model.RouteMap {
	if rm, ok := f.mapsByName[name]; ok {
		return rm
	}
	rm := &model.RouteMap{Name: name}
	f.mapsByName[name] = rm
	f.RouteMaps = append(f.RouteMaps, rm)
	return rm
}

// HasRouteMap reports whether a route-map of that name was defined.
func (f *Facts) HasRouteMap(name string) bool {
	_, ok := f.mapsByName[name]
	return ok
}

// AddPrefixList marks a prefix-list name as defined. Idempotent.
func (f *Facts) AddPrefixList(name string) {
	if f.prefixSet[name] {
		return
	}
	f.prefixSet[name] = true
	f.PrefixLists = append(f.PrefixLists, name)
}

// HasPrefixList reports whether a prefix-list of that name was defined.
func (f *Facts) HasPrefixList(name string) bool {
	return f.prefixSet[name]
}

// Interface returns the interface record by name, or nil.
func (f *Facts) Interface(name string) *model.Interface {
	for _, i := range f.Interfaces {
		if i.Name == name {
			return i
		}
	}
	return nil
}

// AddInterface records an interface section. A re-declared name replaces
// the earlier record but keeps its position in file order.
func (f *Facts) AddInterface(i *model.Interface) *model.Interface {
	for idx, existing := range f.Interfaces {
		if existing.Name == i.Name {
			f.Interfaces[idx] = i
			return i
		}
	}
	f.Interfaces = append(f.Interfaces, i)
	return i
}

package model

// SessionType classifies a BGP peering by AS relationship
type SessionType string

const (
	SessionIBGP SessionType = "iBGP"
	SessionEBGP SessionType = "eBGP"
)

// Peer represents one BGP neighbor extracted from configuration
type Peer struct {
	Address  string      `json:"address"` // Neighbor IP address (IPv4)
	RemoteAS string      `json:"remote_as"`
	Type     SessionType `json:"type"`
	Policies []string    `json:"policies,omitempty"` // "NAME (in)" / "NAME (out)", in file order
	Line     int         `json:"line"`               // Line of the remote-as declaration

	// Per-neighbor configuration flags
	Activated      bool `json:"activated"`
	HasDescription bool `json:"has_description"`
	SoftReconfig   bool `json:"soft_reconfig"`
}

// NewPeer creates a peer record, classifying the session from the local
// AS in scope at the declaring line.
func NewPeer(address, remoteAS, localAS string, line int) *Peer {
	t := SessionEBGP
	if localAS != "" && remoteAS == localAS {
		t = SessionIBGP
	}
	return &Peer{
		Address:  address,
		RemoteAS: remoteAS,
		Type:     t,
		Line:     line,
	}
}

// RouteMapEntry is one sequence statement of a route-map
type RouteMapEntry struct {
	Sequence string `json:"sequence"`
	Action   string `json:"action"` // permit or deny
}

// RouteMap represents a named route-map accumulated from its
// declaration lines, entries in file order
type RouteMap struct {
	Name    string          `json:"name"`
	Entries []RouteMapEntry `json:"entries"`
}

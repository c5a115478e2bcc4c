package model

// InterfaceStatus is the administrative status of an interface
type InterfaceStatus string

const (
	InterfaceUp   InterfaceStatus = "up"
	InterfaceDown InterfaceStatus = "down"
)

// Interface represents one interface section from link configuration
type Interface struct {
	Name        string          `json:"name"`
	Addresses   []string        `json:"addresses,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      InterfaceStatus `json:"status"`
	Line        int             `json:"line"` // Line of the interface declaration
}

// NewInterface creates an interface record. Status defaults to up until
// an explicit shutdown line appears in the section.
func NewInterface(name string, line int) *Interface {
	return &Interface{
		Name:   name,
		Status: InterfaceUp,
		Line:   line,
	}
}

package analyze

import (
	"regexp"

	"github.com/frrlint/frrlint/pkg/conf"
	"github.com/frrlint/frrlint/pkg/model"
)

var (
	reInterface   = regexp.MustCompile(`^interface\s+(\S+)`)
	reIPAddress   = regexp.MustCompile(`^ip\s+address\s+([\d./]+)`)
	reDescription = regexp.MustCompile(`^description\s+(.+)`)
)

// ExtractInterfaces walks the link configuration once and records
// interface sections. Sectioning is flat: an `interface <name>` line
// owns every following line until the next one, and lines before the
// first interface are ignored.
func ExtractInterfaces(cfg *conf.Config, facts *Facts) {
	var current *model.Interface

	for _, line := range cfg.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}

		if m := reInterface.FindStringSubmatch(line.Text); m != nil {
			current = facts.AddInterface(model.NewInterface(m[1], line.Num))
			continue
		}
		if current == nil {
			continue
		}

		if m := reIPAddress.FindStringSubmatch(line.Text); m != nil {
			current.Addresses = append(current.Addresses, m[1])
			continue
		}

		// Last description wins when repeated within a section.
		if m := reDescription.FindStringSubmatch(line.Text); m != nil {
			current.Description = m[1]
			continue
		}

		if line.Text == "shutdown" {
			current.Status = model.InterfaceDown
		}
	}
}

// Package presentation renders composition views for display. Formatters
// only call the Component read contract; they never see records.
package presentation

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// Formatter renders a component as a string
type Formatter interface {
	Format(c composition.Component) (string, error)
}

// Format names
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// Names lists the supported format names in menu order
func Names() []string {
	return []string{FormatText, FormatJSON, FormatXML, FormatYAML}
}

// ForName picks a formatter by name or by its 1-based menu number
func ForName(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatText, "1", "":
		return TextFormatter{}, nil
	case FormatJSON, "2":
		return JSONFormatter{Indent: "  "}, nil
	case FormatXML, "3":
		return XMLFormatter{Indent: "  "}, nil
	case FormatYAML, "4":
		return YAMLFormatter{}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown display format %q (want one of %s)",
			name, strings.Join(Names(), ", "))
	}
}

// snapshot is the flattened read of a component shared by the structured formats
type snapshot struct {
	Description string            `json:"description" yaml:"description"`
	Health      int               `json:"health" yaml:"health"`
	Strength    int               `json:"strength" yaml:"strength"`
	Equipment   map[string]string `json:"equipment" yaml:"equipment"`
}

func takeSnapshot(c composition.Component) snapshot {
	return snapshot{
		Description: c.Description(),
		Health:      c.TotalHealth(),
		Strength:    c.TotalStrength(),
		Equipment:   c.Equipment(),
	}
}

func sortedSlots(equipment map[string]string) []string {
	slots := make([]string, 0, len(equipment))
	for slot := range equipment {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

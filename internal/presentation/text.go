package presentation

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-party/internal/composition"
)

// TextFormatter renders a plain multi-line summary
type TextFormatter struct{}

// Format implements Formatter
func (TextFormatter) Format(c composition.Component) (string, error) {
	equipment := c.Equipment()
	items := make([]string, 0, len(equipment))
	for _, slot := range sortedSlots(equipment) {
		items = append(items, fmt.Sprintf("%s: %s", slot, equipment[slot]))
	}

	var b strings.Builder
	fmt.Fprintln(&b, c.Description())
	fmt.Fprintf(&b, "Health: %d\n", c.TotalHealth())
	fmt.Fprintf(&b, "Strength: %d\n", c.TotalStrength())
	fmt.Fprintf(&b, "Equipment: %s", strings.Join(items, ", "))
	return b.String(), nil
}

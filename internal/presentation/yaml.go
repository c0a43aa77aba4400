package presentation

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// YAMLFormatter renders a YAML document
type YAMLFormatter struct{}

// Format implements Formatter
func (YAMLFormatter) Format(c composition.Component) (string, error) {
	data, err := yaml.Marshal(takeSnapshot(c))
	if err != nil {
		return "", errors.Wrap(err, "failed to encode yaml")
	}
	return strings.TrimRight(string(data), "\n"), nil
}

package presentation

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// JSONFormatter renders a JSON object. encoding/json sorts map keys, so
// equipment order is stable.
type JSONFormatter struct {
	Indent string
}

// Format implements Formatter
func (f JSONFormatter) Format(c composition.Component) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.Indent == "" {
		data, err = json.Marshal(takeSnapshot(c))
	} else {
		data, err = json.MarshalIndent(takeSnapshot(c), "", f.Indent)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to encode json")
	}
	return string(data), nil
}

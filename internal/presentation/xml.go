package presentation

import (
	"encoding/xml"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// XMLFormatter renders a <Character> document. Slot names are caller-chosen
// strings, so they go in an attribute rather than becoming element names.
type XMLFormatter struct {
	Indent string
}

type xmlCharacter struct {
	XMLName     xml.Name  `xml:"Character"`
	Description string    `xml:"Description"`
	Health      int       `xml:"Health"`
	Strength    int       `xml:"Strength"`
	Equipment   []xmlItem `xml:"Equipment>Item"`
}

type xmlItem struct {
	Slot string `xml:"slot,attr"`
	Name string `xml:",chardata"`
}

// Format implements Formatter
func (f XMLFormatter) Format(c composition.Component) (string, error) {
	snap := takeSnapshot(c)
	doc := xmlCharacter{
		Description: snap.Description,
		Health:      snap.Health,
		Strength:    snap.Strength,
		Equipment:   make([]xmlItem, 0, len(snap.Equipment)),
	}
	for _, slot := range sortedSlots(snap.Equipment) {
		doc.Equipment = append(doc.Equipment, xmlItem{Slot: slot, Name: snap.Equipment[slot]})
	}

	data, err := xml.MarshalIndent(doc, "", f.Indent)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode xml")
	}
	return string(data), nil
}

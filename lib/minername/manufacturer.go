package minername

import "strings"

type Manufacturer struct {
	// Key is the canonical lowercase identifier stored in ParsedName.
	Key string
	// Name is how the source site spells the manufacturer.
	Name    string
	Aliases []string
}

// Manufacturers is the closed set of manufacturers recognized in names,
// the order decides which one wins when a name mentions several.
var Manufacturers = []Manufacturer{
	{Key: "bitmain", Name: "Bitmain", Aliases: []string{"bitmain", "antminer"}},
	{Key: "volcminer", Name: "VolcMiner", Aliases: []string{"volcminer"}},
	{Key: "iceriver", Name: "IceRiver", Aliases: []string{"iceriver"}},
	{Key: "jasminer", Name: "Jasminer", Aliases: []string{"jasminer"}},
	{Key: "goldshell", Name: "Goldshell", Aliases: []string{"goldshell"}},
	{Key: "canaan", Name: "Canaan", Aliases: []string{"canaan"}},
	{Key: "microbt", Name: "MicroBT", Aliases: []string{"microbt"}},
	{Key: "bitdeer", Name: "Bitdeer", Aliases: []string{"bitdeer"}},
	{Key: "elphapex", Name: "ElphaPex", Aliases: []string{"elphapex"}},
	{Key: "pinecone", Name: "Pinecone", Aliases: []string{"pinecone"}},
}

// ManufacturerOf returns the key of the first manufacturer mentioned in
// name, or an empty string.
func ManufacturerOf(name string) string {
	lowered := strings.ToLower(name)
	for _, m := range Manufacturers {
		for _, alias := range m.Aliases {
			if strings.Contains(lowered, alias) {
				return m.Key
			}
		}
	}
	return ""
}

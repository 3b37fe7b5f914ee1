package models

// InstrumentType is one selectable group under a family, e.g. "Guitar" under
// "Strings", with the service names commonly offered for it.
type InstrumentType struct {
	ID          string   `bson:"_id,omitempty" json:"_id,omitempty"`
	Type        string   `bson:"type" json:"type"`
	ServiceType []string `bson:"serviceType" json:"serviceType"`
}

// InstrumentFamily is the top level of the reference catalog:
// family -> instrument types -> service names.
type InstrumentFamily struct {
	ID               string           `bson:"_id,omitempty" json:"_id,omitempty"`
	InstrumentFamily string           `bson:"instrumentFamily" json:"instrumentFamily"`
	InstrumentTypes  []InstrumentType `bson:"instrumentTypes" json:"instrumentTypes"`
}

// FamilyForType reverse-looks-up the family owning a given instrument type.
// Returns "" when the type is not in the catalog.
func FamilyForType(catalog []InstrumentFamily, typeName string) string {
	for _, family := range catalog {
		for _, it := range family.InstrumentTypes {
			if it.Type == typeName {
				return family.InstrumentFamily
			}
		}
	}
	return ""
}

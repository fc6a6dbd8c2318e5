package domain

import (
	"strings"
	"time"
)

// Room represents a hotel room in the catalog
type Room struct {
	ID            int64
	Name          string
	Type          string
	Capacity      int
	PricePerNight float64
	Description   string
	ImageURL      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Known room types
const (
	RoomTypeSuite    = "Suite"
	RoomTypeStandard = "Standard"
	RoomTypeEconomy  = "Economy"
)

// roomFeatures maps a lower-cased room type to its ordered feature icon tokens
var roomFeatures = map[string][]string{
	strings.ToLower(RoomTypeSuite): {
		"wifi",
		"shower",
		"heat",
		"snowflake",
		"couch",
		"plate-utensils",
		"terrace",
		"holding-hand-dinner",
		"screen",
		"people-roof",
		"bed-alt",
	},
	strings.ToLower(RoomTypeStandard): {
		"wifi",
		"shower",
		"heat",
		"screen",
		"bed-alt",
	},
	strings.ToLower(RoomTypeEconomy): {
		"wifi",
		"shower",
		"bed-alt",
	},
}

// FeaturesForType returns the feature tokens of a room type, matched case-insensitively.
// The second value is false for an unknown type.
func FeaturesForType(roomType string) ([]string, bool) {
	features, ok := roomFeatures[strings.ToLower(strings.TrimSpace(roomType))]
	if !ok {
		return nil, false
	}
	out := make([]string, len(features))
	copy(out, features)
	return out, true
}

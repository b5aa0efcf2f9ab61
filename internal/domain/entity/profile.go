package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// EffectiveProfile is the fully resolved view of one location at one instant.
// It is recomputed on every read and never stored.
type EffectiveProfile struct {
	LocationID  string           `json:"location_id,omitempty"`
	Fields      map[Field]string `json:"fields"`
	Week        []*ResolvedDay   `json:"opening_hours"`
	Timezone    string           `json:"timezone"`
	Open247     bool             `json:"open_247"`
	Coordinates *orb.Point       `json:"coordinates,omitempty"`
	Categories  []string         `json:"categories,omitempty"`
	OpenState   OpenState        `json:"is_open"`
	EvaluatedAt time.Time        `json:"evaluated_at"`
}

package model

// EntityType distinguishes the two kinds of catalog entities
type EntityType string

const (
	EntityPlayer EntityType = "player"
	EntityTeam   EntityType = "team"
)

// Ref identifies an entity within one sport's catalog. Player and team
// id spaces may overlap, so the type is part of the key.
type Ref struct {
	Type EntityType `json:"type"`
	ID   int        `json:"id"`
}

// Less orders refs deterministically (players before teams, then by id)
func (r Ref) Less(other Ref) bool {
	if r.Type != other.Type {
		return r.Type == EntityPlayer
	}
	return r.ID < other.ID
}

// Entity is one catalog record, immutable within a snapshot
type Entity struct {
	Ref           Ref    `json:"ref"`
	Sport         string `json:"sport"`
	CanonicalName string `json:"canonical_name"`
	HomeTeamID    *int   `json:"home_team_id,omitempty"` // players only, nil when unlinked
}

// PatternType classifies how an alias was derived from the entity name
type PatternType string

const (
	PatternFullName  PatternType = "full_name"
	PatternLastName  PatternType = "last_name"
	PatternTeamFull  PatternType = "team_full"
	PatternTeamShort PatternType = "team_short"
)

// Pattern is one matchable alias. Several patterns may share the same
// normalized text (name collisions across entities).
type Pattern struct {
	Text            string      `json:"text"` // normalized
	Length          int         `json:"length"`
	Type            PatternType `json:"type"`
	RequiresContext bool        `json:"requires_context"`
	Entity          Ref         `json:"entity"`
	ContextTeamID   *int        `json:"context_team_id,omitempty"`
}

// RawHit is one dictionary occurrence in a haystack, before boundary and
// overlap filtering. Offsets are byte positions into the normalized text.
type RawHit struct {
	Start   int
	End     int // exclusive
	Pattern string
	Length  int
}

// Confidence is the qualitative certainty assigned after disambiguation
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

// MatchedEntity is the per-text, post-disambiguation result
type MatchedEntity struct {
	Entity        Ref           `json:"entity"`
	CanonicalName string        `json:"canonical_name"`
	Confidence    Confidence    `json:"confidence"`
	Patterns      []PatternType `json:"patterns"`  // contributing pattern types
	Positions     []int         `json:"positions"` // match start offsets in normalized text
}

// MentionCount is one row of a co-mention ranking
type MentionCount struct {
	Entity        Ref      `json:"entity"`
	CanonicalName string   `json:"canonical_name"`
	Count         int      `json:"count"`
	Links         []string `json:"links"` // article links contributing to the count
}

package domain

// Provenance is the validation level of an artwork-tag link. Links start at
// AI and move one step at a time toward EXPERT.
type Provenance string

const (
	ProvenanceAI     Provenance = "AI"
	ProvenanceHuman  Provenance = "HUMAN"
	ProvenanceExpert Provenance = "EXPERT"
)

// Level describes a validation tier for display purposes.
type Level struct {
	Name        Provenance `json:"name"`
	DisplayName string     `json:"display_name"`
	Color       string     `json:"color"`
	Enabled     bool       `json:"enabled"`
	Order       int        `json:"order"`
	Description string     `json:"description"`
}

// Levels lists the validation tiers in display order, EXPERT leftmost.
var Levels = []Level{
	{
		Name:        ProvenanceExpert,
		DisplayName: "Expert",
		Color:       "amber-700",
		Enabled:     true,
		Order:       0,
		Description: "Expert-validated labels with high confidence",
	},
	{
		Name:        ProvenanceHuman,
		DisplayName: "Human",
		Color:       "blue-600",
		Enabled:     true,
		Order:       1,
		Description: "Human-validated labels with moderate confidence",
	},
	{
		Name:        ProvenanceAI,
		DisplayName: "AI",
		Color:       "green-600",
		Enabled:     true,
		Order:       2,
		Description: "AI-suggested labels requiring validation",
	},
}

// ladder orders levels from lowest to highest confidence.
var ladder = []Provenance{ProvenanceAI, ProvenanceHuman, ProvenanceExpert}

func (p Provenance) Valid() bool {
	for _, l := range ladder {
		if l == p {
			return true
		}
	}
	return false
}

// Promote returns the next level toward EXPERT.
func (p Provenance) Promote() (Provenance, error) {
	for i, l := range ladder {
		if l != p {
			continue
		}
		if i == len(ladder)-1 {
			return p, ErrAtHighestLevel
		}
		return ladder[i+1], nil
	}
	return p, ErrUnknownLevel
}

// Demote returns the previous level toward AI.
func (p Provenance) Demote() (Provenance, error) {
	for i, l := range ladder {
		if l != p {
			continue
		}
		if i == 0 {
			return p, ErrAtLowestLevel
		}
		return ladder[i-1], nil
	}
	return p, ErrUnknownLevel
}

// LevelByName returns the display configuration for a level.
func LevelByName(name Provenance) (Level, error) {
	for _, l := range Levels {
		if l.Name == name {
			return l, nil
		}
	}
	return Level{}, ErrUnknownLevel
}

// EnabledLevels returns the active levels in display order.
func EnabledLevels() []Level {
	out := make([]Level, 0, len(Levels))
	for _, l := range Levels {
		if l.Enabled {
			out = append(out, l)
		}
	}
	return out
}

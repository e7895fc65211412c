package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/zone-rando/internal/config"
)

// EntityTypeSpoiler identifies spoiler records
const EntityTypeSpoiler = "spoiler"

var _ core.Entity = (*Spoiler)(nil)

// Connection is one doorway and the destination it was given
type Connection struct {
	Entrance string `json:"entrance"`
	Exit     string `json:"exit"`
}

// Spoiler records the outcome of one generation run
type Spoiler struct {
	ID string `json:"id"`
	// Seed is the seed of the attempt that succeeded
	Seed     int64 `json:"seed"`
	BaseSeed int64 `json:"base_seed"`
	Attempts int   `json:"attempts"`

	Options     *config.Options `json:"options"`
	Connections []Connection    `json:"connections"`

	IslandsWithBannedContent []string `json:"islands_with_banned_content,omitempty"`
	RequiredDungeons         []string `json:"required_dungeons,omitempty"`
	BannedDungeons           []string `json:"banned_dungeons,omitempty"`
	RequiredBosses           []string `json:"required_bosses,omitempty"`
	BannedBosses             []string `json:"banned_bosses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// GetID implements core.Entity
func (s *Spoiler) GetID() string { return s.ID }

// GetType implements core.Entity
func (s *Spoiler) GetType() string { return EntityTypeSpoiler }

// ExitFor returns the destination of an entrance
func (s *Spoiler) ExitFor(entrance string) (string, bool) {
	for _, c := range s.Connections {
		if c.Entrance == entrance {
			return c.Exit, true
		}
	}
	return "", false
}

// Clone returns a deep copy
func (s *Spoiler) Clone() *Spoiler {
	if s == nil {
		return nil
	}
	out := *s
	if s.Options != nil {
		opts := *s.Options
		opts.IncludedDungeons = cloneStrings(s.Options.IncludedDungeons)
		opts.ExcludedDungeons = cloneStrings(s.Options.ExcludedDungeons)
		opts.PriorityLocations = cloneStrings(s.Options.PriorityLocations)
		opts.ExcludedLocations = cloneStrings(s.Options.ExcludedLocations)
		out.Options = &opts
	}
	if s.Connections != nil {
		out.Connections = make([]Connection, len(s.Connections))
		copy(out.Connections, s.Connections)
	}
	out.IslandsWithBannedContent = cloneStrings(s.IslandsWithBannedContent)
	out.RequiredDungeons = cloneStrings(s.RequiredDungeons)
	out.BannedDungeons = cloneStrings(s.BannedDungeons)
	out.RequiredBosses = cloneStrings(s.RequiredBosses)
	out.BannedBosses = cloneStrings(s.BannedBosses)
	return &out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Package catalogue holds the static doorway, destination and item location
// data of the Great Sea.
package catalogue

import (
	"bytes"
	"embed"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

//go:embed data/zones.yaml data/locations.yaml
var dataFS embed.FS

const (
	zonesFile     = "data/zones.yaml"
	locationsFile = "data/locations.yaml"
)

// EntranceSpec describes one doorway before nesting targets are resolved
type EntranceSpec struct {
	Name      string        `yaml:"name"`
	Category  zone.Category `yaml:"category"`
	Island    string        `yaml:"island,omitempty"`
	NestedIn  string        `yaml:"nested_in,omitempty"`
	Objective string        `yaml:"objective,omitempty"`
}

// ExitSpec describes one destination
type ExitSpec struct {
	Name     string        `yaml:"name"`
	Category zone.Category `yaml:"category"`
	Zone     string        `yaml:"zone,omitempty"`
}

// Objective is a dungeon that required-bosses mode can require or ban,
// along with the destinations that belong to it
type Objective struct {
	Dungeon      string `yaml:"dungeon"`
	Boss         string `yaml:"boss"`
	DungeonExit  string `yaml:"dungeon_exit,omitempty"`
	MinibossExit string `yaml:"miniboss_exit,omitempty"`
	BossExit     string `yaml:"boss_exit"`
}

// Catalogue is the full static data set
type Catalogue struct {
	Entrances []EntranceSpec `yaml:"entrances"`
	Exits     []ExitSpec     `yaml:"exits"`

	// Vanilla maps entrance name to the exit it leads to in the unmodified game
	Vanilla map[string]string `yaml:"vanilla"`

	// LocationExitOverrides pins locations whose zone does not identify their exit
	LocationExitOverrides map[string]string `yaml:"location_exit_overrides"`

	// SideDependencies lists locations that are not behind an exit but need
	// other locations that are
	SideDependencies map[string][]string `yaml:"side_dependencies"`

	Objectives []Objective `yaml:"objectives"`

	IgnoredLocationZones []string `yaml:"ignored_location_zones"`
	FixedInteriorZones   []string `yaml:"fixed_interior_zones"`

	// ObjectiveSideLocations are locations outside a dungeon that are lost
	// along with it when the dungeon is banned
	ObjectiveSideLocations map[string]string `yaml:"objective_side_locations"`

	Locations []Location `yaml:"locations,omitempty"`
}

// Default loads the catalogue embedded in the binary. Every call returns a
// fresh copy that the caller may modify.
func Default() (*Catalogue, error) {
	zones, err := dataFS.ReadFile(zonesFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded zones")
	}
	locations, err := dataFS.ReadFile(locationsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded locations")
	}

	return Parse(bytes.NewReader(zones), bytes.NewReader(locations))
}

// Parse decodes a catalogue from its zone and location documents
func Parse(zones, locations io.Reader) (*Catalogue, error) {
	c := &Catalogue{}

	dec := yaml.NewDecoder(zones)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode zones")
	}

	var locs struct {
		Locations []Location `yaml:"locations"`
	}
	dec = yaml.NewDecoder(locations)
	dec.KnownFields(true)
	if err := dec.Decode(&locs); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode locations")
	}
	c.Locations = locs.Locations

	return c, nil
}

// Encode writes the zone half of the catalogue as YAML
func (c *Catalogue) Encode(w io.Writer) error {
	zones := *c
	zones.Locations = nil

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&zones); err != nil {
		return errors.Wrap(err, "failed to encode catalogue")
	}
	return enc.Close()
}

// DungeonNames returns every objective dungeon in catalogue order
func (c *Catalogue) DungeonNames() []string {
	names := make([]string, 0, len(c.Objectives))
	for _, o := range c.Objectives {
		names = append(names, o.Dungeon)
	}
	return names
}

// SplitLocationName splits "Zone - Specific" into its zone and specific
// parts. A name without a separator is its own zone.
func SplitLocationName(name string) (zoneName, specific string) {
	zoneName, specific, found := strings.Cut(name, " - ")
	if !found {
		return name, name
	}
	return zoneName, specific
}

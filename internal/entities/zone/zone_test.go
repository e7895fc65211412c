package zone_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

type ZoneTestSuite struct {
	suite.Suite
}

func TestZoneSuite(t *testing.T) {
	suite.Run(t, new(ZoneTestSuite))
}

func (s *ZoneTestSuite) TestEntranceValidate() {
	cave := &zone.Exit{Name: "Ice Ring Isle Secret Cave", ZoneName: "Ice Ring Isle", Category: zone.CategorySecretCave}

	testCases := []struct {
		name      string
		entrance  *zone.Entrance
		expectErr bool
	}{
		{
			name:     "island entrance",
			entrance: &zone.Entrance{Name: "Secret Cave Entrance on Ice Ring Isle", Island: "Ice Ring Isle"},
		},
		{
			name:     "nested entrance",
			entrance: &zone.Entrance{Name: "Inner Entrance in Ice Ring Isle Secret Cave", NestedIn: cave},
		},
		{
			name:      "neither",
			entrance:  &zone.Entrance{Name: "Nowhere"},
			expectErr: true,
		},
		{
			name:      "both",
			entrance:  &zone.Entrance{Name: "Everywhere", Island: "Ice Ring Isle", NestedIn: cave},
			expectErr: true,
		},
		{
			name: "island objective doorway",
			entrance: &zone.Entrance{
				Name:      "Boss Entrance in Forsaken Fortress",
				Island:    "Forsaken Fortress Sector",
				Objective: "Forsaken Fortress",
			},
		},
		{
			name:      "nested objective doorway",
			entrance:  &zone.Entrance{Name: "Bad", NestedIn: cave, Objective: "Forsaken Fortress"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.entrance.Validate()
			if tc.expectErr {
				s.Require().Error(err)
				s.Assert().True(errors.IsConsistencyError(err))
				s.Assert().Equal(tc.entrance.Name, errors.GetMeta(err)["entrance"])
			} else {
				s.Assert().NoError(err)
			}
		})
	}
}

func (s *ZoneTestSuite) TestEntity() {
	ex := &zone.Exit{Name: "Wind Temple", Category: zone.CategoryDungeon}
	en := &zone.Entrance{Name: "Dungeon Entrance on Gale Isle", Island: "Gale Isle"}

	var entities []core.Entity = []core.Entity{ex, en}
	s.Assert().Equal("Wind Temple", entities[0].GetID())
	s.Assert().Equal(zone.EntityTypeExit, entities[0].GetType())
	s.Assert().Equal("Dungeon Entrance on Gale Isle", entities[1].GetID())
	s.Assert().Equal(zone.EntityTypeEntrance, entities[1].GetType())
}

func (s *ZoneTestSuite) TestCategories() {
	cats := zone.Categories()
	s.Require().Len(cats, 6)
	s.Assert().Equal(zone.CategoryDungeon, cats[0])
	s.Assert().Equal(zone.CategoryFairyFountain, cats[5])

	cats[0] = "mutated"
	s.Assert().Equal(zone.CategoryDungeon, zone.Categories()[0])

	s.Assert().True(zone.CategoryBoss.HighestValue())
	s.Assert().True(zone.CategoryDungeon.HighestValue())
	s.Assert().False(zone.CategoryMiniboss.HighestValue())
	s.Assert().False(zone.Category("tower").Valid())
}

func (s *ZoneTestSuite) TestObjectiveDoorway() {
	ff := &zone.Entrance{Name: "Boss Entrance in Forsaken Fortress", Island: "Forsaken Fortress Sector", Objective: "Forsaken Fortress"}
	s.Assert().True(ff.IsObjectiveDoorway())
	s.Assert().False(ff.IsNested())

	plain := &zone.Entrance{Name: "Dungeon Entrance on Gale Isle", Island: "Gale Isle"}
	s.Assert().False(plain.IsObjectiveDoorway())
}

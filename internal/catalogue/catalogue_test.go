package catalogue_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

type CatalogueTestSuite struct {
	suite.Suite
	cat *catalogue.Catalogue
}

func TestCatalogueSuite(t *testing.T) {
	suite.Run(t, new(CatalogueTestSuite))
}

func (s *CatalogueTestSuite) SetupTest() {
	cat, err := catalogue.Default()
	s.Require().NoError(err)
	s.cat = cat
}

func (s *CatalogueTestSuite) TestDefaultCounts() {
	counts := map[zone.Category]int{}
	for _, e := range s.cat.Entrances {
		counts[e.Category]++
	}

	s.Assert().Equal(5, counts[zone.CategoryDungeon])
	s.Assert().Equal(5, counts[zone.CategoryMiniboss])
	s.Assert().Equal(6, counts[zone.CategoryBoss])
	s.Assert().Equal(20, counts[zone.CategorySecretCave])
	s.Assert().Equal(2, counts[zone.CategorySecretCaveInner])
	s.Assert().Equal(6, counts[zone.CategoryFairyFountain])

	s.Assert().Len(s.cat.Exits, len(s.cat.Entrances))
	s.Assert().Len(s.cat.Vanilla, len(s.cat.Entrances))
	s.Assert().Len(s.cat.Objectives, 6)
}

func (s *CatalogueTestSuite) TestDefaultReturnsFreshCopy() {
	s.cat.Entrances = nil

	again, err := catalogue.Default()
	s.Require().NoError(err)
	s.Assert().NotEmpty(again.Entrances)
}

func (s *CatalogueTestSuite) TestSingleObjectiveDoorway() {
	var doorways []string
	for _, e := range s.cat.Entrances {
		if e.Objective != "" {
			doorways = append(doorways, e.Name)
			s.Assert().NotEmpty(e.Island)
		}
	}
	s.Assert().Equal([]string{"Boss Entrance in Forsaken Fortress"}, doorways)
}

func (s *CatalogueTestSuite) TestHeartContainersAreBossLocations() {
	var bosses int
	for _, l := range s.cat.Locations {
		if strings.HasSuffix(l.Name, " Heart Container") {
			s.Assert().True(l.Has(catalogue.FlagBoss), l.Name)
			bosses++
		}
	}
	s.Assert().Equal(6, bosses)
}

func (s *CatalogueTestSuite) TestDungeonNames() {
	s.Assert().Equal([]string{
		"Dragon Roost Cavern",
		"Forbidden Woods",
		"Tower of the Gods",
		"Forsaken Fortress",
		"Earth Temple",
		"Wind Temple",
	}, s.cat.DungeonNames())
}

func (s *CatalogueTestSuite) TestSplitLocationName() {
	testCases := []struct {
		name     string
		zone     string
		specific string
	}{
		{"Wind Temple - Big Key Chest", "Wind Temple", "Big Key Chest"},
		{"Ice Ring Isle - Inner Cave - Chest", "Ice Ring Isle", "Inner Cave - Chest"},
		{"Defeat Ganondorf", "Defeat Ganondorf", "Defeat Ganondorf"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			z, specific := catalogue.SplitLocationName(tc.name)
			s.Assert().Equal(tc.zone, z)
			s.Assert().Equal(tc.specific, specific)
		})
	}
}

func (s *CatalogueTestSuite) TestLocationFlags() {
	loc := catalogue.Location{
		Name:  "Boating Course - Cave",
		Flags: []catalogue.Flag{catalogue.FlagPuzzleCave, catalogue.FlagCombatCave},
	}
	s.Assert().Equal("Boating Course", loc.Zone())
	s.Assert().True(loc.Has(catalogue.FlagCombatCave))
	s.Assert().False(loc.Has(catalogue.FlagDungeon))
	s.Assert().True(loc.HasAny(catalogue.FlagDungeon, catalogue.FlagPuzzleCave))
	s.Assert().False(loc.HasAny())
}

func (s *CatalogueTestSuite) TestParseRejectsUnknownFields() {
	zones := strings.NewReader("entrances:\n  - name: A\n    color: red\n")
	_, err := catalogue.Parse(zones, strings.NewReader("locations: []\n"))
	s.Require().Error(err)
	s.Assert().True(errors.IsConsistencyError(err))
}

func (s *CatalogueTestSuite) TestEncodeRoundTrip() {
	var buf bytes.Buffer
	s.Require().NoError(s.cat.Encode(&buf))

	parsed, err := catalogue.Parse(&buf, strings.NewReader("locations: []\n"))
	s.Require().NoError(err)
	s.Assert().Equal(s.cat.Entrances, parsed.Entrances)
	s.Assert().Equal(s.cat.Vanilla, parsed.Vanilla)
	s.Assert().Empty(parsed.Locations)
}

package catalogue

// Flag classifies an item location for progression settings
type Flag string

// Location flags
const (
	FlagAlways         Flag = "ALWAYS"
	FlagDungeon        Flag = "DUNGEON"
	FlagBoss           Flag = "BOSS"
	FlagTingleChest    Flag = "TNGL_CT"
	FlagDungeonSecret  Flag = "DG_SCRT"
	FlagPuzzleCave     Flag = "PZL_CVE"
	FlagCombatCave     Flag = "CBT_CVE"
	FlagSavage         Flag = "SAVAGE"
	FlagGreatFairy     Flag = "GRT_FRY"
	FlagShortSidequest Flag = "SHRT_SQ"
	FlagLongSidequest  Flag = "LONG_SQ"
	FlagMailbox        Flag = "MAILBOX"
	FlagExpensive      Flag = "XPENSVE"
	FlagBigOcto        Flag = "BG_OCTO"
)

// Location is one item location
type Location struct {
	Name string `yaml:"name"`
	// Region is the world region holding the location
	Region string `yaml:"region"`
	Flags  []Flag `yaml:"flags,flow"`
}

// Zone returns the zone part of the location name
func (l Location) Zone() string {
	z, _ := SplitLocationName(l.Name)
	return z
}

// Has reports whether the location carries flag f
func (l Location) Has(f Flag) bool {
	for _, have := range l.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// HasAny reports whether the location carries at least one of flags
func (l Location) HasAny(flags ...Flag) bool {
	for _, f := range flags {
		if l.Has(f) {
			return true
		}
	}
	return false
}

package input

import "github.com/sfce/sfce/internal/piece"

// DropType is the kind of gravity-assist drop the handling profile
// makes available.
type DropType int

const (
	DropNone DropType = iota
	DropSoft
	DropSonic
)

// Profile is the handling configuration that constrains the input
// search: which kickset applies, whether 180°
// spins and DAS are legal, which drop assist is available, the search's
// input-count bound, and the finesse/ignore mode switches.
type Profile struct {
	Kicks     *piece.KickSet
	Use180    bool
	Drop      DropType
	MaxInputs int
	DAS       bool
	Finesse   bool
	Ignore    bool
}

// Default returns the baseline SRS handling profile: DAS and sonic drop
// enabled, no 180 spins, max 6 inputs, reachability (non-finesse) mode.
func Default() Profile {
	return Profile{
		Kicks:     piece.SRS,
		Use180:    false,
		Drop:      DropSonic,
		MaxInputs: 6,
		DAS:       true,
		Finesse:   false,
		Ignore:    false,
	}
}

// Presets are named handling-profile shortcuts so a CLI invocation need
// not spell out every flag. A `--preset` flag resolves one of these
// before any explicit flag overrides are applied.
var Presets = map[string]Profile{
	"srs-with-das": Default(),
	"srs-no-das": {
		Kicks:     piece.SRS,
		Drop:      DropSonic,
		MaxInputs: 8,
		DAS:       false,
	},
	"finesse": {
		Kicks:     piece.SRS,
		Drop:      DropSonic,
		MaxInputs: 6,
		DAS:       true,
		Finesse:   true,
	},
	"ignore-all": {
		Kicks:     piece.SRS,
		Drop:      DropSonic,
		MaxInputs: 0,
		Ignore:    true,
	},
}

// LegalKeys returns the set of keys the input search may apply under p.
// HardDrop is deliberately excluded: the search
// implicitly hard-drops by comparing simulated state against the target.
func (p Profile) LegalKeys() []Key {
	keys := []Key{MoveLeft, MoveRight, CW, CCW}
	if p.DAS {
		keys = append(keys, DasLeft, DasRight)
	}
	if p.Use180 {
		keys = append(keys, Flip)
	}
	if p.Drop != DropNone {
		keys = append(keys, SonicDrop)
	}
	if p.Drop == DropSoft {
		keys = append(keys, SoftDrop)
	}
	return keys
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sfce/sfce/internal/input"
	"github.com/sfce/sfce/internal/piece"
)

// handlingFlags holds the handling-profile flag values shared by every
// subcommand that drives the input search.
type handlingFlags struct {
	preset    string
	kickset   string
	use180    bool
	dropType  string
	maxInputs int
	das       bool
	finesse   bool
	ignore    bool
}

func addHandlingFlags(cmd *cobra.Command, f *handlingFlags) {
	cmd.Flags().StringVar(&f.preset, "preset", "", `named handling preset (e.g. "srs-with-das", "finesse", "ignore-all"); explicit flags below still override it`)
	cmd.Flags().StringVar(&f.kickset, "kickset", "srs", `kick table: "srs" or a path to a kick-table file`)
	cmd.Flags().BoolVar(&f.use180, "use-180", false, "allow 180-degree rotations")
	cmd.Flags().StringVar(&f.dropType, "drop-type", "sonic", "drop assist: none, soft, or sonic")
	cmd.Flags().IntVar(&f.maxInputs, "max-inputs", 6, "maximum key sequence length the search will try")
	cmd.Flags().BoolVar(&f.das, "das", true, "allow DAS (charged left/right) moves")
	cmd.Flags().BoolVar(&f.finesse, "finesse", false, "finesse mode: confirm the shortest sequence rather than accepting the first")
	cmd.Flags().BoolVar(&f.ignore, "ignore", false, "skip the input search entirely and assume every target is reachable")
}

// resolve turns the flag values into an input.Profile. When --preset
// names one of input.Presets, its values seed the profile first; any
// flag the caller explicitly set then overrides the preset. --kickset,
// when it names a file rather than the built-in "srs", loads an
// alternate kick table from disk.
func (f handlingFlags) resolve(flags *pflag.FlagSet) (input.Profile, error) {
	p := input.Default()
	if f.preset != "" {
		preset, ok := input.Presets[f.preset]
		if !ok {
			return input.Profile{}, fmt.Errorf("sfce: unknown --preset %q", f.preset)
		}
		p = preset
	}

	if flags.Changed("use-180") {
		p.Use180 = f.use180
	}
	if flags.Changed("max-inputs") {
		p.MaxInputs = f.maxInputs
	}
	if flags.Changed("das") {
		p.DAS = f.das
	}
	if flags.Changed("finesse") {
		p.Finesse = f.finesse
	}
	if flags.Changed("ignore") {
		p.Ignore = f.ignore
	}

	if flags.Changed("drop-type") {
		switch strings.ToLower(f.dropType) {
		case "none":
			p.Drop = input.DropNone
		case "soft":
			p.Drop = input.DropSoft
		case "sonic", "":
			p.Drop = input.DropSonic
		default:
			return input.Profile{}, fmt.Errorf("sfce: unknown --drop-type %q (want none, soft, or sonic)", f.dropType)
		}
	}

	if !flags.Changed("kickset") {
		return p, nil
	}
	if f.kickset == "" || strings.EqualFold(f.kickset, "srs") {
		p.Kicks = piece.SRS
		return p, nil
	}

	file, err := os.Open(f.kickset)
	if err != nil {
		return input.Profile{}, fmt.Errorf("sfce: opening kickset file %q: %w", f.kickset, err)
	}
	defer file.Close()

	kicks, err := piece.LoadKickSet(file, f.kickset)
	if err != nil {
		return input.Profile{}, fmt.Errorf("sfce: loading kickset %q: %w", f.kickset, err)
	}
	p.Kicks = kicks
	return p, nil
}

// parseKey parses one key-list token (case-insensitive, e.g.
// "moveleft", "MoveLeft") into an input.Key, for the `send` command.
func parseKey(s string) (input.Key, error) {
	switch strings.ToLower(s) {
	case "moveleft":
		return input.MoveLeft, nil
	case "moveright":
		return input.MoveRight, nil
	case "dasleft":
		return input.DasLeft, nil
	case "dasright":
		return input.DasRight, nil
	case "cw":
		return input.CW, nil
	case "ccw":
		return input.CCW, nil
	case "flip":
		return input.Flip, nil
	case "softdrop":
		return input.SoftDrop, nil
	case "sonicdrop":
		return input.SonicDrop, nil
	case "harddrop":
		return input.HardDrop, nil
	default:
		return 0, fmt.Errorf("sfce: unknown key %q", s)
	}
}

func parseKeyList(tokens []string) ([]input.Key, error) {
	keys := make([]input.Key, 0, len(tokens))
	for _, t := range tokens {
		k, err := parseKey(t)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func parseRotation(s string) (piece.Rotation, error) {
	switch strings.ToLower(s) {
	case "north", "n":
		return piece.North, nil
	case "east", "e":
		return piece.East, nil
	case "south", "s":
		return piece.South, nil
	case "west", "w":
		return piece.West, nil
	default:
		return 0, fmt.Errorf("sfce: unknown rotation %q (want north, east, south, or west)", s)
	}
}

func formatKeys(keys []input.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ",")
}

func parseKind(s string) (piece.Kind, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("sfce: invalid piece kind %q", s)
	}
	k, ok := piece.KindFromChar(s[0])
	if !ok || !k.IsPlaceable() {
		return 0, fmt.Errorf("sfce: invalid piece kind %q", s)
	}
	return k, nil
}

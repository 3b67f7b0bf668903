package main

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/input"
)

// newTestHandlingCmd builds a throwaway *cobra.Command carrying
// handlingFlags, so resolve's flags.Changed checks have something to
// inspect; args simulates the CLI tokens the command was invoked with.
func newTestHandlingCmd(t *testing.T, f *handlingFlags, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(cmd *cobra.Command, args []string) error { return nil }}
	addHandlingFlags(cmd, f)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("cmd.Execute: %v", err)
	}
	return cmd
}

func TestHandlingFlagsResolveDefaults(t *testing.T) {
	var f handlingFlags
	cmd := newTestHandlingCmd(t, &f, "--kickset=srs", "--drop-type=sonic", "--max-inputs=6", "--das=true")
	p, err := f.resolve(cmd.Flags())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.Drop != input.DropSonic || p.Kicks == nil || !p.DAS {
		t.Fatalf("resolve() = %+v, want sonic drop, non-nil kicks, DAS on", p)
	}
}

func TestHandlingFlagsRejectsUnknownDropType(t *testing.T) {
	var f handlingFlags
	cmd := newTestHandlingCmd(t, &f, "--kickset=srs", "--drop-type=warp")
	if _, err := f.resolve(cmd.Flags()); err == nil {
		t.Fatalf("expected an error for an unknown drop type")
	}
}

func TestHandlingFlagsPresetAppliesUnlessOverridden(t *testing.T) {
	var f handlingFlags
	cmd := newTestHandlingCmd(t, &f, "--preset=srs-no-das")
	p, err := f.resolve(cmd.Flags())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.DAS || p.MaxInputs != 8 {
		t.Fatalf("resolve() = %+v, want preset's DAS off and max-inputs 8", p)
	}
}

func TestHandlingFlagsExplicitOverridesPreset(t *testing.T) {
	var f handlingFlags
	cmd := newTestHandlingCmd(t, &f, "--preset=srs-no-das", "--das=true")
	p, err := f.resolve(cmd.Flags())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !p.DAS {
		t.Fatalf("resolve() = %+v, want explicit --das=true to override the preset's DAS off", p)
	}
	if p.MaxInputs != 8 {
		t.Fatalf("resolve() = %+v, want preset's max-inputs 8 to survive since it was not overridden", p)
	}
}

func TestHandlingFlagsRejectsUnknownPreset(t *testing.T) {
	var f handlingFlags
	cmd := newTestHandlingCmd(t, &f, "--preset=nonexistent")
	if _, err := f.resolve(cmd.Flags()); err == nil {
		t.Fatalf("expected an error for an unknown preset")
	}
}

func TestParseKeyRoundTrips(t *testing.T) {
	for _, name := range []string{"MoveLeft", "harddrop", "CW", "Flip"} {
		if _, err := parseKey(name); err != nil {
			t.Errorf("parseKey(%q): %v", name, err)
		}
	}
	if _, err := parseKey("nonsense"); err == nil {
		t.Fatalf("expected an error for an unknown key name")
	}
}

func TestParseRotationAcceptsShortAndLongForms(t *testing.T) {
	for _, name := range []string{"north", "N", "east", "E", "south", "west"} {
		if _, err := parseRotation(name); err != nil {
			t.Errorf("parseRotation(%q): %v", name, err)
		}
	}
}

func TestParseKindRejectsNonPlaceable(t *testing.T) {
	if _, err := parseKind("E"); err == nil {
		t.Fatalf("expected Empty to be rejected as a non-placeable kind")
	}
	if _, err := parseKind("I"); err != nil {
		t.Fatalf("parseKind(\"I\"): %v", err)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/fumen"
)

// Standard guideline board dimensions, registered as the defaults of
// --width/--height/--margin; an explicitly passed value, including 0,
// is used as given.
const (
	defaultWidth  = 10
	defaultHeight = 20
	defaultMargin = 4
)

// boardFlags holds the board-shape overrides shared by every subcommand
// that reads a tetfu.
type boardFlags struct {
	width  int
	height int
	margin int
}

func addBoardFlags(cmd *cobra.Command, f *boardFlags) {
	cmd.Flags().IntVar(&f.width, "width", defaultWidth, "board width")
	cmd.Flags().IntVar(&f.height, "height", defaultHeight, "board height (margin excluded)")
	cmd.Flags().IntVar(&f.margin, "margin", defaultMargin, "board margin rows above height")
}

// decodeTetfu turns a tetfu CLI argument into a Board. It first tries
// the fumen codec (the community-style opaque string); a decode
// failure falls back to the raw board-string grammar (board.Parse),
// which is convenient for scripting and tests without a codec round
// trip. Only the first page of a multi-page fumen is used — commands
// that need every page call fumen.Decode directly.
func decodeTetfu(s string, f boardFlags) (board.Board, error) {
	if g, err := fumen.Decode(s); err == nil && len(g) > 0 {
		return g.Boards()[0], nil
	}
	b, err := board.Parse(s, f.width, f.height, f.margin)
	if err != nil {
		return board.Board{}, fmt.Errorf("sfce: could not parse tetfu as fumen or raw board string: %w", err)
	}
	return b, nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sfce/sfce/internal/board"
	"github.com/sfce/sfce/internal/fumen"
	"github.com/sfce/sfce/internal/piece"
)

// linkType selects how a rendered board is presented: raw board text, a
// shareable fumen URL, or colored terminal output.
type linkType string

const (
	linkRaw             linkType = "raw"
	linkShareableURL    linkType = "url"
	linkColoredTerminal linkType = "term"
)

// outputFlags holds the remaining global flags that don't belong to
// boardFlags or handlingFlags: where results go and
// how boards/sequences within them are rendered.
type outputFlags struct {
	outputPath    string
	link          string
	stopwatch     bool
	cache         bool
	noHold        bool
	hideComments  bool
	pageSeparator string
	rowSeparator  string
}

func addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	cmd.Flags().StringVar(&f.outputPath, "output", "", "write results to this file instead of stdout")
	cmd.Flags().StringVar(&f.link, "link", string(linkRaw), "rendering: raw, url (shareable fumen), or term (colored terminal)")
	cmd.Flags().BoolVar(&f.stopwatch, "stopwatch", false, "report elapsed wall-clock time on completion")
	cmd.Flags().BoolVar(&f.cache, "cache", true, "persist the feasibility/finesse memoization caches under .caches/")
	cmd.Flags().BoolVar(&f.noHold, "no-hold", false, "disable hold-variant expansion; only the pattern's base queues are used")
	cmd.Flags().BoolVar(&f.hideComments, "hide-comments", false, "omit board comments from rendered output")
	cmd.Flags().StringVar(&f.pageSeparator, "page-separator", "\n---\n", "separator between rendered pages")
	cmd.Flags().StringVar(&f.rowSeparator, "row-separator", "|", "separator between rendered board rows")
}

func (f outputFlags) linkType() (linkType, error) {
	switch linkType(strings.ToLower(f.link)) {
	case linkRaw, "":
		return linkRaw, nil
	case linkShareableURL:
		return linkShareableURL, nil
	case linkColoredTerminal:
		return linkColoredTerminal, nil
	default:
		return "", fmt.Errorf("sfce: unknown --link %q (want raw, url, or term)", f.link)
	}
}

// writer opens the output destination: a file at f.outputPath, or
// stdout when unset.
func (f outputFlags) writer() (io.WriteCloser, error) {
	if f.outputPath == "" {
		return nopCloser{os.Stdout}, nil
	}
	file, err := os.Create(f.outputPath)
	if err != nil {
		return nil, fmt.Errorf("sfce: creating output file %q: %w", f.outputPath, err)
	}
	return file, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// renderBoard renders one board according to f's link type.
func renderBoard(b board.Board, f outputFlags) (string, error) {
	if f.hideComments {
		b = b.Clone()
		b.Comment = ""
	}
	lt, err := f.linkType()
	if err != nil {
		return "", err
	}
	switch lt {
	case linkShareableURL:
		return fumen.Encode(fumen.Grid{fumen.PageFromBoard(b)})
	case linkColoredTerminal:
		return renderColoredTerminal(b, f), nil
	default:
		return b.String(), nil
	}
}

// renderColoredTerminal paints each row bottom-to-top using ANSI color
// codes keyed by fumen cell color, one
// character per cell, rows joined by f.rowSeparator.
func renderColoredTerminal(b board.Board, f outputFlags) string {
	var rows []string
	for y := b.Rows() - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < b.W; x++ {
			k := b.Get(x, y)
			sb.WriteString(ansiColorOf(k))
			sb.WriteString(k.String())
			sb.WriteString(ansiReset)
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, f.rowSeparator)
}

const ansiReset = "\x1b[0m"

func ansiColorOf(k piece.Kind) string {
	switch k.Color() {
	case piece.ColorI:
		return "\x1b[36m" // cyan
	case piece.ColorJ:
		return "\x1b[34m" // blue
	case piece.ColorL:
		return "\x1b[33m" // orange (approximated)
	case piece.ColorO:
		return "\x1b[93m" // yellow
	case piece.ColorS:
		return "\x1b[32m" // green
	case piece.ColorT:
		return "\x1b[35m" // purple
	case piece.ColorZ:
		return "\x1b[31m" // red
	case piece.ColorGrey:
		return "\x1b[90m" // grey
	default:
		return "\x1b[0m"
	}
}

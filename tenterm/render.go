package tenterm

import (
	"bufio"
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// RenderOptions controls WriteGrid output.
type RenderOptions struct {
	// Frame draws a box around the grid.
	Frame bool
}

// Lines renders each row as its cells concatenated left to right, blank
// cells as a single space.
func (g Grid) Lines() []string {
	lines := make([]string, Rows)
	var sb strings.Builder
	for y := 0; y < Rows; y++ {
		sb.Reset()
		for x := 0; x < Columns; x++ {
			sb.WriteString(cellText(g[y][x]))
		}
		lines[y] = sb.String()
	}
	return lines
}

// GetDisplay renders the current buffer, one string per row.
func (t *Terminal) GetDisplay() []string {
	return t.buffer.Lines()
}

// WriteGrid writes the grid to w, one row per line.
func WriteGrid(w io.Writer, g Grid, opts RenderOptions) error {
	bw := bufio.NewWriter(w)
	lines := g.Lines()

	if !opts.Frame {
		for _, line := range lines {
			bw.WriteString(line)
			bw.WriteByte('\n')
		}
		return bw.Flush()
	}

	// Symbols may be wider than one column; pad rows to the widest one so
	// the right edge lines up.
	width := Columns
	for _, line := range lines {
		if n := runewidth.StringWidth(line); n > width {
			width = n
		}
	}

	edge := strings.Repeat("─", width)
	bw.WriteString("┌" + edge + "┐\n")
	for _, line := range lines {
		bw.WriteString("│" + runewidth.FillRight(line, width) + "│\n")
	}
	bw.WriteString("└" + edge + "┘\n")
	return bw.Flush()
}

func cellText(cell string) string {
	if cell == "" {
		return " "
	}
	return cell
}

package tenterm

import (
	"log/slog"

	"github.com/rivo/uniseg"
)

const (
	Rows    = 10
	Columns = 10

	// Escape arms the next symbol as a control command.
	Escape = "^"
)

// Grid is a snapshot of the display buffer. An empty string is a blank cell.
type Grid [Rows][Columns]string

// Mode selects how literal symbols are written.
type Mode int

const (
	ModeOverwrite Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	default:
		return "overwrite"
	}
}

type Cursor struct {
	Row int
	Col int
}

// Terminal interprets a stream of single symbols onto a 10x10 grid.
// A Terminal is not safe for concurrent use.
type Terminal struct {
	buffer Grid
	cursor Cursor
	mode   Mode
	state  lookback

	shift  InsertShift
	logger *slog.Logger
}

// NewTerminal creates a blank terminal with the cursor at (0,0) in
// overwrite mode.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		shift:  ShiftPairwise,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ProcessSymbol consumes one input symbol. It accepts any string and never
// fails: out of range moves are clamped and unknown commands are ignored.
func (t *Terminal) ProcessSymbol(symbol string) {
	switch t.state.kind {
	case stateControl:
		t.control(symbol)
	case stateDigit:
		if d, ok := digitValue(symbol); ok {
			t.moveCursor(t.state.digit, d)
		} else if symbol != Escape {
			t.logger.Debug("symbol dropped after row digit", "symbol", symbol, "row", t.state.digit)
		}
	default:
		if symbol != Escape {
			t.writeCharacter(symbol)
		}
	}
	t.state = t.state.next(symbol)
}

// Feed processes text one grapheme cluster at a time. Line terminators are
// skipped.
func (t *Terminal) Feed(text string) {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		symbol := g.Str()
		if isLineBreak(symbol) {
			continue
		}
		t.ProcessSymbol(symbol)
	}
}

func (t *Terminal) writeCharacter(symbol string) {
	row := &t.buffer[t.cursor.Row]
	if t.mode == ModeInsert {
		t.shift.apply(row, t.cursor.Col)
	}
	row[t.cursor.Col] = symbol
	t.moveCursor(t.cursor.Row, t.cursor.Col+1)
}

func (t *Terminal) control(symbol string) {
	row, col := t.cursor.Row, t.cursor.Col

	switch symbol {
	case "c":
		t.buffer = Grid{}
	case "h":
		t.moveCursor(0, 0)
	case "b":
		t.moveCursor(row, 0)
	case "d":
		t.moveCursor(row+1, col)
	case "u":
		t.moveCursor(row-1, col)
	case "l":
		t.moveCursor(row, col-1)
	case "r":
		t.moveCursor(row, col+1)
	case "e":
		for x := col; x < Columns; x++ {
			t.buffer[row][x] = ""
		}
	case "i":
		t.mode = ModeInsert
	case "o":
		t.mode = ModeOverwrite
	case Escape:
		t.writeCharacter(symbol)
	default:
		// A digit here is the row half of a cursor address.
		if _, ok := digitValue(symbol); !ok {
			t.logger.Debug("ignored control command", "command", symbol)
		}
	}
}

// === Cursor Movement ===

func (t *Terminal) moveCursor(row, col int) {
	t.cursor = Cursor{Row: clamp(row, Rows-1), Col: clamp(col, Columns-1)}
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// === Screen State ===

// Reset returns the terminal to its freshly constructed state. Options
// given to NewTerminal are kept.
func (t *Terminal) Reset() {
	t.buffer = Grid{}
	t.cursor = Cursor{}
	t.mode = ModeOverwrite
	t.state = lookback{}
}

// RenderBuffer returns a copy of the display buffer.
func (t *Terminal) RenderBuffer() Grid {
	return t.buffer
}

func (t *Terminal) GetCursor() (int, int) {
	return t.cursor.Row, t.cursor.Col
}

func (t *Terminal) Mode() Mode {
	return t.mode
}

func isLineBreak(symbol string) bool {
	switch symbol {
	case "\n", "\r", "\r\n":
		return true
	}
	return false
}

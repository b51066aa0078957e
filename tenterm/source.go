package tenterm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rivo/uniseg"
)

const maxLineSize = 1 << 20

// SymbolScanner reads text line by line and yields one grapheme cluster at
// a time. Line terminators are never yielded.
type SymbolScanner struct {
	lines    *bufio.Scanner
	clusters *uniseg.Graphemes
	err      error
}

func NewSymbolScanner(r io.Reader) *SymbolScanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &SymbolScanner{lines: lines}
}

func (s *SymbolScanner) Next() (string, bool) {
	for {
		if s.clusters != nil && s.clusters.Next() {
			symbol := s.clusters.Str()
			if isLineBreak(symbol) {
				continue
			}
			return symbol, true
		}
		if !s.lines.Scan() {
			s.err = s.lines.Err()
			return "", false
		}
		s.clusters = uniseg.NewGraphemes(s.lines.Text())
	}
}

func (s *SymbolScanner) Err() error {
	return s.err
}

// Run feeds every symbol from src into screen and returns how many were
// processed.
func Run(src SymbolSource, screen Screen) (int, error) {
	n := 0
	for {
		symbol, ok := src.Next()
		if !ok {
			break
		}
		screen.ProcessSymbol(symbol)
		n++
	}
	if err := src.Err(); err != nil {
		return n, fmt.Errorf("read symbols: %w", err)
	}
	return n, nil
}

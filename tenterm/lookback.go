package tenterm

type stateKind int

const (
	stateIdle stateKind = iota
	// stateControl: the previous symbol was a lone Escape.
	stateControl
	// stateDigit: the previous symbol was a digit consumed as a control
	// command, so it names the row of a cursor address.
	stateDigit
)

// lookback remembers just enough of the previous symbol to recognise the
// two-symbol sequences.
type lookback struct {
	kind  stateKind
	digit int
}

// next applies the lookback rule: the previous symbol is remembered only
// when exactly one of it and symbol is the Escape marker. Two Escapes in a row
// therefore clear the state.
func (s lookback) next(symbol string) lookback {
	armed := s.kind == stateControl
	isEscape := symbol == Escape
	if armed == isEscape {
		return lookback{}
	}
	if isEscape {
		return lookback{kind: stateControl}
	}
	if d, ok := digitValue(symbol); ok {
		return lookback{kind: stateDigit, digit: d}
	}
	return lookback{}
}

// digitValue reports the value of a single ASCII decimal digit.
func digitValue(symbol string) (int, bool) {
	if len(symbol) != 1 || symbol[0] < '0' || symbol[0] > '9' {
		return 0, false
	}
	return int(symbol[0] - '0'), true
}

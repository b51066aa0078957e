package tenterm

// Screen is the contract between the interpreter and its I/O collaborators.
type Screen interface {
	// Input
	ProcessSymbol(symbol string)
	Feed(text string)

	// Output
	RenderBuffer() Grid
	GetDisplay() []string

	// State inspection
	GetCursor() (int, int)
	Mode() Mode

	Reset()
}

// SymbolSource yields input symbols one at a time. Next reports false once
// the source is exhausted; Err then returns the first read error, if any.
type SymbolSource interface {
	Next() (string, bool)
	Err() error
}

var _ Screen = (*Terminal)(nil)

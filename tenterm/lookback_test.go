package tenterm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookbackNext(t *testing.T) {
	idle := lookback{}
	control := lookback{kind: stateControl}

	tests := []struct {
		name   string
		from   lookback
		symbol string
		want   lookback
	}{
		{"idle plain", idle, "a", idle},
		{"idle digit", idle, "5", idle},
		{"idle escape", idle, Escape, control},
		{"control escape", control, Escape, idle},
		{"control command", control, "c", idle},
		{"control digit", control, "5", lookback{kind: stateDigit, digit: 5}},
		{"control zero", control, "0", lookback{kind: stateDigit, digit: 0}},
		{"digit digit", lookback{kind: stateDigit, digit: 3}, "7", idle},
		{"digit escape", lookback{kind: stateDigit, digit: 3}, Escape, control},
		{"digit other", lookback{kind: stateDigit, digit: 3}, "x", idle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.next(tc.symbol))
		})
	}
}

func TestDigitValue(t *testing.T) {
	for i, s := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		d, ok := digitValue(s)
		assert.True(t, ok, s)
		assert.Equal(t, i, d)
	}
	for _, s := range []string{"", "a", "-", "+", " ", "10", "٣", "５"} {
		_, ok := digitValue(s)
		assert.False(t, ok, "%q", s)
	}
}

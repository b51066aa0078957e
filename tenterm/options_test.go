package tenterm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("insert_shift: full\nframe: never\n"))
	require.NoError(t, err)
	assert.Equal(t, ShiftFull, cfg.InsertShift)
	assert.Equal(t, FrameNever, cfg.Frame)
}

func TestParseConfigRejectsUnknownValues(t *testing.T) {
	_, err := ParseConfig([]byte("insert_shift: sideways\n"))
	assert.ErrorContains(t, err, "sideways")

	_, err = ParseConfig([]byte("frame: sometimes\n"))
	assert.ErrorContains(t, err, "sometimes")

	_, err = ParseConfig([]byte("frame: [\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tenterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("insert_shift: full\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ShiftFull, cfg.InsertShift)
	assert.Equal(t, FrameAuto, cfg.Frame)

	vt := newFed("AB^h^iX", cfg.Options()...)
	assert.Equal(t, "XAB       ", vt.GetDisplay()[0])
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInsertShiftNames(t *testing.T) {
	for _, s := range []InsertShift{ShiftPairwise, ShiftFull} {
		got, err := ParseInsertShift(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	vt := NewTerminal(WithLogger(nil))
	require.NotPanics(t, func() { vt.Feed("^z") })
}

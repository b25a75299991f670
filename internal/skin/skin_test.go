package skin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkin(t *testing.T, dir, name, body string) {
	t.Helper()
	skins := filepath.Join(dir, "skins")
	require.NoError(t, os.MkdirAll(skins, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(skins, name+".yml"), []byte(body), 0644))
}

func TestLoad_Builtins(t *testing.T) {
	for _, name := range []string{"", "default", "amber", "mono"} {
		s, err := Load(name, t.TempDir())
		require.NoError(t, err, "Load(%q)", name)
		assert.NoError(t, s.Validate(), "builtin %q", name)
	}
}

func TestLoad_DefaultMatchesOverlayPalette(t *testing.T) {
	s, err := Load("default", "")
	require.NoError(t, err)
	p, err := s.Palette()
	require.NoError(t, err)
	assert.Equal(t, "#00ffff", p.Start.Hex())
	assert.Equal(t, "#005c5c", p.End.Hex())
}

func TestLoad_UserFileOverridesBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeSkin(t, dir, "amber", "start: \"#ff0000\"\nend: \"#220000\"\n")

	s, err := Load("amber", dir)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", s.Start)
	assert.Equal(t, "#220000", s.End)
	assert.Equal(t, "amber", s.Name)
	assert.Equal(t, "#c8c8c8", s.Tooltip, "tooltip falls back to the default skin")
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("neon", t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownSkin)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeSkin(t, dir, "broken", "start: not-a-colour\n")
	_, err := Load("broken", dir)
	assert.Error(t, err, "expected validation error")

	writeSkin(t, dir, "garbled", "start: [unterminated\n")
	_, err = Load("garbled", dir)
	assert.Error(t, err, "expected parse error")
}

func TestMarshal_RoundTripsThroughLoadFile(t *testing.T) {
	s, _ := Builtin("mono")
	data, err := s.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mono.yml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

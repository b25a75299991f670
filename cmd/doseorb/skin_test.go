package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/doseorb/internal/skin"
)

func TestWriteSkin_Builtin(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSkin(&buf, "amber", t.TempDir()))

	out := buf.String()
	assert.Contains(t, out, "name: amber")
	assert.Contains(t, out, "ffbf00")
}

func TestWriteSkin_OutputLoadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSkin(&buf, "mono", t.TempDir()))

	path := filepath.Join(t.TempDir(), "mono.yml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := skin.LoadFile(path)
	require.NoError(t, err)
	want, _ := skin.Builtin("mono")
	assert.Equal(t, want, got)
}

func TestWriteSkin_Unknown(t *testing.T) {
	var buf bytes.Buffer
	err := writeSkin(&buf, "nope", t.TempDir())
	require.ErrorIs(t, err, skin.ErrUnknownSkin)
	assert.Zero(t, buf.Len())
}

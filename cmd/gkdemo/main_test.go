package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kegliz/gkstab/qc/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDemoKnownNames(t *testing.T) {
	for _, name := range []string{"bell", "ghz", "repetition"} {
		batch, n, err := buildDemo(name)
		require.NoError(t, err)
		assert.NotEmpty(t, batch)
		assert.Greater(t, n, 0)
	}
}

func TestBuildDemoUnknownNameErrors(t *testing.T) {
	_, _, err := buildDemo("nonexistent")
	assert.Error(t, err)
}

func TestLoadScriptInfersQubitCountAndRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bell.gk")
	script := "# bell state\nH 0\nCX 0 1\nMEASURE 0 0\nMEASURE 1 1\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	batch, n, err := loadScript(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, batch, 4)

	sim := simulator.NewSeeded(n, 1)
	buf := sim.MakeBuffer()
	sim.SendReceive(batch, buf)
	assert.Equal(t, buf.Get(0), buf.Get(1))
}

func TestLoadScriptRejectsUnknownOpcode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.gk")
	require.NoError(t, os.WriteFile(path, []byte("FOO 0\n"), 0o644))

	_, _, err := loadScript(path, 1)
	assert.Error(t, err)
}

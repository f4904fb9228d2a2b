package ecs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWorldConfig_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	contents := `
log_level: debug
stage_trace: ["Update", "Render"]
window:
  title: test world
  width: 800
  height: 600
assets:
  texture_root: assets/textures
  audio_root: assets/audio
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadWorldConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"Update", "Render"}, cfg.StageTrace)
	assert.Equal(t, "test world", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "assets/textures", cfg.Assets.TextureRoot)
}

func TestLoadWorldConfig_MissingFileErrors(t *testing.T) {
	_, err := LoadWorldConfig("/nonexistent/world.yaml")
	assert.Error(t, err)
}

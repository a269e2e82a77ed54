package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAt_ReadsValues_When_FileIsPresent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "theme: orca\nformat: json\ntop: 15\naliases:\n  activity: [task]\n  cost: [rework_eur]\n")

	cfg, err := loadAt(dir)
	require.NoError(t, err)
	assert.Equal(t, "orca", cfg.Theme)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 15, cfg.Top)
	assert.Equal(t, []string{"task"}, cfg.Aliases.Activity)
	assert.NotEmpty(t, cfg.Path)
}

func TestLoadAt_WalksUpToParentDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "theme: mono\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := loadAt(nested)
	require.NoError(t, err)
	assert.Equal(t, "mono", cfg.Theme)
}

func TestLoadAt_NearestFileWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeConfig(t, root, "theme: mono\n")
	nested := filepath.Join(root, "child")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeConfig(t, nested, "theme: orca\n")

	cfg, err := loadAt(nested)
	require.NoError(t, err)
	assert.Equal(t, "orca", cfg.Theme)
}

func TestLoadAt_KeepsDefaults_When_FileIsMalformed(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "theme: [this is\nnot yaml\n")

	cfg, err := loadAt(dir)
	require.Error(t, err)
	assert.Equal(t, Default().Theme, cfg.Theme)
	assert.Equal(t, Default().Format, cfg.Format)
}

func TestFindUp_ReturnsEmpty_When_NothingIsFound(t *testing.T) {
	t.Parallel()

	assert.Empty(t, findUp(t.TempDir()))
}

func TestDefault_IsUsableWithoutAFile(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "auto", cfg.Format)
	assert.Zero(t, cfg.Top)

	extra := cfg.Extra()
	assert.Empty(t, extra.Activity)
	assert.Empty(t, extra.Value["cost"])
}

func TestExtra_CarriesAllAliasSlots(t *testing.T) {
	t.Parallel()

	cfg := Config{Aliases: Aliases{
		Activity: []string{"task"},
		Rate:     []string{"auto_pct"},
		Cost:     []string{"rework_eur"},
		Hours:    []string{"rework_h"},
		Duration: []string{"cycle_time"},
	}}
	extra := cfg.Extra()
	assert.Equal(t, []string{"task"}, extra.Activity)
	assert.Equal(t, []string{"auto_pct"}, extra.Rate)
	assert.Equal(t, []string{"rework_eur"}, extra.Value["cost"])
	assert.Equal(t, []string{"rework_h"}, extra.Value["hours"])
	assert.Equal(t, []string{"cycle_time"}, extra.Value["duration"])
}

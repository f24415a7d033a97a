package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
env:
  serviceName: vitrine
  log:
    pretty: false
    level: debug
feed:
  timezone: America/Sao_Paulo
  gracePeriodDays: 5
  unratedSortValue: 2.5
  availability:
    openWhenUnflagged: false
  delivery:
    selectLocationLabel: Escolha um endereço
snapshot:
  path: testdata/merchants.yaml
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv(t *testing.T) {
	dir := writeConfig(t, testConfig)

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	assert.Equal(t, "vitrine", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.Feed)
	assert.Equal(t, "America/Sao_Paulo", cfg.Feed.Timezone)
	assert.Equal(t, 5, cfg.Feed.GracePeriodDays)
	require.NotNil(t, cfg.Feed.UnratedSortValue)
	assert.InDelta(t, 2.5, *cfg.Feed.UnratedSortValue, 0.0001)
	require.NotNil(t, cfg.Feed.Availability)
	require.NotNil(t, cfg.Feed.Availability.OpenWhenUnflagged)
	assert.False(t, *cfg.Feed.Availability.OpenWhenUnflagged)
	assert.Equal(t, "Escolha um endereço", cfg.Feed.Delivery.SelectLocationLabel)
	assert.Nil(t, cfg.Feed.Ranking)
	assert.Equal(t, "testdata/merchants.yaml", cfg.Snapshot.Path)
}

func TestLoadWithEnv_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, testConfig)
	t.Setenv("VITRINE_FEED_GRACEPERIODDAYS", "7")
	t.Setenv("VITRINE_SNAPSHOT_PATH", "/data/merchants.json")

	cfg, err := LoadWithEnv[Config]("test", dir)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Feed.GracePeriodDays)
	assert.Equal(t, "/data/merchants.json", cfg.Snapshot.Path)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.ErrorContains(t, err, "does-not-exist.yaml not found")
}

package clock

import (
	"testing"
	"time"

	"vitrine/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem_UsesConfiguredLocation(t *testing.T) {
	cfg := &config.Config{Feed: &config.FeedConfig{Timezone: "America/Sao_Paulo"}}

	clk, err := NewSystem(cfg)
	require.NoError(t, err)

	assert.Equal(t, "America/Sao_Paulo", clk.Now().Location().String())
}

func TestNewSystem_DefaultsToLocal(t *testing.T) {
	clk, err := NewSystem(&config.Config{})
	require.NoError(t, err)

	assert.Equal(t, time.Local, clk.Now().Location())
}

func TestNewSystem_InvalidLocation(t *testing.T) {
	cfg := &config.Config{Feed: &config.FeedConfig{Timezone: "Mars/Olympus_Mons"}}

	_, err := NewSystem(cfg)
	assert.Error(t, err)
}

func TestFixed(t *testing.T) {
	instant := time.Date(2026, time.October, 15, 18, 30, 0, 0, time.UTC)
	clk := NewFixed(instant)

	assert.Equal(t, instant, clk.Now())
	assert.Equal(t, instant, clk.Now())
}

func TestLocation(t *testing.T) {
	location, err := Location(&config.Config{Feed: &config.FeedConfig{Timezone: "UTC"}})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, location)

	location, err = Location(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, time.Local, location)
}

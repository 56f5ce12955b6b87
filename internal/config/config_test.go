package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/W4RH4WK/ironcopper/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IRONCOPPER_SEED", "")
	t.Setenv("IRONCOPPER_TRACE_ROLLS", "")
	t.Setenv("IRONCOPPER_TRACE_MODIFIERS", "")

	cfg := config.Load()

	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.TraceRolls)
	assert.False(t, cfg.TraceModifiers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("IRONCOPPER_SEED", "1337")
	t.Setenv("IRONCOPPER_TRACE_ROLLS", "true")
	t.Setenv("IRONCOPPER_TRACE_MODIFIERS", "1")

	cfg := config.Load()

	assert.Equal(t, int64(1337), cfg.Seed)
	assert.True(t, cfg.TraceRolls)
	assert.True(t, cfg.TraceModifiers)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("IRONCOPPER_SEED", "not-a-number")
	t.Setenv("IRONCOPPER_TRACE_ROLLS", "yep")
	t.Setenv("IRONCOPPER_TRACE_MODIFIERS", "")

	cfg := config.Load()

	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.TraceRolls)
	assert.False(t, cfg.TraceModifiers)
}

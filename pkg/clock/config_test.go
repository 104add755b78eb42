package clock_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onlyevery/pkg/clock"
)

func parseConfig(t *testing.T, vars map[string]string) (clock.Config, error) {
	t.Helper()
	var cfg clock.Config
	err := env.ParseWithOptions(&cfg, env.Options{Environment: vars})
	return cfg, err
}

func TestConfig_Parse(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := parseConfig(t, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, clock.KindMonotonic, cfg.Kind)
		assert.Equal(t, time.Millisecond, cfg.Resolution)
	})

	t.Run("cached with resolution", func(t *testing.T) {
		cfg, err := parseConfig(t, map[string]string{
			"ONLYEVERY_CLOCK":            " Cached ",
			"ONLYEVERY_CLOCK_RESOLUTION": "5ms",
		})
		require.NoError(t, err)
		assert.Equal(t, clock.KindCached, cfg.Kind)
		assert.Equal(t, 5*time.Millisecond, cfg.Resolution)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := parseConfig(t, map[string]string{"ONLYEVERY_CLOCK": "quanta"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), clock.ErrUnknownKind.Error())
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     clock.Config
		wantErr error
	}{
		{name: "zero config", cfg: clock.Config{}},
		{name: "monotonic", cfg: clock.Config{Kind: clock.KindMonotonic}},
		{name: "cached shared", cfg: clock.Config{Kind: clock.KindCached, Resolution: time.Millisecond}},
		{name: "cached zero resolution", cfg: clock.Config{Kind: clock.KindCached}},
		{name: "cached custom resolution", cfg: clock.Config{Kind: clock.KindCached, Resolution: 3 * time.Millisecond}},
		{name: "negative resolution", cfg: clock.Config{Kind: clock.KindCached, Resolution: -time.Millisecond}, wantErr: clock.ErrInvalidResolution},
		{name: "unknown kind", cfg: clock.Config{Kind: "sundial"}, wantErr: clock.ErrUnknownKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := clock.New(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, src)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, src)
			assert.LessOrEqual(t, src.NowMS(), src.NowMS())
		})
	}
}

func TestNew_ReusesClockPerResolution(t *testing.T) {
	cfg := clock.Config{Kind: clock.KindCached, Resolution: 2 * time.Millisecond}

	_, err := clock.New(cfg)
	require.NoError(t, err)
	before := runtime.NumGoroutine()

	for range 50 {
		src, err := clock.New(cfg)
		require.NoError(t, err)
		require.NotNil(t, src)
	}

	assert.LessOrEqual(t, runtime.NumGoroutine(), before+2)
	assert.Same(t, clock.SharedCalibratedAt(2*time.Millisecond), clock.SharedCalibratedAt(2*time.Millisecond))
	assert.Same(t, clock.SharedCalibrated(), clock.SharedCalibratedAt(0))
	assert.Same(t, clock.SharedCalibrated(), clock.SharedCalibratedAt(clock.DefaultResolution))

	shared := clock.SharedCalibratedAt(2 * time.Millisecond)
	shared.Stop()
	assert.NoError(t, shared.Healthcheck(context.Background()), "shared clocks ignore Stop")
}

func TestKind_UnmarshalText(t *testing.T) {
	t.Parallel()

	var k clock.Kind
	require.NoError(t, k.UnmarshalText([]byte("MONOTONIC")))
	assert.Equal(t, clock.KindMonotonic, k)

	err := k.UnmarshalText([]byte("tsc"))
	assert.ErrorIs(t, err, clock.ErrUnknownKind)
	assert.Equal(t, clock.KindMonotonic, k, "failed parse leaves value untouched")
}

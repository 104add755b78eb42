package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onlyevery/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("gate", slog.String("name", "flush"), slog.Int("n", 2))
	require.Equal(t, "gate", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "name", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil, nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestDurationAttrs(t *testing.T) {
	t.Parallel()

	d := logger.Duration(5 * time.Second)
	require.Equal(t, "duration", d.Key)
	assert.Equal(t, 5*time.Second, d.Value.Duration())

	i := logger.Interval(200 * time.Millisecond)
	require.Equal(t, "interval", i.Key)
	assert.Equal(t, 200*time.Millisecond, i.Value.Duration())
}

func TestSuppressed(t *testing.T) {
	t.Parallel()

	attr := logger.Suppressed(17)
	require.Equal(t, logger.SuppressedKey, attr.Key)
	assert.Equal(t, uint64(17), attr.Value.Uint64())

	assert.True(t, logger.Suppressed(0).Equal(slog.Attr{}))
}

func TestMetadataAttrs(t *testing.T) {
	t.Parallel()

	c := logger.Component("clock")
	assert.Equal(t, "component", c.Key)
	assert.Equal(t, "clock", c.Value.String())

	n := logger.Count("admitted", 3)
	assert.Equal(t, "admitted", n.Key)
	assert.Equal(t, int64(3), n.Value.Int64())

	k := logger.Key("gate", "flush")
	assert.Equal(t, "gate", k.Key)
	assert.Equal(t, "flush", k.Value.Any())

	assert.True(t, logger.Key("gate", nil).Equal(slog.Attr{}))
}

package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// redis client pool reaper
		goleak.IgnoreTopFunction("github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper"),
	)
}

func TestRedis_Get(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	rs := NewRedis(db, "swole:", 0)

	mock.ExpectGet("swole:weights").SetVal(`[{"id":"1","dateTime":"2024-01-01T08:00:00Z","weight":80.5}]`)
	val, err := rs.Get(ctx, "weights")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1","dateTime":"2024-01-01T08:00:00Z","weight":80.5}]`, val)

	mock.ExpectGet("swole:weightAverages").RedisNil()
	val, err = rs.Get(ctx, "weightAverages")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, val)

	mock.ExpectGet("swole:weights").SetErr(errors.New("connection refused"))
	val, err = rs.Get(ctx, "weights")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Empty(t, val)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_Set(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()

	rs := NewRedis(db, "swole:", 0)
	mock.ExpectSet("swole:weights", "[]", 0).SetVal("OK")
	require.NoError(t, rs.Set(ctx, "weights", "[]"))

	rsWithTTL := NewRedis(db, "", time.Hour)
	mock.ExpectSet("weightAverages", "[]", time.Hour).SetErr(errors.New("OOM"))
	assert.EqualError(t, rsWithTTL.Set(ctx, "weightAverages", "[]"), "OOM")

	assert.NoError(t, mock.ExpectationsWereMet())
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestNewRedis(t *testing.T) {
	_, err := NewRedis(context.Background(), "")
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	rdb, err := NewRedis(context.Background(), mr.Addr())
	require.NoError(t, err)
	assert.NotNil(t, rdb)
}

func TestGetSetJSON(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	rdb, err := NewRedis(ctx, mr.Addr())
	require.NoError(t, err)

	var got entry
	err = GetJSON(ctx, rdb, "missing", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, SetJSON(ctx, rdb, "k", entry{Name: "a", Value: 7}, time.Minute))
	require.NoError(t, GetJSON(ctx, rdb, "k", &got))
	assert.Equal(t, entry{Name: "a", Value: 7}, got)

	mr.FastForward(2 * time.Minute)
	err = GetJSON(ctx, rdb, "k", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheServiceDisabledIsAlwaysMiss(t *testing.T) {
	var nilSvc *CacheService
	hit, err := nilSvc.Get(context.Background(), "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, hit)

	disabled := NewCacheService(newMemoryCache(), nil, 0, nil, false)
	require.NoError(t, disabled.Set(context.Background(), "k", "v", 0))
	hit, err = disabled.Get(context.Background(), "k", new(string))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceRoundTripAndInvalidate(t *testing.T) {
	svc := NewCacheService(newMemoryCache(), NewMetricsService(), time.Minute, nil, true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "record:s1", map[string]int{"credits": 7}, 0))
	var got map[string]int
	hit, err := svc.Get(ctx, "record:s1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, got["credits"])

	require.NoError(t, svc.Invalidate(ctx, "record:*"))
	hit, err = svc.Get(ctx, "record:s1", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	repo := newMemoryCache()
	repo.getErr = errors.New("connection refused")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	hit, err := svc.Get(context.Background(), "k", new(string))
	assert.Error(t, err)
	assert.False(t, hit)
}

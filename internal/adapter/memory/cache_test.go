package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/gaas-console/internal/adapter/memory"
	"github.com/alanyang/gaas-console/internal/mocks"
)

func newCache(t *testing.T, ttl time.Duration) (*memory.NamespaceCache, *mocks.MockNamespaceRepository) {
	t.Helper()
	repo := mocks.NewMockNamespaceRepository(gomock.NewController(t))
	return memory.NewNamespaceCache(repo, ttl), repo
}

func TestNamespaceCache_HitWithinTTL(t *testing.T) {
	c, repo := newCache(t, time.Minute)
	repo.EXPECT().GetAll(gomock.Any()).Return([]string{"a", "b"}, nil).Times(1)

	first, err := c.GetAll(context.Background())
	require.NoError(t, err)
	second, err := c.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, first)
	assert.Equal(t, first, second)
}

func TestNamespaceCache_EmptyListIsCached(t *testing.T) {
	c, repo := newCache(t, time.Minute)
	repo.EXPECT().GetAll(gomock.Any()).Return([]string{}, nil).Times(1)

	for range 2 {
		got, err := c.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestNamespaceCache_Expires(t *testing.T) {
	c, repo := newCache(t, 20*time.Millisecond)
	gomock.InOrder(
		repo.EXPECT().GetAll(gomock.Any()).Return([]string{"a"}, nil),
		repo.EXPECT().GetAll(gomock.Any()).Return([]string{"a", "b"}, nil),
	)

	_, err := c.GetAll(context.Background())
	require.NoError(t, err)
	time.Sleep(60 * time.Millisecond)

	got, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestNamespaceCache_ErrorsPassThroughAndAreNotCached(t *testing.T) {
	c, repo := newCache(t, time.Minute)
	boom := errors.New("HTTP 500")
	gomock.InOrder(
		repo.EXPECT().GetAll(gomock.Any()).Return(nil, boom),
		repo.EXPECT().GetAll(gomock.Any()).Return([]string{"a"}, nil),
	)

	_, err := c.GetAll(context.Background())
	assert.Same(t, boom, err)

	got, err := c.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestNamespaceCache_CallerCannotMutateCache(t *testing.T) {
	c, repo := newCache(t, time.Minute)
	repo.EXPECT().GetAll(gomock.Any()).Return([]string{"a"}, nil).Times(1)

	got, _ := c.GetAll(context.Background())
	got[0] = "mutated"

	again, _ := c.GetAll(context.Background())
	assert.Equal(t, []string{"a"}, again)
}

func TestNamespaceCache_Invalidate(t *testing.T) {
	c, repo := newCache(t, time.Minute)
	repo.EXPECT().GetAll(gomock.Any()).Return([]string{"a"}, nil).Times(2)

	_, _ = c.GetAll(context.Background())
	c.Invalidate()
	_, _ = c.GetAll(context.Background())
}

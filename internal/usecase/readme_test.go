package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadmeService_CachesReadme(t *testing.T) {
	source := &fakeReadmeSource{text: "# Hello"}
	cache := &memCache{}
	svc := NewReadmeService(source, cache, "", time.Minute, nil)

	for i := 0; i < 3; i++ {
		text, err := svc.Get(context.Background(), "Octo", "Hello")
		require.NoError(t, err)
		assert.Equal(t, "# Hello", text)
	}
	assert.Equal(t, 1, source.calls)
	assert.Equal(t, "# Hello", cache.data["readme:octo/hello"])
}

func TestReadmeService_WithoutCache(t *testing.T) {
	source := &fakeReadmeSource{text: "# Hi"}
	svc := NewReadmeService(source, nil, "", time.Minute, nil)
	_, _ = svc.Get(context.Background(), "octo", "hi")
	_, _ = svc.Get(context.Background(), "octo", "hi")
	assert.Equal(t, 2, source.calls)
}

func TestReadmeService_CacheErrorFallsThrough(t *testing.T) {
	source := &fakeReadmeSource{text: "# Hi"}
	svc := NewReadmeService(source, &memCache{getErr: errors.New("redis down")}, "", time.Minute, nil)
	text, err := svc.Get(context.Background(), "octo", "hi")
	require.NoError(t, err)
	assert.Equal(t, "# Hi", text)
}

func TestReadmeService_SourceError(t *testing.T) {
	cache := &memCache{}
	svc := NewReadmeService(&fakeReadmeSource{err: errors.New("not found")}, cache, "", time.Minute, nil)
	_, err := svc.Get(context.Background(), "octo", "missing")
	assert.Error(t, err)
	assert.Empty(t, cache.data)
}

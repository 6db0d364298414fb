package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"firetrace/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestBlobStore_Upload(t *testing.T) {
	dir := t.TempDir()
	lc := fxtest.NewLifecycle(t)

	store, err := NewBlobStore(lc, &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "file://" + dir,
			PublicBaseURL: "https://cdn.example.com/",
		},
	})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	url, err := store.Upload(context.Background(), []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)

	// Trailing slash on the base URL must not double up.
	require.True(t, strings.HasPrefix(url, "https://cdn.example.com/firetrace_uploads/"), url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), url)

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	written, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), written)
}

func TestBlobStore_Upload_UnknownMediaTypeFallsBack(t *testing.T) {
	dir := t.TempDir()
	lc := fxtest.NewLifecycle(t)

	store, err := NewBlobStore(lc, &config.Config{
		Storage: &config.StorageConfig{
			BucketURL:     "file://" + dir,
			Folder:        "scans",
			PublicBaseURL: "https://cdn.example.com",
		},
	})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	url, err := store.Upload(context.Background(), []byte("data"), "application/octet-stream")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/scans/"), url)
	assert.True(t, strings.HasSuffix(url, ".bin"), url)
}

func TestNewBlobStore_RequiresBucketURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	_, err := NewBlobStore(lc, &config.Config{})
	assert.Error(t, err)
}

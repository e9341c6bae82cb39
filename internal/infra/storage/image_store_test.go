package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStore(t *testing.T) (*blobImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobImageStore{bucket: bucket, baseURL: "/uploads/products"}, dir
}

func TestSave_WritesFileAndReturnsURL(t *testing.T) {
	t.Parallel()

	store, dir := newTestStore(t)

	url, err := store.Save(context.Background(), ".PNG", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSave_GeneratesUniqueNames(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)

	first, err := store.Save(context.Background(), ".jpg", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), ".jpg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

package imagestore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyIsUniqueAndNamespaced(t *testing.T) {
	k1 := NewKey("exhibitors/", "photo.jpg")
	k2 := NewKey("exhibitors/", "photo.jpg")

	assert.NotEqual(t, k1, k2)
	assert.True(t, strings.HasPrefix(k1, "exhibitors/"))
	assert.True(t, strings.HasSuffix(k1, "_photo.jpg"))
}

func TestNewKeySanitizesFilename(t *testing.T) {
	k := NewKey("exhibitors/", "../../../etc/passwd")
	assert.False(t, strings.Contains(k[len("exhibitors/"):], "/"))

	k = NewKey("exhibitors/", "写真 (1).jpg")
	assert.True(t, strings.HasSuffix(k, ".jpg"))
}

func TestFileStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "exhibitors/")
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "photo.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(b))

	require.NoError(t, store.Delete(context.Background(), ref))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "exhibitors/")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "exhibitors/unknown.jpg"))
	assert.NoError(t, store.Delete(context.Background(), ""))
}

func TestFileStoreDeleteRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "exhibitors/")
	require.NoError(t, err)

	assert.Error(t, store.Delete(context.Background(), "../outside.jpg"))
}

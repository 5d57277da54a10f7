package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stpnv0/Tourify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBucket(t *testing.T, maxBytes int64) *LocalBucket {
	t.Helper()
	b, err := NewLocalBucket(filepath.Join(t.TempDir(), "uploads"), "/media/", maxBytes)
	require.NoError(t, err)
	return b
}

func TestLocalBucket_Upload(t *testing.T) {
	b := newBucket(t, 1024)

	obj, err := b.Upload(context.Background(), "Cover.JPG", strings.NewReader("jpeg-bytes"))

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(obj.Key, ".jpg"))
	assert.Equal(t, "/media/"+obj.Key, obj.URL)
	assert.Equal(t, int64(10), obj.Size)
	assert.Len(t, obj.Checksum, 64)

	data, err := os.ReadFile(filepath.Join(b.Dir(), obj.Key))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocalBucket_Upload_ChecksumDependsOnContent(t *testing.T) {
	b := newBucket(t, 1024)

	first, err := b.Upload(context.Background(), "a.png", strings.NewReader("same"))
	require.NoError(t, err)
	second, err := b.Upload(context.Background(), "b.png", strings.NewReader("same"))
	require.NoError(t, err)
	other, err := b.Upload(context.Background(), "c.png", strings.NewReader("different"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Key, second.Key)
	assert.Equal(t, first.Checksum, second.Checksum)
	assert.NotEqual(t, first.Checksum, other.Checksum)
}

func TestLocalBucket_Upload_ExactLimit(t *testing.T) {
	b := newBucket(t, 4)

	obj, err := b.Upload(context.Background(), "a.png", strings.NewReader("1234"))

	require.NoError(t, err)
	assert.Equal(t, int64(4), obj.Size)
}

func TestLocalBucket_Upload_TooLarge(t *testing.T) {
	b := newBucket(t, 4)

	_, err := b.Upload(context.Background(), "a.png", strings.NewReader("12345"))

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("file"))

	entries, err := os.ReadDir(b.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalBucket_Upload_RejectsNonImages(t *testing.T) {
	b := newBucket(t, 1024)

	for _, name := range []string{"contract.pdf", "script.sh", "noext"} {
		_, err := b.Upload(context.Background(), name, strings.NewReader("x"))
		assert.ErrorIs(t, err, domain.ErrValidation, name)
	}
}

func TestLocalBucket_Remove(t *testing.T) {
	b := newBucket(t, 1024)
	ctx := context.Background()

	obj, err := b.Upload(ctx, "a.webp", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, b.Remove(ctx, obj.Key))
	assert.ErrorIs(t, b.Remove(ctx, obj.Key), domain.ErrUploadNotFound)
}

func TestLocalBucket_Remove_RejectsForeignKeys(t *testing.T) {
	b := newBucket(t, 1024)

	for _, key := range []string{"../config.yaml", "not-a-uuid.png", ""} {
		assert.ErrorIs(t, b.Remove(context.Background(), key), domain.ErrUploadNotFound, key)
	}
}

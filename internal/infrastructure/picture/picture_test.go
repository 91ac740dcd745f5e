package picture

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"profile-service/internal/domain/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallest header http.DetectContentType recognises as JPEG
var jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}

func jpegB64() string {
	return base64.StdEncoding.EncodeToString(jpegBytes)
}

func TestDecodeJPEG(t *testing.T) {
	got, err := DecodeJPEG(jpegB64())
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, got)

	got, err = DecodeJPEG("data:image/jpeg;base64," + jpegB64())
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, got)

	got, err = DecodeJPEG(base64.RawStdEncoding.EncodeToString(jpegBytes))
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, got)
}

func TestDecodeJPEG_Rejects(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	cases := map[string]string{
		"empty":       "   ",
		"not base64":  "%%%not-base64%%%",
		"png":         base64.StdEncoding.EncodeToString(png),
		"bad dataurl": "data:image/jpeg;base64",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeJPEG(in)
			assert.ErrorIs(t, err, profile.ErrInvalidPicture)
		})
	}
}

func TestCleanName(t *testing.T) {
	got, err := cleanName("../../etc/5.jpg")
	require.NoError(t, err)
	assert.Equal(t, "5.jpg", got)

	for _, bad := range []string{"", "..", "/"} {
		_, err := cleanName(bad)
		assert.Error(t, err, bad)
	}
}

func TestLocalStore_WriteAndOpen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(filepath.Join(dir, "pics"), nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.WriteDecoded(ctx, jpegB64(), profile.PictureName(5)))

	rc, err := s.Open(ctx, "5.jpg")
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, b)

	_, err = os.Stat(filepath.Join(dir, "pics", "5.jpg.tmp"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalStore_InvalidPayloadWritesNothing(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStore(dir, nil)
	require.NoError(t, err)

	err = s.WriteDecoded(context.Background(), "bm90IGEganBlZw==", "5.jpg")
	assert.ErrorIs(t, err, profile.ErrInvalidPicture)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStore_TraversalStaysInRoot(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "root")
	s, err := NewLocalStore(root, nil)
	require.NoError(t, err)

	require.NoError(t, s.WriteDecoded(context.Background(), jpegB64(), "../escape.jpg"))

	_, err = os.Stat(filepath.Join(root, "escape.jpg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "escape.jpg"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLocalStore_OpenMissing(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), nil)
	require.NoError(t, err)

	_, err = s.Open(context.Background(), "9.jpg")
	assert.ErrorIs(t, err, profile.ErrPictureNotFound)
}

func TestNewLocalStore_EmptyRoot(t *testing.T) {
	_, err := NewLocalStore("", nil)
	assert.Error(t, err)
}

func TestNewGCSStore_EmptyBucket(t *testing.T) {
	_, err := NewGCSStore(context.Background(), "  ", "", nil)
	assert.Error(t, err)
}

package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func TestSave(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save(uploadHeader(t, "Holiday Pic.PNG", []byte("imagebytes")))
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "/uploads/"))
	name := strings.TrimPrefix(url, "/uploads/")

	// Generated name, lowercased extension, nothing of the original left.
	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f-]{36}\.png$`), name)
	assert.NotContains(t, name, "Holiday")

	data, err := os.ReadFile(filepath.Join(store.Dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("imagebytes"), data)
}

func TestSave_DistinctNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(uploadHeader(t, "same.jpg", []byte("a")))
	require.NoError(t, err)
	b, err := store.Save(uploadHeader(t, "same.jpg", []byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	url, err := store.Save(uploadHeader(t, "x.gif", []byte("gif")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(url))
	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Second removal fails: the file is gone.
	assert.Error(t, store.Remove(url))
}

func TestRemove_RejectsForeignPaths(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Remove("/etc/passwd"))
	assert.Error(t, store.Remove("uploads/loose.png"))
	assert.Error(t, store.Remove("/other/123.png"))
}

func TestNewStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

package media_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"evparts_admin/internal/media"
	"evparts_admin/internal/store"
)

func newService(t *testing.T) (*media.Service, string) {
	t.Helper()
	dir := t.TempDir()
	st := store.New()
	return media.NewService(st.Media(), dir, zaptest.NewLogger(t)), dir
}

func TestStoredName(t *testing.T) {
	svc, _ := newService(t)

	name := svc.StoredName("photo.PNG")
	assert.True(t, strings.HasSuffix(name, ".PNG"))
	assert.NotEqual(t, "photo.PNG", name, "the client name is not trusted")

	assert.False(t, strings.Contains(svc.StoredName("noext"), "."))
}

func TestSaveAndList(t *testing.T) {
	svc, _ := newService(t)

	m, err := svc.Save("123.png", "image/png")
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)

	_, err = svc.Save("", "image/png")
	assert.Error(t, err)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRemove(t *testing.T) {
	svc, dir := newService(t)

	m, err := svc.Save("123.png", "image/png")
	require.NoError(t, err)
	path := filepath.Join(dir, m.FileName)
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	require.NoError(t, svc.Remove(m.ID))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the file is deleted with the record")

	assert.ErrorIs(t, svc.Remove(m.ID), media.ErrNotFound)
}

func TestRemove_FileAlreadyGone(t *testing.T) {
	svc, _ := newService(t)

	m, err := svc.Save("123.png", "image/png")
	require.NoError(t, err)

	// Nothing was ever written to disk; the record still goes away.
	require.NoError(t, svc.Remove(m.ID))

	all, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

package documents_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/brianc020801/INFO-340-Problem-4/internal/documents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestManagerLoadAndClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "css", "style.css")
	writeFile(t, path, "body { margin: .5rem; }")

	manager := documents.NewManager()
	doc, err := manager.Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.Path())
	assert.Equal(t, documents.LanguageCSS, doc.LanguageID())
	assert.Equal(t, "body { margin: .5rem; }", doc.Content())
	assert.Same(t, doc, manager.GetPath(path))
	assert.Same(t, doc, manager.Get(doc.URI()))

	require.NoError(t, manager.Close(doc.URI()))
	assert.Nil(t, manager.Get(doc.URI()))
	assert.Error(t, manager.Close(doc.URI()), "closing twice should fail")
}

func TestManagerLoadMissing(t *testing.T) {
	manager := documents.NewManager()
	_, err := manager.Load(filepath.Join(t.TempDir(), "index.html"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManagerLoadGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<!DOCTYPE html>")
	writeFile(t, filepath.Join(dir, "css", "style.css"), "a{}")
	writeFile(t, filepath.Join(dir, "img", "splash-md.jpg"), "jpg")
	writeFile(t, filepath.Join(dir, "README.md"), "# readme")

	manager := documents.NewManager()
	docs, err := manager.LoadGlob(dir, "**/*")
	require.NoError(t, err)
	require.Len(t, docs, 2, "only html and css files are loaded")
	assert.Equal(t, filepath.Join(dir, "css", "style.css"), docs[0].Path())
	assert.Equal(t, filepath.Join(dir, "index.html"), docs[1].Path())
	assert.Len(t, manager.GetAll(), 2)
}

func TestManagerConcurrentAdd(t *testing.T) {
	manager := documents.NewManager()
	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			manager.Add(filepath.Join("/ex", string(rune('a'+i))+".css"), "", "a{}")
		}()
	}
	wg.Wait()
	assert.Len(t, manager.GetAll(), 20)
}

func TestLanguageForPath(t *testing.T) {
	assert.Equal(t, documents.LanguageHTML, documents.LanguageForPath("index.HTML"))
	assert.Equal(t, documents.LanguageHTML, documents.LanguageForPath("a.htm"))
	assert.Equal(t, documents.LanguageCSS, documents.LanguageForPath("css/style.css"))
	assert.Equal(t, "", documents.LanguageForPath("app.js"))
}

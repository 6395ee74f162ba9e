package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/brianc020801/INFO-340-Problem-4/internal/log"
	"github.com/brianc020801/INFO-340-Problem-4/internal/uriutil"
)

// Manager holds the documents loaded for a grading or lint run
type Manager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewManager creates a new document manager
func NewManager() *Manager {
	return &Manager{
		documents: make(map[string]*Document),
	}
}

// Get retrieves a document by URI
func (m *Manager) Get(uri string) *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents[uri]
}

// GetPath retrieves a document by file system path
func (m *Manager) GetPath(path string) *Document {
	return m.Get(uriutil.PathToURI(path))
}

// GetAll returns all managed documents ordered by URI
func (m *Manager) GetAll() []*Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]*Document, 0, len(m.documents))
	for _, doc := range m.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].uri < docs[j].uri })
	return docs
}

// Add registers in-memory content under path. An empty languageID is
// inferred from the path.
func (m *Manager) Add(path, languageID, content string) *Document {
	if languageID == "" {
		languageID = LanguageForPath(path)
	}
	doc := NewDocument(path, uriutil.PathToURI(path), languageID, content)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.uri] = doc
	return doc
}

// Load reads a file from disk and registers it
func (m *Manager) Load(path string) (*Document, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: exercise paths are supplied by the grader
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Debug("loaded %s (%d bytes)", path, len(content))
	return m.Add(path, "", string(content)), nil
}

// LoadGlob loads every file under root matching a doublestar pattern
// (e.g. "**/*.{html,css}") whose language is known.
func (m *Manager) LoadGlob(root, pattern string) ([]*Document, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	var docs []*Document
	for _, match := range matches {
		path := filepath.Join(root, filepath.FromSlash(match))
		if LanguageForPath(path) == "" {
			continue
		}
		doc, err := m.Load(path)
		if err != nil {
			return docs, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Close removes a document from the manager
func (m *Manager) Close(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.documents[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	delete(m.documents, uri)
	return nil
}

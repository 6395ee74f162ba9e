package documents

import (
	"path/filepath"
	"strings"
)

// Language identifiers for exercise files
const (
	LanguageHTML = "html"
	LanguageCSS  = "css"
)

// Document is an exercise source file loaded into memory. Documents are
// immutable once loaded.
type Document struct {
	path       string
	uri        string
	languageID string
	content    string
}

// NewDocument creates a new document
func NewDocument(path, uri, languageID, content string) *Document {
	return &Document{
		path:       path,
		uri:        uri,
		languageID: languageID,
		content:    content,
	}
}

// Path returns the file system path the document was read from
func (d *Document) Path() string {
	return d.path
}

// URI returns the document's file:// URI
func (d *Document) URI() string {
	return d.uri
}

// LanguageID returns the document's language identifier
func (d *Document) LanguageID() string {
	return d.languageID
}

// Content returns the document's content
func (d *Document) Content() string {
	return d.content
}

// LanguageForPath guesses a language identifier from a file extension.
// It returns "" for files gradecheck does not understand.
func LanguageForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return LanguageHTML
	case ".css":
		return LanguageCSS
	}
	return ""
}

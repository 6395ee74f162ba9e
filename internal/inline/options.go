package inline

import "os"

// Options controls which stylesheets are inlined and what happens to the
// tags that carried them.
type Options struct {
	// ExtraCSS is applied after every sheet found in the document
	ExtraCSS string
	// BaseURL resolves relative <link href> values, e.g. file:///ex/
	BaseURL string

	ApplyStyleTags  bool
	ApplyLinkTags   bool
	RemoveStyleTags bool
	RemoveLinkTags  bool

	// ReadFile loads local stylesheets; os.ReadFile when nil
	ReadFile func(path string) ([]byte, error)
}

// DefaultOptions applies <style> and local <link> sheets, removes the
// <style> tags and keeps the <link> tags.
func DefaultOptions() Options {
	return Options{
		ApplyStyleTags:  true,
		ApplyLinkTags:   true,
		RemoveStyleTags: true,
		RemoveLinkTags:  false,
	}
}

func (o *Options) readFile(path string) ([]byte, error) {
	if o.ReadFile != nil {
		return o.ReadFile(path)
	}
	return os.ReadFile(path) //nolint:gosec // G304: stylesheet paths come from the exercise's own <link> tags
}

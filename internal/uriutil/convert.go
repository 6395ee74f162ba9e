package uriutil

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// PathToURI converts a file system path to a file:// URI.
//   - /home/user/ex -> file:///home/user/ex
//   - C:\ex\a b -> file:///C:/ex/a%20b
func PathToURI(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	absPath = filepath.ToSlash(absPath)
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}

	segments := strings.Split(absPath, "/")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = url.PathEscape(seg)
		}
	}
	return "file://" + strings.Join(segments, "/")
}

// DirURI returns the file:// URI of a directory with a trailing slash, so
// that relative references resolve inside it.
func DirURI(dir string) string {
	u := PathToURI(dir)
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

// URIToPath converts a file:// URI to a file system path.
func URIToPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return filepath.FromSlash(strings.TrimPrefix(uri, "file://"))
	}

	path := parsed.Path
	if parsed.Host != "" && runtime.GOOS == "windows" {
		return `\\` + parsed.Host + strings.ReplaceAll(path, "/", `\`)
	}

	// /C:/ex -> C:/ex
	if len(path) >= 3 && path[0] == '/' && path[2] == ':' {
		path = path[1:]
	}
	return filepath.FromSlash(path)
}

// Resolve resolves ref against base the way a browser resolves an href.
// It returns the resolved URL and whether it points to a local file.
func Resolve(base, ref string) (string, bool) {
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref, false
	}
	if base != "" {
		b, err := url.Parse(base)
		if err == nil {
			r = b.ResolveReference(r)
		}
	}
	return r.String(), r.Scheme == "file"
}

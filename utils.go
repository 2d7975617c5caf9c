package indices

import (
	nurl "net/url"
	"path"
	"strings"

	"github.com/kennygrant/sanitize"
)

// coverFileName is the name cover images are saved under, whatever
// their actual format.
const coverFileName = "portada.jpg"

// FolderName converts an item title into its folder name. Only spaces
// are replaced, other characters are kept as they are.
func FolderName(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

// resolveURL converts url to an absolute URL based on base.
// Absolute URLs are returned untouched.
func resolveURL(url string, base *nurl.URL) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	tmp, err := nurl.Parse(url)
	if err != nil || tmp.IsAbs() || base == nil {
		return url
	}

	return base.ResolveReference(tmp).String()
}

// fileNameFromURL returns the last element of the URL path. When the
// path has none or ends with a slash, a sanitized name built from the
// whole URL is used.
func fileNameFromURL(url string) string {
	name := ""
	if tmp, err := nurl.Parse(url); err == nil && !strings.HasSuffix(tmp.Path, "/") {
		name = path.Base(tmp.Path)
	}

	if name == "" || name == "." || name == "/" {
		name = sanitize.BaseName(url)
	}

	return name
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

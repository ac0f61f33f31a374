package preview

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// linkAttrs names the attribute holding a document-relative reference for
// each element that is rewritten.
var linkAttrs = map[string]string{
	"img": "src",
	"a":   "href",
}

// RewriteRelativePaths points relative img[src] and a[href] references of a
// preview page at file:// URLs below baseDir, so the page works when opened
// from anywhere. URLs, anchors, absolute paths and references that escape
// baseDir are kept as they are. An empty baseDir returns page unchanged.
func RewriteRelativePaths(page, baseDir string) (string, error) {
	if baseDir == "" {
		return page, nil
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", baseDir, err)
	}

	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parsing preview page: %w", err)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if key, ok := linkAttrs[n.Data]; ok {
				for i := range n.Attr {
					if n.Attr[i].Key != key {
						continue
					}
					if target, ok := localTarget(n.Attr[i].Val, base); ok {
						n.Attr[i].Val = target
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var out strings.Builder
	if err := html.Render(&out, doc); err != nil {
		return "", fmt.Errorf("rendering preview page: %w", err)
	}
	return out.String(), nil
}

// localTarget returns the file:// URL of ref resolved against base, or false
// when ref is not a relative path inside base.
func localTarget(ref, base string) (string, bool) {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	if filepath.IsAbs(u.Path) || strings.HasPrefix(u.Path, "/") {
		return "", false
	}

	abs := filepath.Join(base, filepath.FromSlash(u.Path))
	rel, err := filepath.Rel(base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	target := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), Fragment: u.Fragment}
	return target.String(), true
}

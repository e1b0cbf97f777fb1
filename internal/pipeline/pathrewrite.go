package pipeline

import (
	"errors"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PathRewriter rewrites relative image and link paths of an item so they
// keep resolving once the item is published away from its source directory.
//
// With an empty BaseURL, paths become absolute file:// URLs under SourceDir.
// With a BaseURL, they become BaseURL joined with the relative path.
type PathRewriter struct {
	SourceDir string
	BaseURL   string
}

// Rewrite returns htmlContent with img[src] and a[href] relative paths
// rewritten. Anchors, URLs, absolute paths and paths escaping SourceDir are
// left unchanged. If SourceDir is empty, htmlContent is returned unchanged.
//
// Only rewritten tags are re-serialized; every other byte is copied as
// written, so table blocks keep their exact layout.
func (r PathRewriter) Rewrite(htmlContent string) (string, error) {
	if r.SourceDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(r.SourceDir)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.Grow(len(htmlContent))

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if errors.Is(z.Err(), io.EOF) {
				buf.Write(z.Raw()) // incomplete trailing markup
				return buf.String(), nil
			}
			return "", z.Err()
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			buf.Write(z.Raw())
			continue
		}

		// Token reuses the tokenizer buffer
		raw := append([]byte(nil), z.Raw()...)
		tok := z.Token()
		if !r.rewriteToken(&tok, absSourceDir) {
			buf.Write(raw)
			continue
		}
		buf.WriteString(tok.String())
	}
}

// rewriteToken rewrites the path attribute of img and a tags. It reports
// whether the token changed.
func (r PathRewriter) rewriteToken(tok *html.Token, sourceDir string) bool {
	var attrName string
	switch tok.DataAtom {
	case atom.Img:
		attrName = "src"
	case atom.A:
		attrName = "href"
	default:
		return false
	}

	changed := false
	for i, attr := range tok.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		absPath := filepath.Join(sourceDir, attr.Val)
		if !isPathUnderDir(absPath, sourceDir) {
			continue
		}

		if r.BaseURL == "" {
			tok.Attr[i].Val = pathToFileURL(absPath)
			changed = true
			continue
		}

		rel, err := filepath.Rel(sourceDir, absPath)
		if err != nil {
			continue
		}
		tok.Attr[i].Val = joinURL(r.BaseURL, filepath.ToSlash(rel))
		changed = true
	}
	return changed
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(p string) bool {
	if p == "" {
		return false
	}

	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"} {
		if strings.HasPrefix(p, prefix) {
			return false
		}
	}

	return !filepath.IsAbs(p) && !strings.HasPrefix(p, "/")
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}

// joinURL appends a slash-separated relative path to base.
func joinURL(base, rel string) string {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" {
		return strings.TrimSuffix(base, "/") + "/" + rel
	}
	u.Path = path.Join("/", u.Path, rel)
	return u.String()
}

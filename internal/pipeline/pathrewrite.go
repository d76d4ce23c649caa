package pipeline

import (
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ResolveImagePaths rewrites relative img[src] paths to absolute paths
// under sourceDir. If sourceDir is empty, the HTML is returned
// unchanged.
//
// RTF image placeholders display the source path as text; resolving
// against the markdown file's directory makes the full-path display
// mode show a usable location instead of a vault-relative fragment.
// URLs, absolute paths, and data URIs are left alone.
func ResolveImagePaths(htmlContent, sourceDir string) (string, error) {
	if sourceDir == "" {
		return htmlContent, nil
	}

	absSourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}

	nodes, err := html.ParseFragment(strings.NewReader(htmlContent), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		return "", err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	rewriteImages(container, absSourceDir)

	var b strings.Builder
	for c := container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

func rewriteImages(n *html.Node, sourceDir string) {
	if n.Type == html.ElementNode && n.Data == "img" {
		for i, a := range n.Attr {
			if a.Key == "src" && isRelativePath(a.Val) {
				n.Attr[i].Val = filepath.Join(sourceDir, filepath.FromSlash(a.Val))
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteImages(c, sourceDir)
	}
}

// isRelativePath reports whether src is a plain relative file path, as
// opposed to a URL, data URI, anchor, or absolute path.
func isRelativePath(src string) bool {
	if src == "" || strings.HasPrefix(src, "#") {
		return false
	}
	if strings.Contains(src, "://") || strings.HasPrefix(src, "data:") {
		return false
	}
	if filepath.IsAbs(src) || strings.HasPrefix(src, "/") {
		return false
	}
	return true
}

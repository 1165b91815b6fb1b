package server

import (
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"regexp"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

type asset struct {
	contentType string
	body        []byte
}

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFuncRegexp(regexp.MustCompile(`^(application|text)/(x-)?(java|ecma)script$`), js.Minify)
	return m
}

// loadAssets reads every file of assets into memory, minifying the types the
// minifier knows.
func loadAssets(assets fs.FS) (map[string]asset, error) {
	m := newMinifier()
	out := make(map[string]asset)

	err := fs.WalkDir(assets, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(assets, name)
		if err != nil {
			return err
		}

		mediatype := mimeType(name)
		if small, err := m.Bytes(mediatype, body); err == nil {
			body = small
		} else if !errors.Is(err, minify.ErrNotExist) {
			return fmt.Errorf("minify %s: %w", name, err)
		}

		out["/"+name] = asset{contentType: mediatype, body: body}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	if a, ok := out["/index.html"]; ok {
		out["/"] = a
	}
	return out, nil
}

func mimeType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return "text/html"
	case ".css":
		return "text/css"
	case ".js":
		return "application/javascript"
	}
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return "application/octet-stream"
}

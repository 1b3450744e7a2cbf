// Package lintconfig ships the ESLint configuration template and copies it
// into a project. The template is opaque: it is copied byte for byte and
// never parsed.
package lintconfig

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultTargetName is the file the template is copied to.
const DefaultTargetName = ".eslintrc.js"

const embeddedPath = "templates/eslint-config.js"

//go:embed templates/eslint-config.js
var templates embed.FS

// Template is a config template read from FS at Path.
type Template struct {
	FS   fs.FS
	Path string
}

// Embedded returns the template compiled into the binary.
func Embedded() *Template {
	return &Template{FS: templates, Path: embeddedPath}
}

// FromFile returns a template read from an on-disk file.
func FromFile(path string) *Template {
	return &Template{FS: os.DirFS(filepath.Dir(path)), Path: filepath.Base(path)}
}

// Bytes returns the template content.
func (t *Template) Bytes() ([]byte, error) {
	data, err := fs.ReadFile(t.FS, t.Path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", t.Path, err)
	}
	return data, nil
}

// CopyTo writes the template to <dir>/<name>, replacing any existing file,
// and returns the destination path. An empty name uses DefaultTargetName.
func (t *Template) CopyTo(dir, name string) (string, error) {
	if name == "" {
		name = DefaultTargetName
	}
	data, err := t.Bytes()
	if err != nil {
		return "", err
	}
	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", dst, err)
	}
	return dst, nil
}

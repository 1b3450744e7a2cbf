// Package manifest loads, edits and rewrites a project's package.json
// without disturbing the parts it does not touch: key order, number and
// string spelling, indentation, line endings and the trailing newline all
// survive a load/save cycle.
package manifest

import (
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultFileName is the manifest file name inside a project directory.
const DefaultFileName = "package.json"

// Error is a sentinel manifest error kind.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrNotFound means no manifest file exists at the resolved path.
	ErrNotFound = Error("manifest not found")
	// ErrParse means the manifest is not valid JSON or not a JSON object.
	ErrParse = Error("manifest is not a valid JSON object")
	// ErrInvalidScripts means "scripts" holds a value that cannot carry entries.
	ErrInvalidScripts = Error(`manifest "scripts" field is not an object`)
)

// Manifest is a parsed package.json. The document is kept as raw JSON so
// that untouched values are written back exactly as they were read.
type Manifest struct {
	// Path is the file the manifest was loaded from and is saved to.
	Path string
	// Indent is the whitespace unit detected in the original file.
	// Empty means compact output.
	Indent string

	doc             []byte
	newline         string
	trailingNewline bool
}

// Get returns the value at a gjson path inside the document.
func (m *Manifest) Get(path string) gjson.Result {
	return gjson.GetBytes(m.doc, path)
}

// Script returns the command registered under scripts.<name>.
func (m *Manifest) Script(name string) (string, bool) {
	r := m.Get("scripts." + escapeKey(name))
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.Str, true
}

// Scripts returns every string entry of the scripts object.
func (m *Manifest) Scripts() map[string]string {
	out := make(map[string]string)
	scripts := m.Get("scripts")
	if !scripts.IsObject() {
		return out
	}
	scripts.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.String {
			out[k.Str] = v.Str
		}
		return true
	})
	return out
}

// escapeKey makes a single object key safe to use as one gjson/sjson path
// component.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isFalsy reports whether v would be treated as "not set" by a JavaScript
// truthiness check.
func isFalsy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.Number:
		return v.Num == 0
	case gjson.String:
		return v.Str == ""
	}
	return false
}

package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Load reads <dir>/<name>, detects its formatting and validates it.
// It never writes. An empty name loads package.json.
func Load(dir, name string) (*Manifest, error) {
	if name == "" {
		name = DefaultFileName
	}
	path := filepath.Join(dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse builds a Manifest from raw file content. path is recorded for Save.
func Parse(path string, data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrParse, path)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s: top-level value is not an object", ErrParse, path)
	}
	if s := root.Get("scripts"); s.Exists() && !isFalsy(s) && !s.IsObject() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScripts, path)
	}

	text := string(data)
	return &Manifest{
		Path:            path,
		Indent:          DetectIndent(text),
		doc:             []byte(strings.TrimSpace(text)),
		newline:         detectNewline(text),
		trailingNewline: strings.HasSuffix(text, "\n"),
	}, nil
}

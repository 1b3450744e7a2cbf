package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/sjson"
)

// SetScript creates or overwrites scripts.<name>. A missing or falsy
// "scripts" field is replaced by an object holding only the new entry;
// an existing key keeps its position.
func (m *Manifest) SetScript(name, command string) error {
	if !m.Get("scripts").IsObject() {
		doc, err := sjson.SetRawBytes(m.doc, "scripts", []byte("{}"))
		if err != nil {
			return fmt.Errorf("set scripts: %w", err)
		}
		m.doc = doc
	}
	doc, err := sjson.SetBytes(m.doc, "scripts."+escapeKey(name), command)
	if err != nil {
		return fmt.Errorf("set script %q: %w", name, err)
	}
	m.doc = doc
	return nil
}

// Bytes serializes the manifest with its detected indentation. An empty
// indent produces compact output.
func (m *Manifest) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	var err error
	if m.Indent == "" {
		err = json.Compact(&buf, m.doc)
	} else {
		err = json.Indent(&buf, m.doc, "", m.Indent)
	}
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", m.Path, err)
	}

	out := buf.Bytes()
	if m.newline == "\r\n" {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte("\r\n"))
	}
	if m.trailingNewline {
		out = append(out, m.newline...)
	}
	return out, nil
}

// Save overwrites the manifest file with Bytes.
func (m *Manifest) Save() error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", m.Path, err)
	}
	return nil
}

package manifest

import (
	"regexp"
	"strings"
)

// maxIndent is the longest indent unit JSON serializers accept.
const maxIndent = 10

var indentedLine = regexp.MustCompile(`(?m)^([ \t]+)[^ \t\r\n]`)

// DetectIndent returns the whitespace unit used to indent a JSON document.
// JSON strings cannot span lines, so the first indented line that carries a
// token sits one level deep and its leading whitespace is the unit.
// A document with no indented line yields "".
func DetectIndent(text string) string {
	m := indentedLine.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	indent := m[1]
	if len(indent) > maxIndent {
		indent = indent[:maxIndent]
	}
	return indent
}

// detectNewline returns "\r\n" for documents with Windows line endings.
func detectNewline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

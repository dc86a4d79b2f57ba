package parser

import (
	"bytes"
	"strings"
)

type markdownParser struct{}

func (markdownParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".markdown")
}

// Parse normalizes line endings only; the body is embedded as written.
func (markdownParser) Parse(content []byte) (string, error) {
	text := string(bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n")))
	return strings.ReplaceAll(text, "\r", "\n"), nil
}

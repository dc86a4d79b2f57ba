package parser

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type txtParser struct{}

func (txtParser) CanParse(filename string) bool {
	name := strings.ToLower(filename)
	return strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".text")
}

// Parse returns the text as written, minus a leading UTF-8 byte-order mark.
func (txtParser) Parse(content []byte) (string, error) {
	return string(bytes.TrimPrefix(content, utf8BOM)), nil
}

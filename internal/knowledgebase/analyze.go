package knowledgebase

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

// Field is an extracted scalar that may be absent from the document.
type Field struct {
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

// TOC is the extracted table-of-contents block.
type TOC struct {
	Found   bool     `json:"found"`
	Entries []string `json:"entries,omitempty"`
}

// Section is the extracted per-document section.
type Section struct {
	Found     bool     `json:"found"`
	Title     string   `json:"title,omitempty"`
	BodyChars int      `json:"body_chars"`
	Headings  []string `json:"headings,omitempty"`
}

// Report holds everything the analyzer could extract. Each part is
// extracted independently; a missing part never hides the others.
type Report struct {
	Path          string  `json:"path,omitempty"`
	SizeBytes     int64   `json:"size_bytes"`
	Chars         int     `json:"chars"`
	Tokens        int     `json:"tokens"`
	Date          Field   `json:"date"`
	Title         Field   `json:"title"`
	DocumentCount Field   `json:"document_count"`
	TOC           TOC     `json:"toc"`
	Section       Section `json:"section"`
}

// SizeKB returns the file size in kibibytes.
func (r *Report) SizeKB() float64 { return float64(r.SizeBytes) / 1024 }

// Missing lists the labels of structural parts that were not found.
func (r *Report) Missing() []string {
	var out []string
	if !r.Title.Found {
		out = append(out, "知识库标题")
	}
	if !r.Date.Found {
		out = append(out, "生成时间")
	}
	if !r.DocumentCount.Found {
		out = append(out, "包含文档")
	}
	if !r.TOC.Found {
		out = append(out, "目录")
	}
	if !r.Section.Found {
		out = append(out, "文档内容")
	}
	return out
}

// Analyze reads the document at path and extracts its structure.
// A missing file yields an error wrapping ErrFileNotFound; read failures
// yield an *IOError.
func Analyze(path string) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &IOError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	r := Parse(string(b))
	r.Path = path
	r.SizeBytes = info.Size()
	return r, nil
}

// Parse extracts the knowledge-base structure from document text.
// SizeBytes is the length of text as given, before line endings are
// normalized, so it matches the file size Analyze reports.
func Parse(text string) *Report {
	size := int64(len(text))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	return &Report{
		SizeBytes:     size,
		Chars:         utf8.RuneCountInString(text),
		Tokens:        utils.CountTokens(text),
		Date:          parseDate(lines),
		Title:         parseTitle(lines),
		DocumentCount: parseDocumentCount(lines),
		TOC:           parseTOC(lines),
		Section:       parseSection(lines),
	}
}

func parseTitle(lines []string) Field {
	for _, l := range lines {
		if v, ok := strings.CutPrefix(l, titlePrefix); ok && v != "" {
			return Field{Value: v, Found: true}
		}
	}
	return Field{}
}

func parseDate(lines []string) Field {
	for _, l := range lines {
		idx := strings.Index(l, datePrefix)
		if idx < 0 {
			continue
		}
		rest := l[idx+len(datePrefix):]
		end := strings.IndexFunc(rest, func(r rune) bool {
			return (r < '0' || r > '9') && r != '-'
		})
		if end < 0 {
			end = len(rest)
		}
		if end > 0 {
			return Field{Value: rest[:end], Found: true}
		}
	}
	return Field{}
}

func parseDocumentCount(lines []string) Field {
	for _, l := range lines {
		v, ok := strings.CutPrefix(l, countPrefix)
		if !ok {
			continue
		}
		v = strings.TrimSpace(strings.TrimSuffix(v, countSuffix))
		if _, err := strconv.Atoi(v); err == nil {
			return Field{Value: v, Found: true}
		}
	}
	return Field{}
}

// parseTOC takes the lines between the TOC heading (plus its blank line)
// and the next blank line that is followed by a rule.
func parseTOC(lines []string) TOC {
	for i, l := range lines {
		if l != tocHeading || i+1 >= len(lines) || lines[i+1] != "" {
			continue
		}
		start := i + 2
		for j := start; j+1 < len(lines); j++ {
			if lines[j] != "" || !strings.HasPrefix(lines[j+1], rule) {
				continue
			}
			block := strings.TrimSpace(strings.Join(lines[start:j], "\n"))
			if block == "" {
				break
			}
			raw := strings.Split(block, "\n")
			entries := make([]string, 0, len(raw))
			for _, e := range raw {
				entries = append(entries, strings.TrimSpace(e))
			}
			return TOC{Found: true, Entries: entries}
		}
	}
	return TOC{}
}

func parseSection(lines []string) Section {
	for i, l := range lines {
		rest, ok := strings.CutPrefix(l, sectionPrefix)
		if !ok {
			continue
		}
		title, ok := strings.CutSuffix(rest, sectionSuffix)
		if !ok || title == "" {
			continue
		}
		bodyStart := i + 1
		if bodyStart < len(lines) && lines[bodyStart] == "" {
			bodyStart++
		}
		var bodyLines []string
		if bodyStart < len(lines) {
			bodyLines = lines[bodyStart:]
		}
		body := strings.Join(bodyLines, "\n")
		return Section{
			Found:     true,
			Title:     title,
			BodyChars: utf8.RuneCountInString(body),
			Headings:  subHeadings(bodyLines),
		}
	}
	return Section{}
}

// subHeadings returns level-2+ ATX heading texts outside fenced code blocks.
func subHeadings(lines []string) []string {
	var out []string
	inFence := false
	for _, l := range lines {
		t := strings.TrimLeft(l, " \t")
		if strings.HasPrefix(t, "```") || strings.HasPrefix(t, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		level := 0
		for level < len(t) && t[level] == '#' {
			level++
		}
		if level < 2 || level >= len(t) || t[level] != ' ' {
			continue
		}
		if text := strings.TrimSpace(t[level:]); text != "" {
			out = append(out, text)
		}
	}
	return out
}

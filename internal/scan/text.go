// Package scan locates text and definitions inside source files and
// reports them by 1-based line number.
package scan

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Match is a single matching line.
type Match struct {
	Line int    `json:"line"`
	Text string `json:"text"`
	Kind string `json:"kind,omitempty"`
}

// LineRange is an inclusive 1-based window; zero bounds are open.
type LineRange struct {
	From int
	To   int
}

// Contains reports whether line falls inside the window.
func (r LineRange) Contains(line int) bool {
	if r.From > 0 && line < r.From {
		return false
	}
	if r.To > 0 && line > r.To {
		return false
	}
	return true
}

// Validate rejects windows that can never match.
func (r LineRange) Validate() error {
	if r.From < 0 || r.To < 0 {
		return fmt.Errorf("line bounds must not be negative")
	}
	if r.To > 0 && r.From > r.To {
		return fmt.Errorf("--from %d is after --to %d", r.From, r.To)
	}
	return nil
}

// TextQuery describes a text search.
type TextQuery struct {
	Pattern    string
	Regex      bool
	IgnoreCase bool
	Range      LineRange
}

func (q TextQuery) matcher() (func(string) bool, error) {
	if q.Pattern == "" {
		return nil, fmt.Errorf("search text is required")
	}
	if q.Regex {
		expr := q.Pattern
		if q.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile pattern: %w", err)
		}
		return re.MatchString, nil
	}
	if q.IgnoreCase {
		needle := strings.ToLower(q.Pattern)
		return func(s string) bool { return strings.Contains(strings.ToLower(s), needle) }, nil
	}
	return func(s string) bool { return strings.Contains(s, q.Pattern) }, nil
}

// Validate checks the pattern and window without reading any file.
func (q TextQuery) Validate() error {
	if _, err := q.matcher(); err != nil {
		return err
	}
	return q.Range.Validate()
}

// SearchText returns every line of the file at path matching q.
func SearchText(path string, q TextQuery) ([]Match, error) {
	match, err := q.matcher()
	if err != nil {
		return nil, err
	}
	if err := q.Range.Validate(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var out []Match
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for n := 1; sc.Scan(); n++ {
		if q.Range.To > 0 && n > q.Range.To {
			break
		}
		if !q.Range.Contains(n) {
			continue
		}
		line := sc.Text()
		if match(line) {
			out = append(out, Match{Line: n, Text: strings.TrimSpace(line)})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// Package cleaner strips line-number gutters ("  12→") that viewer tools
// prepend to each line when text is copied out of them.
package cleaner

import (
	"fmt"
	"os"
	"regexp"

	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

// gutter matches one or more "<spaces><digits>→" prefixes at a line start.
// Whitespace after the last arrow belongs to the content and is kept.
var gutter = regexp.MustCompile(`(?m)^(?:[ \t]*[0-9]+→)+`)

// Strip removes gutters from every line and returns the cleaned text and
// the number of lines changed. Line endings are preserved.
func Strip(text string) (string, int) {
	n := 0
	out := gutter.ReplaceAllStringFunc(text, func(string) string {
		n++
		return ""
	})
	return out, n
}

// Result describes one cleaned file.
type Result struct {
	Path    string
	Changed int
	Written bool
}

// CleanFile strips gutters from path in place. With dryRun the file is only
// inspected. Unchanged files are not rewritten.
func CleanFile(path string, dryRun bool) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cleaned, n := Strip(string(b))
	res := &Result{Path: path, Changed: n}
	if dryRun || n == 0 {
		return res, nil
	}
	if err := utils.SafeWriteFileMode(path, []byte(cleaned), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}
	res.Written = true
	return res, nil
}

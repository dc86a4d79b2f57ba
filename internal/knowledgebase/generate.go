package knowledgebase

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

// GenerateOptions are the inputs of a single generation.
type GenerateOptions struct {
	Title      string
	Content    string
	OutputPath string
	// Date in DateLayout; empty means today according to Generator.Now.
	Date string
}

// Result summarizes a written knowledge base.
type Result struct {
	Path          string `json:"path"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Anchor        string `json:"anchor"`
	ContentChars  int    `json:"content_chars"`
	ContentTokens int    `json:"content_tokens"`
	Bytes         int    `json:"bytes"`
}

// Generator writes knowledge-base documents. The zero value uses time.Now.
type Generator struct {
	Now func() time.Time
}

func (g Generator) today() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return now().Format(DateLayout)
}

// Validate checks opts without touching the filesystem.
func (opts GenerateOptions) Validate() error {
	if strings.TrimSpace(opts.Title) == "" {
		return invalidf("title is required")
	}
	if strings.ContainsAny(opts.Title, "\r\n") {
		return invalidf("title must be a single line")
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return invalidf("output path is required")
	}
	if opts.Date != "" && !ValidDate(opts.Date) {
		return invalidf("date %q is not in YYYY-MM-DD form", opts.Date)
	}
	return nil
}

// Generate renders the document and writes it to opts.OutputPath in one
// write, creating parent directories and replacing any existing file.
func (g Generator) Generate(opts GenerateOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	date := opts.Date
	if date == "" {
		date = g.today()
	}
	doc := Document{Title: opts.Title, Date: date, Body: opts.Content}
	text := doc.Render()

	if err := utils.EnsureParentDir(opts.OutputPath); err != nil {
		return nil, &IOError{Op: "create directory for", Path: opts.OutputPath, Err: err}
	}
	if err := utils.SafeWriteFile(opts.OutputPath, []byte(text)); err != nil {
		return nil, &IOError{Op: "write", Path: opts.OutputPath, Err: err}
	}
	return &Result{
		Path:          opts.OutputPath,
		Title:         doc.Title,
		Date:          date,
		Anchor:        Anchor(doc.Title),
		ContentChars:  utf8.RuneCountInString(opts.Content),
		ContentTokens: utils.CountTokens(opts.Content),
		Bytes:         len(text),
	}, nil
}

// Package knowledgebase renders and inspects NotebookLM knowledge-base
// documents in the fixed single-document markdown layout.
package knowledgebase

import (
	"strings"
	"time"
)

// Template markers. The analyzer relies on exactly these strings.
const (
	titlePrefix   = "# 📚 知识库 - "
	datePrefix    = "**生成时间**: "
	countPrefix   = "**包含文档**: "
	countSuffix   = " 个"
	tocHeading    = "## 📋 目录"
	sectionPrefix = "## 📄 "
	sectionSuffix = ".md"
	rule          = "---"

	// DateLayout is the textual form of the generation date.
	DateLayout = "2006-01-02"
)

// Document is a single-document knowledge base.
type Document struct {
	Title string
	Date  string
	Body  string
}

// Anchor returns the table-of-contents reference for title: lowercase with
// spaces replaced by hyphens.
func Anchor(title string) string {
	return strings.ToLower(strings.ReplaceAll(title, " ", "-"))
}

// DocumentCount is always 1: a knowledge base produced here holds one section.
func (d Document) DocumentCount() int { return 1 }

// Render assembles the complete document text.
func (d Document) Render() string {
	anchor := Anchor(d.Title)
	var sb strings.Builder
	sb.Grow(len(d.Body) + 256)

	sb.WriteString(titlePrefix + d.Title + "\n\n")
	sb.WriteString(datePrefix + d.Date + "\n")
	sb.WriteString(countPrefix + "1" + countSuffix + "\n\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString(tocHeading + "\n\n")
	sb.WriteString("1. [" + anchor + "](#" + anchor + ")\n\n")
	sb.WriteString(rule + "\n\n")

	sb.WriteString(sectionPrefix + d.Title + sectionSuffix + "\n\n")
	sb.WriteString(d.Body)
	sb.WriteString("\n")
	return sb.String()
}

// ValidDate reports whether s is a calendar date in DateLayout.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

package knowledgebase_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/kbtool-cli/internal/knowledgebase"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

func TestParseGeneratedDocument(t *testing.T) {
	text := knowledgebase.Document{Title: "Demo", Date: "2024-01-01", Body: "Hello world"}.Render()

	got := knowledgebase.Parse(text)
	want := &knowledgebase.Report{
		SizeBytes:     int64(len(text)),
		Chars:         utf8.RuneCountInString(text),
		Tokens:        utils.CountTokens(text),
		Date:          knowledgebase.Field{Value: "2024-01-01", Found: true},
		Title:         knowledgebase.Field{Value: "Demo", Found: true},
		DocumentCount: knowledgebase.Field{Value: "1", Found: true},
		TOC:           knowledgebase.TOC{Found: true, Entries: []string{"1. [demo](#demo)"}},
		Section:       knowledgebase.Section{Found: true, Title: "Demo", BodyChars: len("Hello world\n")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, got.Missing())
}

func TestGenerateThenAnalyzeRoundTrip(t *testing.T) {
	cases := []struct{ title, content string }{
		{"Demo", "Hello world"},
		{"Hop Harvest Notes", "## Plots\n\nA1 and B3\n\n### Moisture\n74"},
		{"内容创作 平台", "正文"},
		{"Empty Body", ""},
		{"Tricky ## Title", "---\n\nstill body"},
	}
	dir := t.TempDir()
	for i, c := range cases {
		out := filepath.Join(dir, "kb", string(rune('a'+i))+".md")
		_, err := fixedGenerator().Generate(knowledgebase.GenerateOptions{Title: c.title, Content: c.content, OutputPath: out})
		require.NoError(t, err, c.title)

		rep, err := knowledgebase.Analyze(out)
		require.NoError(t, err, c.title)
		assert.Equal(t, c.title, rep.Title.Value, c.title)
		assert.True(t, rep.TOC.Found, c.title)
		assert.Len(t, rep.TOC.Entries, 1, c.title)
		assert.Equal(t, "1. ["+knowledgebase.Anchor(c.title)+"](#"+knowledgebase.Anchor(c.title)+")", rep.TOC.Entries[0])
		assert.True(t, rep.Section.Found, c.title)
		assert.Equal(t, c.title, rep.Section.Title, c.title)
		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Equal(t, info.Size(), rep.SizeBytes)
	}
}

func TestAnalyzeEmptyBody(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.md")
	_, err := fixedGenerator().Generate(knowledgebase.GenerateOptions{Title: "Nothing", OutputPath: out})
	require.NoError(t, err)

	rep, err := knowledgebase.Analyze(out)
	require.NoError(t, err)
	assert.True(t, rep.Section.Found)
	assert.Equal(t, 1, rep.Section.BodyChars) // the trailing newline only
	assert.Empty(t, rep.Section.Headings)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf, knowledgebase.TextOptions{Styles: output.Plain()}))
	assert.Contains(t, buf.String(), "📚 文档章节: 未找到")
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := knowledgebase.Analyze("/no/such/file.md")
	require.Error(t, err)
	assert.ErrorIs(t, err, knowledgebase.ErrFileNotFound)
}

func TestAnalyzeDirectoryIsIOError(t *testing.T) {
	_, err := knowledgebase.Analyze(t.TempDir())
	var ioErr *knowledgebase.IOError
	require.True(t, errors.As(err, &ioErr))
}

func TestParseMalformedEveryFieldFallsBack(t *testing.T) {
	rep := knowledgebase.Parse("just some notes\nwith # a hash and **bold** text\n")
	assert.False(t, rep.Date.Found)
	assert.False(t, rep.Title.Found)
	assert.False(t, rep.DocumentCount.Found)
	assert.False(t, rep.TOC.Found)
	assert.False(t, rep.Section.Found)
	assert.Equal(t, []string{"知识库标题", "生成时间", "包含文档", "目录", "文档内容"}, rep.Missing())

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf, knowledgebase.TextOptions{Styles: output.Plain()}))
	text := buf.String()
	for _, want := range []string{
		"📅 生成时间: 未找到",
		"📋 知识库标题: 未找到",
		"🗂 包含文档: 未找到",
		"📑 目录: 未找到",
		"📄 文档内容: 未找到",
		"⚠ 文件格式不完整",
		"📋 建议操作:",
		"4. 考虑添加更多交叉引用以提高NotebookLM的理解",
	} {
		assert.Contains(t, text, want)
	}
}

func TestParseFieldsAreIndependent(t *testing.T) {
	// Title and section survive a broken TOC and a date without digits.
	text := "# 📚 知识库 - Partial\n\n**生成时间**: unknown\n\n## 📋 目录\n\n1. [partial](#partial)\n\n## 📄 Partial.md\n\nbody\n"
	rep := knowledgebase.Parse(text)
	assert.True(t, rep.Title.Found)
	assert.False(t, rep.Date.Found)
	assert.False(t, rep.TOC.Found)
	assert.True(t, rep.Section.Found)
	assert.Equal(t, "Partial", rep.Section.Title)
}

func TestParseDateIgnoresTrailingText(t *testing.T) {
	rep := knowledgebase.Parse("**生成时间**: 2024-01-01 (manual)\n")
	assert.Equal(t, knowledgebase.Field{Value: "2024-01-01", Found: true}, rep.Date)
}

func TestParseCRLF(t *testing.T) {
	text := strings.ReplaceAll(knowledgebase.Document{Title: "Win", Date: "2024-01-01", Body: "x"}.Render(), "\n", "\r\n")
	rep := knowledgebase.Parse(text)
	assert.Empty(t, rep.Missing())
	assert.Equal(t, "Win", rep.Title.Value)

	p := filepath.Join(t.TempDir(), "win.md")
	require.NoError(t, os.WriteFile(p, []byte(text), 0o644))
	fromFile, err := knowledgebase.Analyze(p)
	require.NoError(t, err)
	assert.Equal(t, int64(len(text)), rep.SizeBytes)
	assert.Equal(t, fromFile.SizeBytes, rep.SizeBytes)
}

func TestSectionHeadingsPreviewLimit(t *testing.T) {
	body := strings.Join([]string{
		"## One", "text", "### Two", "```", "## fenced, not a heading", "```",
		"#### Three", "##NoSpace", "## Four", "## Five", "## Six", "##### Seven",
	}, "\n")
	out := filepath.Join(t.TempDir(), "kb.md")
	_, err := fixedGenerator().Generate(knowledgebase.GenerateOptions{Title: "Many", Content: body, OutputPath: out})
	require.NoError(t, err)

	rep, err := knowledgebase.Analyze(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"}, rep.Section.Headings)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf, knowledgebase.TextOptions{Styles: output.Plain()}))
	text := buf.String()
	assert.Contains(t, text, "📚 文档章节数量: 7")
	assert.Contains(t, text, "   5. Five\n")
	assert.NotContains(t, text, "   6. Six")
	assert.Contains(t, text, "   ... 等共 7 个章节")
	assert.Contains(t, text, "✅ 文件格式符合NotebookLM要求")

	buf.Reset()
	require.NoError(t, rep.WriteText(&buf, knowledgebase.TextOptions{PreviewLimit: 10, Styles: output.Plain()}))
	assert.Contains(t, buf.String(), "   7. Seven\n")
	assert.NotContains(t, buf.String(), "... 等共")
}

func TestWriteTextHeaderAndSize(t *testing.T) {
	rep := &knowledgebase.Report{Path: "kb.md", SizeBytes: 2048, Chars: 10}
	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf, knowledgebase.TextOptions{Styles: output.Plain()}))
	text := buf.String()
	assert.True(t, strings.HasPrefix(text, "📊 知识库文件分析报告: kb.md\n"+strings.Repeat("=", 60)+"\n"))
	assert.Contains(t, text, "📦 文件大小: 2.00 KB")
	assert.Contains(t, text, "📏 内容长度: 10 字符")
}

func TestMissingFileText(t *testing.T) {
	assert.Equal(t, "❌ 文件不存在: /no/such/file.md\n", knowledgebase.MissingFileText("/no/such/file.md", output.Plain()))
}

package knowledgebase

import (
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/kbtool-cli/internal/output"
)

// DefaultPreviewLimit is how many section headings are listed by name.
const DefaultPreviewLimit = 5

// Suggestions are printed after every analysis. They are fixed advice and
// do not depend on the analyzed content.
var Suggestions = []string{
	"检查文件大小是否符合NotebookLM限制",
	"确保内容结构清晰，便于NotebookLM索引",
	"验证所有章节标题格式正确",
	"考虑添加更多交叉引用以提高NotebookLM的理解",
}

// UploadSteps are printed after a successful generation.
func UploadSteps(notebookURL, path string) []string {
	return []string{
		"打开 Google NotebookLM: " + notebookURL,
		"点击 '+ Add sources'",
		"选择 'Upload files'",
		"选择生成的文件: " + path,
		"等待NotebookLM处理完成",
	}
}

var separator = strings.Repeat("=", 60)

// TextOptions control the human-readable report.
type TextOptions struct {
	PreviewLimit int
	Styles       output.Styles
}

// MissingFileText is the report for a path that does not exist.
func MissingFileText(path string, st output.Styles) string {
	return st.Error.Render("❌ 文件不存在: "+path) + "\n"
}

// WriteText renders the report as console text.
func (r *Report) WriteText(w io.Writer, opt TextOptions) error {
	limit := opt.PreviewLimit
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	st := opt.Styles
	var sb strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&sb, format, args...)
		sb.WriteByte('\n')
	}
	key := func(s string) string { return st.Key.Render(s) }
	notFound := st.Warning.Render("未找到")

	line("%s", st.Title.Render("📊 知识库文件分析报告: "+r.Path))
	line("%s", st.Rule.Render(separator))
	line("%s %.2f KB", key("📦 文件大小:"), r.SizeKB())
	line("%s %d 字符", key("📏 内容长度:"), r.Chars)
	line("%s %d", key("🔢 估算 Tokens:"), r.Tokens)

	if r.Date.Found {
		line("%s %s", key("📅 生成时间:"), r.Date.Value)
	} else {
		line("%s %s", key("📅 生成时间:"), notFound)
	}
	if r.Title.Found {
		line("%s %s", key("📋 知识库标题:"), r.Title.Value)
	} else {
		line("%s %s", key("📋 知识库标题:"), notFound)
	}
	if r.DocumentCount.Found {
		line("%s %s 个", key("🗂 包含文档:"), r.DocumentCount.Value)
	} else {
		line("%s %s", key("🗂 包含文档:"), notFound)
	}

	if r.TOC.Found {
		line("%s %d", key("📑 目录项数量:"), len(r.TOC.Entries))
		line("   目录内容:")
		for _, e := range r.TOC.Entries {
			line("   - %s", e)
		}
	} else {
		line("%s %s", key("📑 目录:"), notFound)
	}

	if r.Section.Found {
		line("%s %s", key("📄 文档标题:"), r.Section.Title)
		line("%s %d 字符", key("📝 文档内容长度:"), r.Section.BodyChars)
		if n := len(r.Section.Headings); n > 0 {
			line("%s %d", key("📚 文档章节数量:"), n)
			line("   章节标题:")
			for i, h := range r.Section.Headings {
				if i >= limit {
					break
				}
				line("   %d. %s", i+1, h)
			}
			if n > limit {
				line("   ... 等共 %d 个章节", n)
			}
		} else {
			line("%s %s", key("📚 文档章节:"), notFound)
		}
	} else {
		line("%s %s", key("📄 文档内容:"), notFound)
	}

	line("%s", st.Rule.Render(separator))
	line("💡 分析结果总结:")
	if missing := r.Missing(); len(missing) == 0 {
		line("%s", st.Success.Render("✅ 文件格式符合NotebookLM要求"))
	} else {
		line("%s", st.Warning.Render("⚠ 文件格式不完整: 缺少 "+strings.Join(missing, "、")))
	}
	line("")
	line("📋 建议操作:")
	for i, s := range Suggestions {
		line("%s", st.Muted.Render(fmt.Sprintf("%d. %s", i+1, s)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

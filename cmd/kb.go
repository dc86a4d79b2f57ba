package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/kbtool-cli/internal/knowledgebase"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
	"github.com/KaramelBytes/kbtool-cli/internal/parser"
	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

var (
	kbGenTitle       string
	kbGenContent     string
	kbGenContentFile string
	kbGenOutput      string
	kbGenDate        string
	kbGenJSON        bool

	kbAnaFile string
	kbAnaJSON bool

	// clock for the default generation date; tests pin it
	kbNow = time.Now
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Generate or analyze NotebookLM knowledge-base documents",
}

var kbGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a single-document knowledge base for NotebookLM",
	Example: `  kbtool kb generate --title "Demo" --content "Hello world" -o out/demo.md
  kbtool kb generate --title "Brief" --content-file brief.docx -o kb/brief.md --date 2024-01-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(kbGenTitle) == "" {
			return output.NewUserError("--title is required")
		}
		if strings.TrimSpace(kbGenOutput) == "" {
			return output.NewUserError("--output is required")
		}
		if kbGenContentFile == "" && !cmd.Flags().Changed("content") {
			return output.NewUserError("either --content or --content-file must be specified")
		}
		opts := knowledgebase.GenerateOptions{
			Title:      kbGenTitle,
			Content:    kbGenContent,
			OutputPath: kbGenOutput,
			Date:       kbGenDate,
		}
		if err := opts.Validate(); err != nil {
			return exitError(err)
		}
		if kbGenContentFile != "" {
			text, err := parser.ParseFile(kbGenContentFile)
			if err != nil {
				return output.NewSystemErrorWithCause(fmt.Sprintf("content file %s: %v", kbGenContentFile, err), err)
			}
			opts.Content = text
		}

		res, err := knowledgebase.Generator{Now: kbNow}.Generate(opts)
		if err != nil {
			return exitError(err)
		}
		logger.Debug("knowledge base written",
			zap.String("path", res.Path),
			zap.String("date", res.Date),
			zap.Int("bytes", res.Bytes))

		out := cmd.OutOrStdout()
		if kbGenJSON {
			b, err := utils.PrettyJSON(res)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		st := stylesFor(out)
		fmt.Fprintln(out, st.Success.Render("✅ 知识库文件生成成功: "+res.Path))
		fmt.Fprintln(out, "📋 生成的文件包含以下内容:")
		fmt.Fprintf(out, "   - 标题: %s\n", res.Title)
		fmt.Fprintf(out, "   - 生成时间: %s\n", res.Date)
		fmt.Fprintf(out, "   - 内容长度: %d 字符\n", res.ContentChars)
		fmt.Fprintf(out, "   - 估算 Tokens: %d\n", res.ContentTokens)
		fmt.Fprintln(out, "\n💡 上传到NotebookLM的步骤:")
		for i, step := range knowledgebase.UploadSteps(settings().NotebookLMURL, res.Path) {
			fmt.Fprintln(out, st.Muted.Render(fmt.Sprintf("%d. %s", i+1, step)))
		}
		return nil
	},
}

var kbAnalyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report the structure of an existing knowledge-base document",
	Example: `  kbtool kb analyze --file out/demo.md
  kbtool kb analyze out/demo.md --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := kbAnaFile
		if path == "" && len(args) == 1 {
			path = args[0]
		}
		if path == "" {
			return output.NewUserError("--file is required")
		}
		out := cmd.OutOrStdout()
		st := stylesFor(out)

		rep, err := knowledgebase.Analyze(path)
		if errors.Is(err, knowledgebase.ErrFileNotFound) {
			// A missing file is a report, not a failure.
			fmt.Fprint(out, knowledgebase.MissingFileText(path, st))
			return nil
		}
		if err != nil {
			return exitError(err)
		}
		logger.Debug("knowledge base analyzed",
			zap.String("path", path),
			zap.Strings("missing", rep.Missing()))

		if kbAnaJSON {
			b, err := utils.PrettyJSON(rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		return rep.WriteText(out, knowledgebase.TextOptions{
			PreviewLimit: settings().SectionPreviewLimit,
			Styles:       st,
		})
	},
}

func init() {
	rootCmd.AddCommand(kbCmd)
	kbCmd.AddCommand(kbGenerateCmd)
	kbCmd.AddCommand(kbAnalyzeCmd)

	kbGenerateCmd.Flags().StringVar(&kbGenTitle, "title", "", "knowledge base title (required)")
	kbGenerateCmd.Flags().StringVar(&kbGenContent, "content", "", "knowledge base content")
	kbGenerateCmd.Flags().StringVar(&kbGenContentFile, "content-file", "", "read content from a .txt, .md or .docx file (wins over --content)")
	kbGenerateCmd.Flags().StringVarP(&kbGenOutput, "output", "o", "", "output file path (required)")
	kbGenerateCmd.Flags().StringVar(&kbGenDate, "date", "", "generation date YYYY-MM-DD (default today)")
	kbGenerateCmd.Flags().BoolVar(&kbGenJSON, "json", false, "print the result as JSON")

	kbAnalyzeCmd.Flags().StringVarP(&kbAnaFile, "file", "f", "", "knowledge base file to analyze")
	kbAnalyzeCmd.Flags().BoolVar(&kbAnaJSON, "json", false, "print the report as JSON")
}

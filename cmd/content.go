package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/kbtool-cli/internal/content"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
	"github.com/KaramelBytes/kbtool-cli/internal/utils"
)

var (
	contentPrompt string
	contentOutput string
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Content helpers",
}

var contentGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Produce placeholder content from a prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if contentPrompt == "" {
			return output.NewUserError("--prompt is required")
		}
		text := content.Generate(contentPrompt, settings().PromptPreviewRunes)
		if contentOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		}
		if err := utils.EnsureParentDir(contentOutput); err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("create output dir: %v", err), err)
		}
		if err := utils.SafeWriteFile(contentOutput, []byte(text)); err != nil {
			return output.NewSystemErrorWithCause(fmt.Sprintf("write %s: %v", contentOutput, err), err)
		}
		logger.Debug("content written", zap.String("path", contentOutput), zap.Int("bytes", len(text)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentGenerateCmd)
	contentGenerateCmd.Flags().StringVar(&contentPrompt, "prompt", "", "prompt text (required)")
	contentGenerateCmd.Flags().StringVarP(&contentOutput, "output", "o", "", "write to this file instead of stdout")
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/kbtool-cli/internal/output"
	"github.com/KaramelBytes/kbtool-cli/internal/scan"
)

var (
	findFiles      []string
	findText       string
	findFrom       int
	findTo         int
	findRegex      bool
	findIgnoreCase bool

	findDefFiles     []string
	findDefName      string
	findDefHeuristic bool
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search source files for text or definitions",
}

var findTextCmd = &cobra.Command{
	Use:   "text",
	Short: "Print the lines of each file that contain the given text",
	Example: `  kbtool find text --file src/components/YouTubeAnalytics.tsx --text "Collect Full Analytics Report"
  kbtool find text --file youtube-analytics.js --text views --from 6250 --to 6500`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(findFiles) == 0 {
			return output.NewUserError("at least one --file is required")
		}
		if findText == "" {
			return output.NewUserError("--text is required")
		}
		q := scan.TextQuery{
			Pattern:    findText,
			Regex:      findRegex,
			IgnoreCase: findIgnoreCase,
			Range:      scan.LineRange{From: findFrom, To: findTo},
		}
		if err := q.Validate(); err != nil {
			return output.NewUserErrorWithCause(err.Error(), err)
		}
		out := cmd.OutOrStdout()
		return eachFile(cmd.ErrOrStderr(), findFiles, func(path string) error {
			matches, err := scan.SearchText(path, q)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Checking %s for '%s'...\n", path, findText)
			logger.Debug("searched", zap.String("path", path), zap.Int("matches", len(matches)))
			if len(matches) == 0 {
				fmt.Fprintln(out, "Text not found.")
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(out, "Found at line %d: %s\n", m.Line, m.Text)
			}
			return nil
		})
	},
}

var findDefCmd = &cobra.Command{
	Use:   "def",
	Short: "Locate where a function, class or method is defined",
	Example: `  kbtool find def --file src/components/YouTubeAnalytics.tsx --name handleCollectAnalytics
  kbtool find def --file gemini-extension/youtube-analytics.js --name scrapeAnalyticsData`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(findDefFiles) == 0 {
			return output.NewUserError("at least one --file is required")
		}
		if findDefName == "" {
			return output.NewUserError("--name is required")
		}
		out := cmd.OutOrStdout()
		return eachFile(cmd.ErrOrStderr(), findDefFiles, func(path string) error {
			fmt.Fprintf(out, "Checking %s for definition of '%s'...\n", path, findDefName)
			defs, err := scan.FindDefinitions(cmd.Context(), path, findDefName, findDefHeuristic)
			if err != nil {
				return err
			}
			logger.Debug("definitions", zap.String("path", path), zap.Int("found", len(defs)),
				zap.Bool("syntax", !findDefHeuristic && scan.SupportsSyntax(path)))
			if len(defs) == 0 {
				fmt.Fprintln(out, "Definition not found.")
				return nil
			}
			for _, d := range defs {
				fmt.Fprintf(out, "Found %s at line %d: %s\n", d.Kind, d.Line, d.Text)
			}
			return nil
		})
	},
}

// eachFile runs fn per path, reporting failures without stopping.
func eachFile(errOut io.Writer, paths []string, fn func(string) error) error {
	var firstErr error
	failed := 0
	for _, p := range paths {
		if err := fn(p); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
			if firstErr == nil {
				firstErr = err
			}
			failed++
		}
	}
	if failed > 0 {
		return output.NewSystemErrorWithCause(fmt.Sprintf("%d of %d files could not be read", failed, len(paths)), firstErr)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.AddCommand(findTextCmd)
	findCmd.AddCommand(findDefCmd)

	findTextCmd.Flags().StringArrayVarP(&findFiles, "file", "f", nil, "file to search (repeatable)")
	findTextCmd.Flags().StringVarP(&findText, "text", "t", "", "text to look for (required)")
	findTextCmd.Flags().IntVar(&findFrom, "from", 0, "first line to search, 1-based (0 = start)")
	findTextCmd.Flags().IntVar(&findTo, "to", 0, "last line to search, inclusive (0 = end)")
	findTextCmd.Flags().BoolVar(&findRegex, "regex", false, "treat --text as a regular expression")
	findTextCmd.Flags().BoolVarP(&findIgnoreCase, "ignore-case", "i", false, "case-insensitive match")

	findDefCmd.Flags().StringArrayVarP(&findDefFiles, "file", "f", nil, "file to search (repeatable)")
	findDefCmd.Flags().StringVarP(&findDefName, "name", "n", "", "function, class or method name (required)")
	findDefCmd.Flags().BoolVar(&findDefHeuristic, "heuristic", false, "use the plain line heuristic even for JS/TS files")
}

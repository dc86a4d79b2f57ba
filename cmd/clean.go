package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/kbtool-cli/internal/cleaner"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
)

var cleanCheck bool

var cleanCmd = &cobra.Command{
	Use:   "clean <file>...",
	Short: "Strip copied line-number gutters (\"  12→\") from files in place",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()
		var firstErr error
		failed := 0
		for _, path := range args {
			res, err := cleaner.CleanFile(path, cleanCheck)
			if err != nil {
				fmt.Fprintf(errOut, "Error cleaning %s: %v\n", path, err)
				if firstErr == nil {
					firstErr = err
				}
				failed++
				continue
			}
			logger.Debug("cleaned", zap.String("path", path), zap.Int("lines", res.Changed), zap.Bool("written", res.Written))
			switch {
			case cleanCheck:
				fmt.Fprintf(out, "%s: %d lines with line-number gutters\n", path, res.Changed)
			case res.Written:
				fmt.Fprintf(out, "Successfully cleaned: %s (%d lines)\n", path, res.Changed)
			default:
				fmt.Fprintf(out, "Already clean: %s\n", path)
			}
		}
		if failed > 0 {
			return output.NewSystemErrorWithCause(fmt.Sprintf("%d of %d files could not be cleaned", failed, len(args)), firstErr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().BoolVar(&cleanCheck, "check", false, "only report how many lines would change")
}

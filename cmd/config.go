package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/kbtool-cli/internal/config"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set kbtool configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := settings()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "section_preview_limit: %d\n", c.SectionPreviewLimit)
		fmt.Fprintf(out, "prompt_preview_runes: %d\n", c.PromptPreviewRunes)
		fmt.Fprintf(out, "color: %s\n", c.Color)
		fmt.Fprintf(out, "notebooklm_url: %s\n", c.NotebookLMURL)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				c = cfgpkg.Defaults()
			}
			cfg = c
		}
		switch key {
		case "section_preview_limit":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return output.NewUserError(fmt.Sprintf("invalid positive int for section_preview_limit: %v", val))
			}
			cfg.SectionPreviewLimit = i
		case "prompt_preview_runes":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return output.NewUserError(fmt.Sprintf("invalid positive int for prompt_preview_runes: %v", val))
			}
			cfg.PromptPreviewRunes = i
		case "color":
			switch val {
			case "auto", "always", "never":
				cfg.Color = val
			default:
				return output.NewUserError(fmt.Sprintf("invalid color: %s (use auto, always or never)", val))
			}
		case "notebooklm_url":
			cfg.NotebookLMURL = val
		default:
			return output.NewUserError(fmt.Sprintf("unknown key: %s", key))
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return output.NewSystemErrorWithCause(err.Error(), err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cfgpkg "github.com/KaramelBytes/kbtool-cli/internal/config"
	"github.com/KaramelBytes/kbtool-cli/internal/logging"
	"github.com/KaramelBytes/kbtool-cli/internal/output"
)

// Set via -ldflags "-X github.com/KaramelBytes/kbtool-cli/cmd.version=..."
var version = "dev"

var (
	// Global flags
	cfgFile   string
	debug     bool
	colorMode string

	// Loaded configuration; nil until loadConfig runs or when loading failed.
	cfg *cfgpkg.Global

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "kbtool",
	Short: "kbtool: content-authoring helpers for NotebookLM knowledge bases",
	Long: `kbtool bundles small authoring utilities: it generates and inspects
single-document NotebookLM knowledge bases, produces placeholder content,
strips copied line-number gutters and searches source files for text or
definitions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(debug)
		if err != nil {
			return output.NewSystemErrorWithCause(err.Error(), err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute is the entry point called by main.main()
func Execute() {
	err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version))
	os.Exit(output.GetExitCode(err))
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.kbtool/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "color output: auto | always | never (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: every command works on built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c
	if f := rootCmd.PersistentFlags(); f.Changed("color") {
		switch colorMode {
		case "auto", "always", "never":
			cfg.Color = colorMode
		default:
			fmt.Fprintf(os.Stderr, "⚠ Warning: ignoring invalid --color %q\n", colorMode)
		}
	}
}

// settings returns the loaded configuration or the built-in defaults.
func settings() *cfgpkg.Global {
	if cfg == nil {
		return cfgpkg.Defaults()
	}
	return cfg
}

// stylesFor picks colored or plain styles for w.
func stylesFor(w io.Writer) output.Styles {
	return output.NewStyles(output.ResolveColorMode(settings().Color, output.IsTTY(w)))
}

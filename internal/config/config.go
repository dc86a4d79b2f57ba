package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Analyzer: sub-headings listed individually before the count-only summary.
	SectionPreviewLimit int `mapstructure:"section_preview_limit" yaml:"section_preview_limit"`
	// Content stub: prompt runes echoed back.
	PromptPreviewRunes int `mapstructure:"prompt_preview_runes" yaml:"prompt_preview_runes"`
	// Console color: auto | always | never
	Color         string `mapstructure:"color" yaml:"color"`
	NotebookLMURL string `mapstructure:"notebooklm_url" yaml:"notebooklm_url"`
}

// Defaults returns the built-in configuration.
func Defaults() *Global {
	return &Global{
		SectionPreviewLimit: 5,
		PromptPreviewRunes:  50,
		Color:               "auto",
		NotebookLMURL:       "https://notebooklm.google.com",
	}
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".kbtool"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.kbtool/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command flags are applied by callers.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("KBTOOL")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("section_preview_limit", d.SectionPreviewLimit)
	v.SetDefault("prompt_preview_runes", d.PromptPreviewRunes)
	v.SetDefault("color", d.Color)
	v.SetDefault("notebooklm_url", d.NotebookLMURL)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.SectionPreviewLimit <= 0 {
		c.SectionPreviewLimit = d.SectionPreviewLimit
	}
	if c.PromptPreviewRunes <= 0 {
		c.PromptPreviewRunes = d.PromptPreviewRunes
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		c.Color = d.Color
	}
	return &c, nil
}

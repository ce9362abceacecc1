package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds defaults that can be set once in a YAML file instead of
// repeated as flags. Flags explicitly set on the command line win.
type config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mode   string  `yaml:"mode"`
	Theme  string  `yaml:"theme"`
}

func defaultConfig() config {
	return config{Width: 1400, Height: 900, Mode: "grid", Theme: "whiteboard"}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scrawl",
		Short:         "Scrawl renders graph descriptions as hand-drawn SVG diagrams",
		Long:          "Scrawl lays out a JSON graph description (nodes, connections, zones)\nwith one of four deterministic strategies and renders it as a\nhand-drawn-style SVG diagram.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())

	return root
}

// resolve merges file config with flags; a flag set by the user on the
// command line overrides the file value.
func resolve(cmd *cobra.Command, cfg *config) {
	if f := cmd.Flags().Lookup("width"); f != nil && f.Changed {
		cfg.Width, _ = cmd.Flags().GetFloat64("width")
	}
	if f := cmd.Flags().Lookup("height"); f != nil && f.Changed {
		cfg.Height, _ = cmd.Flags().GetFloat64("height")
	}
	if f := cmd.Flags().Lookup("mode"); f != nil && f.Changed {
		cfg.Mode, _ = cmd.Flags().GetString("mode")
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme, _ = cmd.Flags().GetString("theme")
	}
}

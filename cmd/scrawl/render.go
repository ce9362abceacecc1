package main

import (
	"fmt"
	"io"
	"os"

	"cdr.dev/slog"
	"github.com/spf13/cobra"

	"github.com/scrawl-labs/scrawl/lib/log"
	"github.com/scrawl-labs/scrawl/scgraph"
	"github.com/scrawl-labs/scrawl/sclayouts"
	"github.com/scrawl-labs/scrawl/screnderers/scsvg"
	"github.com/scrawl-labs/scrawl/sctarget"
	"github.com/scrawl-labs/scrawl/scthemes"
)

func newRenderCmd() *cobra.Command {
	var (
		input      string
		output     string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a graph description to SVG",
		Long:  "Render reads a JSON graph description and writes an SVG diagram.\nAvailable themes:\n" + scthemes.CLIString(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			resolve(cmd, &cfg)

			mode, err := sclayouts.ParseMode(cfg.Mode)
			if err != nil {
				return err
			}
			theme, err := scthemes.Find(cfg.Theme)
			if err != nil {
				return err
			}

			g, err := readGraph(input)
			if err != nil {
				return err
			}

			d := sctarget.Compute(ctx, g, cfg.Width, cfg.Height, mode)

			out, closeOut, err := openOutput(output)
			if err != nil {
				return err
			}
			defer closeOut()

			if err := scsvg.Render(out, d, theme); err != nil {
				return fmt.Errorf("rendering: %w", err)
			}

			log.Info(ctx, "rendered diagram",
				slog.F("nodes", len(g.Nodes)),
				slog.F("connections", len(g.Connections)),
				slog.F("mode", string(mode)),
				slog.F("theme", theme.Name),
			)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "graph description JSON (default stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "SVG output path (default stdout)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config with default canvas/mode/theme")
	cmd.Flags().Float64P("width", "w", 1400, "canvas width")
	cmd.Flags().Float64P("height", "H", 900, "canvas height")
	cmd.Flags().String("mode", "grid", "layout mode: grid, vertical, horizontal, radial")
	cmd.Flags().String("theme", "whiteboard", "color theme")

	return cmd
}

func readGraph(path string) (*scgraph.Graph, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		r = f
	}
	return scgraph.Decode(r)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/scrawl-labs/scrawl/sclayouts"
)

func newLayoutCmd() *cobra.Command {
	var (
		input      string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute node positions and print them as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			resolve(cmd, &cfg)

			mode, err := sclayouts.ParseMode(cfg.Mode)
			if err != nil {
				return err
			}

			g, err := readGraph(input)
			if err != nil {
				return err
			}

			boxes := sclayouts.Layout(cmd.Context(), g, cfg.Width, cfg.Height, mode)

			type position struct {
				X      float64 `json:"x"`
				Y      float64 `json:"y"`
				Width  float64 `json:"width"`
				Height float64 `json:"height"`
			}
			positions := make(map[string]position, len(boxes))
			for id, box := range boxes {
				positions[id] = position{
					X:      box.TopLeft.X,
					Y:      box.TopLeft.Y,
					Width:  box.Width,
					Height: box.Height,
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(positions)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "graph description JSON (default stdin)")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config with default canvas/mode/theme")
	cmd.Flags().Float64P("width", "w", 1400, "canvas width")
	cmd.Flags().Float64P("height", "H", 900, "canvas height")
	cmd.Flags().String("mode", "grid", "layout mode: grid, vertical, horizontal, radial")

	return cmd
}

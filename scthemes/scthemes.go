// Package scthemes defines the named color palettes diagrams render
// with. A palette assigns one color per visual role; renderers never
// hardcode colors outside of it.
package scthemes

import (
	"fmt"
	"strings"
)

type Theme struct {
	Name   string  `json:"name"`
	Colors Palette `json:"colors"`
}

type Palette struct {
	Background string `json:"background"`
	Card       string `json:"card"`
	Border     string `json:"border"`

	Accent        string `json:"accent"`
	AccentAlt     string `json:"accentAlt"`
	GradientStart string `json:"gradientStart"`
	GradientEnd   string `json:"gradientEnd"`

	Text      string `json:"text"`
	TextMuted string `json:"textMuted"`

	Success string `json:"success"`
	Warning string `json:"warning"`
}

var Whiteboard = Theme{
	Name: "whiteboard",
	Colors: Palette{
		Background: "#FFFFFF",
		Card:       "#F8FAFC",
		Border:     "#E2E8F0",

		Accent:        "#2563EB",
		AccentAlt:     "#7C3AED",
		GradientStart: "#2563EB",
		GradientEnd:   "#7C3AED",

		Text:      "#1E293B",
		TextMuted: "#64748B",

		Success: "#16A34A",
		Warning: "#D97706",
	},
}

var Midnight = Theme{
	Name: "midnight",
	Colors: Palette{
		Background: "#0F172A",
		Card:       "#1E293B",
		Border:     "#334155",

		Accent:        "#3B82F6",
		AccentAlt:     "#8B5CF6",
		GradientStart: "#3B82F6",
		GradientEnd:   "#8B5CF6",

		Text:      "#F8FAFC",
		TextMuted: "#94A3B8",

		Success: "#22C55E",
		Warning: "#F59E0B",
	},
}

var Blueprint = Theme{
	Name: "blueprint",
	Colors: Palette{
		Background: "#0C4A6E",
		Card:       "#075985",
		Border:     "#38BDF8",

		Accent:        "#7DD3FC",
		AccentAlt:     "#BAE6FD",
		GradientStart: "#38BDF8",
		GradientEnd:   "#7DD3FC",

		Text:      "#F0F9FF",
		TextMuted: "#BAE6FD",

		Success: "#4ADE80",
		Warning: "#FBBF24",
	},
}

var Ember = Theme{
	Name: "ember",
	Colors: Palette{
		Background: "#18181B",
		Card:       "#27272A",
		Border:     "#3F3F46",

		Accent:        "#F97316",
		AccentAlt:     "#EC4899",
		GradientStart: "#F97316",
		GradientEnd:   "#EC4899",

		Text:      "#FAFAFA",
		TextMuted: "#A1A1AA",

		Success: "#4ADE80",
		Warning: "#FBBF24",
	},
}

var Catalog = []Theme{
	Whiteboard,
	Midnight,
	Blueprint,
	Ember,
}

// Default is the theme used when none is requested.
var Default = Whiteboard

// Find looks a theme up by name, case-insensitively.
func Find(name string) (Theme, error) {
	if name == "" {
		return Default, nil
	}
	for _, t := range Catalog {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// CLIString lists the catalog for help text.
func CLIString() string {
	var s strings.Builder
	for _, t := range Catalog {
		fmt.Fprintf(&s, "- %s\n", t.Name)
	}
	return s.String()
}

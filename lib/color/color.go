package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// Validate reports whether colorString parses as a CSS color.
func Validate(colorString string) error {
	_, err := csscolorparser.Parse(colorString)
	return err
}

// Darken decreases luminance by 10% and returns the hex form.
func Darken(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l-.1).Clamped().Hex(), nil
}

// Lighten increases luminance by 10% and returns the hex form.
func Lighten(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", err
	}
	h, s, l := colorful.Color{R: c.R, G: c.G, B: c.B}.Hsl()
	return colorful.Hsl(h, s, l+.1).Clamped().Hex(), nil
}

func Luminance(colorString string) (float64, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return 0, err
	}

	l := 0.299*c.R + 0.587*c.G + 0.114*c.B
	return l, nil
}

// LuminanceCategory buckets a color so renderers can pick a readable
// text color for it.
func LuminanceCategory(colorString string) (string, error) {
	l, err := Luminance(colorString)
	if err != nil {
		return "", err
	}

	switch {
	case l >= .88:
		return "bright", nil
	case l >= .55:
		return "normal", nil
	case l >= .30:
		return "dark", nil
	default:
		return "darker", nil
	}
}

// TextColorFor returns a foreground that stays readable on the given
// background fill.
func TextColorFor(background string) (string, error) {
	category, err := LuminanceCategory(background)
	if err != nil {
		return "", err
	}
	switch category {
	case "bright", "normal":
		return "#1E293B", nil
	default:
		return "#F8FAFC", nil
	}
}

func Hex(colorString string) (string, error) {
	c, err := csscolorparser.Parse(colorString)
	if err != nil {
		return "", fmt.Errorf("invalid color %q: %w", colorString, err)
	}
	return c.HexString(), nil
}

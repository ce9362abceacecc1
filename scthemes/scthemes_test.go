package scthemes

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrawl-labs/scrawl/lib/color"
)

func TestFind(t *testing.T) {
	theme, err := Find("midnight")
	require.NoError(t, err)
	assert.Equal(t, "midnight", theme.Name)

	theme, err = Find("MIDNIGHT")
	require.NoError(t, err)
	assert.Equal(t, "midnight", theme.Name)

	theme, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, Default.Name, theme.Name)

	_, err = Find("neon")
	assert.Error(t, err)
}

func TestCatalogColorsAreValid(t *testing.T) {
	for _, theme := range Catalog {
		v := reflect.ValueOf(theme.Colors)
		for i := 0; i < v.NumField(); i++ {
			field := v.Type().Field(i).Name
			value := v.Field(i).String()
			require.NotEmpty(t, value, "%s.%s", theme.Name, field)
			assert.NoError(t, color.Validate(value), "%s.%s", theme.Name, field)
		}
	}
}

func TestTextContrastsWithCard(t *testing.T) {
	for _, theme := range Catalog {
		cardLum, err := color.Luminance(theme.Colors.Card)
		require.NoError(t, err, theme.Name)
		textLum, err := color.Luminance(theme.Colors.Text)
		require.NoError(t, err, theme.Name)
		assert.Greater(t, mathAbs(cardLum-textLum), 0.3, theme.Name)
	}
}

func mathAbs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarken(t *testing.T) {
	darker, err := Darken("#FFFFFF")
	assert.NoError(t, err)
	assert.Equal(t, "#e6e6e6", darker)

	_, err = Darken("not-a-color")
	assert.Error(t, err)
}

func TestLuminanceCategory(t *testing.T) {
	for _, tc := range []struct {
		color string
		want  string
	}{
		{"#FFFFFF", "bright"},
		{"#0A0F25", "darker"},
		{"#9499AB", "normal"},
	} {
		category, err := LuminanceCategory(tc.color)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, category, tc.color)
	}
}

func TestTextColorFor(t *testing.T) {
	fg, err := TextColorFor("#FFFFFF")
	assert.NoError(t, err)
	assert.Equal(t, "#1E293B", fg)

	fg, err = TextColorFor("#111827")
	assert.NoError(t, err)
	assert.Equal(t, "#F8FAFC", fg)
}

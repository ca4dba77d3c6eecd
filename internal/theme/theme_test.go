package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			thm := GetTheme(name)
			assert.NotEmpty(t, thm.Accent)
			assert.NotEmpty(t, thm.Selected)
			assert.NotEmpty(t, thm.Partial)
		})
	}
	assert.Equal(t, Dracula(), GetTheme("unknown"))
}

func TestIsLight(t *testing.T) {
	assert.True(t, IsLight(DraculaLightName))
	assert.True(t, IsLight(SolarizedLightName))
	assert.False(t, IsLight(NordName))
}

func TestAvailableThemesSorted(t *testing.T) {
	assert.Equal(t, []string{
		DraculaName, DraculaLightName, GruvboxDarkName, NordName, SolarizedLightName,
	}, AvailableThemes())
}

// Package theme provides the colour palettes used to draw the tree.
package theme

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines all colours used by the browser.
type Theme struct {
	Accent    lipgloss.Color
	AccentFg  lipgloss.Color // text drawn on Accent
	Border    lipgloss.Color
	MutedFg   lipgloss.Color
	TextFg    lipgloss.Color
	Selected  lipgloss.Color // fully selected entries
	Partial   lipgloss.Color // directories with a selection below them
	Directory lipgloss.Color
	ErrorFg   lipgloss.Color
}

// Theme names.
const (
	DraculaName        = "dracula"
	DraculaLightName   = "dracula-light"
	NordName           = "nord"
	GruvboxDarkName    = "gruvbox-dark"
	SolarizedLightName = "solarized-light"
)

var themes = map[string]func() *Theme{
	DraculaName:        Dracula,
	DraculaLightName:   DraculaLight,
	NordName:           Nord,
	GruvboxDarkName:    GruvboxDark,
	SolarizedLightName: SolarizedLight,
}

// Dracula is the default dark theme.
func Dracula() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#BD93F9"),
		AccentFg:  lipgloss.Color("#282A36"),
		Border:    lipgloss.Color("#6272A4"),
		MutedFg:   lipgloss.Color("#6272A4"),
		TextFg:    lipgloss.Color("#F8F8F2"),
		Selected:  lipgloss.Color("#50FA7B"),
		Partial:   lipgloss.Color("#F1FA8C"),
		Directory: lipgloss.Color("#8BE9FD"),
		ErrorFg:   lipgloss.Color("#FF5555"),
	}
}

// DraculaLight is Dracula adapted for light backgrounds.
func DraculaLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#c6dbe5"),
		AccentFg:  lipgloss.Color("#24292F"),
		Border:    lipgloss.Color("#D0D7DE"),
		MutedFg:   lipgloss.Color("#6E7781"),
		TextFg:    lipgloss.Color("#24292F"),
		Selected:  lipgloss.Color("#059669"),
		Partial:   lipgloss.Color("#CA8A04"),
		Directory: lipgloss.Color("#0891B2"),
		ErrorFg:   lipgloss.Color("#DC2626"),
	}
}

// Nord returns the arctic blue palette.
func Nord() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#88C0D0"),
		AccentFg:  lipgloss.Color("#2E3440"),
		Border:    lipgloss.Color("#4C566A"),
		MutedFg:   lipgloss.Color("#81A1C1"),
		TextFg:    lipgloss.Color("#E5E9F0"),
		Selected:  lipgloss.Color("#A3BE8C"),
		Partial:   lipgloss.Color("#EBCB8B"),
		Directory: lipgloss.Color("#88C0D0"),
		ErrorFg:   lipgloss.Color("#BF616A"),
	}
}

// GruvboxDark returns the retro groove palette.
func GruvboxDark() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#FABD2F"),
		AccentFg:  lipgloss.Color("#282828"),
		Border:    lipgloss.Color("#504945"),
		MutedFg:   lipgloss.Color("#928374"),
		TextFg:    lipgloss.Color("#EBDBB2"),
		Selected:  lipgloss.Color("#B8BB26"),
		Partial:   lipgloss.Color("#FABD2F"),
		Directory: lipgloss.Color("#83A598"),
		ErrorFg:   lipgloss.Color("#FB4934"),
	}
}

// SolarizedLight returns the light Solarized palette.
func SolarizedLight() *Theme {
	return &Theme{
		Accent:    lipgloss.Color("#268BD2"),
		AccentFg:  lipgloss.Color("#FDF6E3"),
		Border:    lipgloss.Color("#93A1A1"),
		MutedFg:   lipgloss.Color("#93A1A1"),
		TextFg:    lipgloss.Color("#073642"),
		Selected:  lipgloss.Color("#859900"),
		Partial:   lipgloss.Color("#B58900"),
		Directory: lipgloss.Color("#2AA198"),
		ErrorFg:   lipgloss.Color("#DC322F"),
	}
}

// GetTheme returns the named theme, falling back to Dracula.
func GetTheme(name string) *Theme {
	if fn, ok := themes[name]; ok {
		return fn()
	}
	return Dracula()
}

// IsLight reports whether the named theme targets light backgrounds.
func IsLight(name string) bool {
	return name == DraculaLightName || name == SolarizedLightName
}

// Detect picks the default theme matching the terminal background.
func Detect() string {
	if lipgloss.HasDarkBackground() {
		return DraculaName
	}
	return DraculaLightName
}

// AvailableThemes returns the supported theme names, sorted.
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package viewstate

import "strings"

type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ParseMode accepts "dark" in any case; everything else is light.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeDark)) {
		return ModeDark
	}
	return ModeLight
}

func (m Mode) IsDark() bool {
	return m == ModeDark
}

// Palette holds hex colours shared by the HTML page and the terminal UI.
type Palette struct {
	Background string
	Surface    string
	Header     string
	HeaderText string
	Text       string
	TextMuted  string
	Border     string
	Primary    string
	Success    string
	Warning    string
	Error      string
	Chip       string
}

type Theme struct {
	Mode    Mode
	Palette Palette
}

// Light and Dark are the only two themes; they are built once.
var (
	Light = Theme{
		Mode: ModeLight,
		Palette: Palette{
			Background: "#ffffff",
			Surface:    "#ffffff",
			Header:     "#1976d2",
			HeaderText: "#ffffff",
			Text:       "#212121",
			TextMuted:  "#666666",
			Border:     "#e0e0e0",
			Primary:    "#1976d2",
			Success:    "#2e7d32",
			Warning:    "#ed6c02",
			Error:      "#d32f2f",
			Chip:       "#ebebeb",
		},
	}

	Dark = Theme{
		Mode: ModeDark,
		Palette: Palette{
			Background: "#121212",
			Surface:    "#1e1e1e",
			Header:     "#272727",
			HeaderText: "#ffffff",
			Text:       "#ffffff",
			TextMuted:  "#b3b3b3",
			Border:     "#515151",
			Primary:    "#90caf9",
			Success:    "#66bb6a",
			Warning:    "#ffa726",
			Error:      "#f44336",
			Chip:       "#383838",
		},
	}
)

func ThemeFor(m Mode) Theme {
	if m == ModeDark {
		return Dark
	}
	return Light
}

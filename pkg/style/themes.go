package style

import (
	"github.com/arthur-debert/qualia/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	PrimaryColor = lipgloss.AdaptiveColor{
		Light: "#1C71D8",
		Dark:  "#62A0EA",
	}

	SecondaryColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#26A269",
		Dark:  "#57E389",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#C01C28",
		Dark:  "#F66151",
	}

	WarningColor = lipgloss.AdaptiveColor{
		Light: "#C64600",
		Dark:  "#F8E45C",
	}

	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#241F31",
		Dark:  "#F6F5F4",
	}

	TextColor = lipgloss.AdaptiveColor{
		Light: "#3D3846",
		Dark:  "#DEDDDA",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#77767B",
		Dark:  "#9A9996",
	}

	BorderColor = lipgloss.AdaptiveColor{
		Light: "#DEDDDA",
		Dark:  "#3D3846",
	}
)

// accentColors are the swatch colors shown next to accent names
var accentColors = map[types.Accent]lipgloss.Color{
	types.AccentOrange:        "#E95420",
	types.AccentBark:          "#787859",
	types.AccentSage:          "#657B69",
	types.AccentOlive:         "#4B8501",
	types.AccentViridian:      "#03875B",
	types.AccentPrussianGreen: "#308280",
	types.AccentLightBlue:     "#0073E5",
	types.AccentBlue:          "#3584E4",
	types.AccentPurple:        "#7764D8",
	types.AccentMagenta:       "#B34CB3",
	types.AccentPink:          "#DA3450",
	types.AccentRed:           "#C7162B",
}

// AccentColor returns the swatch color of a, PrimaryColor's dark shade for
// unknown accents
func AccentColor(a types.Accent) lipgloss.TerminalColor {
	if c, ok := accentColors[a]; ok {
		return c
	}
	return PrimaryColor
}

// Swatch renders a colored block for a
func Swatch(a types.Accent) string {
	return lipgloss.NewStyle().Foreground(AccentColor(a)).Render("●")
}

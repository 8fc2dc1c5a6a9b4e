package shell

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Amber     = lipgloss.Color("#E5A00D")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
)

// styleSet bundles the render styles so color can be switched off wholesale.
type styleSet struct {
	Prompt  lipgloss.Style
	Echo    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Accent  lipgloss.Style
}

func newStyleSet(color bool) styleSet {
	if !color {
		plain := lipgloss.NewStyle()
		return styleSet{Prompt: plain, Echo: plain, Success: plain, Error: plain, Dim: plain, Accent: plain}
	}
	return styleSet{
		Prompt:  lipgloss.NewStyle().Foreground(Amber).Bold(true),
		Echo:    lipgloss.NewStyle().Foreground(LightGray),
		Success: lipgloss.NewStyle().Foreground(Green),
		Error:   lipgloss.NewStyle().Foreground(Red),
		Dim:     lipgloss.NewStyle().Foreground(DimGray),
		Accent:  lipgloss.NewStyle().Foreground(Amber),
	}
}

package chart

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired palette shared with the CLI tables.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

// palette holds the styles one render uses. A plain palette renders text
// without escape codes.
type palette struct {
	title    lipgloss.Style
	label    lipgloss.Style
	dim      lipgloss.Style
	bar      lipgloss.Style
	negative lipgloss.Style
	point    lipgloss.Style
	value    lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{plain, plain, plain, plain, plain, plain, plain}
	}
	return palette{
		title:    lipgloss.NewStyle().Foreground(colorHeader).Bold(true),
		label:    lipgloss.NewStyle().Foreground(colorFg),
		dim:      lipgloss.NewStyle().Foreground(colorDim),
		bar:      lipgloss.NewStyle().Foreground(colorBlue),
		negative: lipgloss.NewStyle().Foreground(colorRed),
		point:    lipgloss.NewStyle().Foreground(colorGreen),
		value:    lipgloss.NewStyle().Foreground(colorFg).Bold(true),
	}
}

package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer er lipgloss-rendereren for stdout. lipgloss v1 oppdager TrueColor,
// men bruker det ikke på alle terminaler uten eksplisitt SetColorProfile.
var Renderer = NewRenderer(os.Stdout, termenv.TrueColor)

func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// Styles er fargene brukt i terminalvisningen.
type Styles struct {
	Green lipgloss.Style
	Cyan  lipgloss.Style
	Red   lipgloss.Style
	White lipgloss.Style
	Dim   lipgloss.Style
	Card  lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Green: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Cyan:  r.NewStyle().Foreground(lipgloss.Color("14")),
		Red:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		White: r.NewStyle().Foreground(lipgloss.Color("15")),
		Dim:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("14")).
			Padding(0, 1),
	}
}

var (
	styles = NewStyles(Renderer)

	Green = styles.Green
	Cyan  = styles.Cyan
	Red   = styles.Red
	White = styles.White
	Dim   = styles.Dim
)

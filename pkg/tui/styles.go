package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dizitask/citadel/pkg/display"
)

// Palette shared by the browser and the one-shot commands.
var (
	ColorTitle     = lipgloss.Color("99")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorMuted     = lipgloss.Color("241")
	ColorHighlight = lipgloss.Color("212")
	ColorError     = lipgloss.Color("203")
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(ColorTitle).Bold(true).MarginBottom(1)
	HeaderStyle   = lipgloss.NewStyle().Foreground(ColorTitle).Bold(true)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel).Width(18)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue)
	MutedStyle    = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	ErrorStyle    = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	HelpStyle     = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
)

// LoadingState is the spinner shown while a screen loads.
type LoadingState struct {
	spinner spinner.Model
	message string
}

func NewLoadingState(message string) *LoadingState {
	return &LoadingState{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorHighlight)),
		),
		message: message,
	}
}

func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

func (l *LoadingState) Update(msg spinner.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

func (l *LoadingState) View() string {
	return fmt.Sprintf("\n %s %s\n", l.spinner.View(), l.message)
}

// RenderFields renders labelled fields one per line. Linked values show the
// link text.
func RenderFields(fields []display.Field) string {
	var b strings.Builder
	for _, f := range fields {
		value := f.Value
		if len(f.Links) > 0 {
			texts := make([]string, len(f.Links))
			for i, l := range f.Links {
				texts[i] = l.Text
			}
			value = strings.Join(texts, ", ")
		}

		b.WriteString(LabelStyle.Render(f.Label))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHouseRows renders the house list. The row at cursor is highlighted;
// pass -1 for none.
func RenderHouseRows(rows []display.HouseRow, cursor int) string {
	if len(rows) == 0 {
		return MutedStyle.Render("No houses.") + "\n"
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(rowLine(i == cursor, fmt.Sprintf("%s  %s",
			r.Name, MutedStyle.Render(r.Region+" · "+r.Words))))
	}

	return b.String()
}

// RenderHouse renders a house header followed by its sworn members.
func RenderHouse(name string, fields []display.Field, members []display.MemberSummary, cursor int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(name))
	b.WriteString("\n")
	b.WriteString(RenderFields(fields))
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Sworn Members"))
	b.WriteString("\n")

	if len(members) == 0 {
		b.WriteString(MutedStyle.Render("No sworn members."))
		b.WriteString("\n")
		return b.String()
	}

	for i, m := range members {
		b.WriteString(rowLine(i == cursor, fmt.Sprintf("%s  %s", m.Name,
			MutedStyle.Render(fmt.Sprintf("%s · born %s · died %s", m.Culture, m.Born, m.Died)))))
	}

	return b.String()
}

func RenderCharacter(name string, fields []display.Field) string {
	return TitleStyle.Render(name) + "\n" + RenderFields(fields)
}

func RenderError(message string) string {
	return ErrorStyle.Render(message) + "\n"
}

func rowLine(selected bool, text string) string {
	if selected {
		return SelectedStyle.Render("> ") + text + "\n"
	}

	return "  " + text + "\n"
}

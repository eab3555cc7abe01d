package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bio-traven/karyoploteR/pkg/genome"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// AssemblyListModel - Interactive assembly selection
// =============================================================================

// AssemblyListModel is the bubbletea model for interactive assembly
// selection.
type AssemblyListModel struct {
	Assemblies []genome.Assembly
	Cursor     int
	Selected   *genome.Assembly
	Height     int
	Offset     int
}

// NewAssemblyListModel creates a new assembly list model.
func NewAssemblyListModel(assemblies []genome.Assembly) AssemblyListModel {
	return AssemblyListModel{
		Assemblies: assemblies,
		Cursor:     0,
		Height:     15,
		Offset:     0,
	}
}

func (m AssemblyListModel) Init() tea.Cmd {
	return nil
}

func (m AssemblyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Assemblies)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			a := m.Assemblies[m.Cursor]
			m.Selected = &a
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m AssemblyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Assembly"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Assemblies) {
		end = len(m.Assemblies)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		a := m.Assemblies[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			a.Name,
			a.Description,
			fmt.Sprintf("%d", len(a.Chromosomes)),
			formatBases(totalLength(a)),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Assembly", "Description", "Chromosomes", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Assemblies) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Assemblies))))

	return b.String()
}

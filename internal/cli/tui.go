package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/badgegen/pkg/errors"
	"github.com/matzehuels/badgegen/pkg/shields"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// RegistryListModel - Interactive registry selection
// =============================================================================

// RegistryListModel is the bubbletea model for picking the registry of a
// dependency badge.
type RegistryListModel struct {
	Package    string
	Registries []shields.Registry
	Cursor     int
	Selected   *shields.Registry
}

// NewRegistryListModel creates a registry list for pkg with every known
// registry.
func NewRegistryListModel(pkg string) RegistryListModel {
	return RegistryListModel{Package: pkg, Registries: shields.Registries()}
}

func (m RegistryListModel) Init() tea.Cmd {
	return nil
}

func (m RegistryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Registries)-1 {
				m.Cursor++
			}
		case "enter":
			reg := m.Registries[m.Cursor]
			m.Selected = &reg
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m RegistryListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Registry"))
	if m.Package != "" {
		b.WriteString(listDimStyle.Render(" for " + m.Package))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, reg := range m.Registries {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-8s", cursor, reg.String())
		link := listDimStyle.Render(reg.PackageURL(m.Package))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("  " + link + "\n")
	}

	return b.String()
}

// runRegistryPicker shows the registry list on stderr and returns the choice.
func (c *CLI) runRegistryPicker(ctx context.Context, pkg string) (shields.Registry, error) {
	p := tea.NewProgram(NewRegistryListModel(pkg),
		tea.WithContext(ctx),
		tea.WithInput(os.Stdin),
		tea.WithOutput(c.errOut),
	)
	final, err := p.Run()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInternal, err, "registry picker")
	}
	m, ok := final.(RegistryListModel)
	if !ok || m.Selected == nil {
		return 0, errors.New(errors.ErrCodeInvalidRegistry, "no registry selected")
	}
	return *m.Selected, nil
}

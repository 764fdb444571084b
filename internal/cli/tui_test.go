package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/badgegen/pkg/shields"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m RegistryListModel, keys ...string) (RegistryListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(RegistryListModel)
	}
	return m, cmd
}

func TestRegistryListModelNavigation(t *testing.T) {
	m := NewRegistryListModel("serde")
	if len(m.Registries) != len(shields.Registries()) {
		t.Fatalf("expected all registries, got %d", len(m.Registries))
	}

	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"starts at top", nil, 0},
		{"down", []string{"down"}, 1},
		{"vim keys", []string{"j", "j", "k"}, 1},
		{"clamped at top", []string{"up", "k"}, 0},
		{"clamped at bottom", []string{"down", "down", "down", "down", "down", "down", "down", "down"}, len(m.Registries) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := press(m, tt.keys...)
			if got.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestRegistryListModelSelect(t *testing.T) {
	m, cmd := press(NewRegistryListModel("serde"), "down", "enter")
	if m.Selected == nil {
		t.Fatal("expected a selection")
	}
	if *m.Selected != m.Registries[1] {
		t.Errorf("Selected = %v, want %v", *m.Selected, m.Registries[1])
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestRegistryListModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m, cmd := press(NewRegistryListModel("serde"), k)
		if m.Selected != nil {
			t.Errorf("%s: expected no selection", k)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command", k)
		}
	}
}

func TestRegistryListModelView(t *testing.T) {
	view := NewRegistryListModel("serde").View()

	if !strings.Contains(view, "Select Registry") {
		t.Error("view should have a title")
	}
	for _, reg := range shields.Registries() {
		if !strings.Contains(view, reg.PackageURL("serde")) {
			t.Errorf("view missing %s", reg.PackageURL("serde"))
		}
	}
}

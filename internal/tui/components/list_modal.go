package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ingdavann/bookverse-project/internal/tui/styles"
)

// ListModal collects a name and optional description for a new reading
// list.
type ListModal struct {
	visible     bool
	name        textinput.Model
	description textinput.Model
	focusDesc   bool
}

// NewListModal creates a new list creation modal
func NewListModal() ListModal {
	name := textinput.New()
	name.Placeholder = "List name"
	name.CharLimit = 50
	name.Width = 30
	name.Prompt = ""
	name.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	name.PlaceholderStyle = styles.DimStyle

	desc := textinput.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 100
	desc.Width = 30
	desc.Prompt = ""
	desc.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	desc.PlaceholderStyle = styles.DimStyle

	return ListModal{name: name, description: desc}
}

// Show displays the modal with cleared inputs
func (m *ListModal) Show() {
	m.visible = true
	m.focusDesc = false
	m.name.SetValue("")
	m.description.SetValue("")
	m.name.Focus()
	m.description.Blur()
}

// Hide dismisses the modal
func (m *ListModal) Hide() {
	m.visible = false
	m.name.Blur()
	m.description.Blur()
}

// IsVisible returns whether the modal is shown
func (m ListModal) IsVisible() bool { return m.visible }

// Name returns the entered list name
func (m ListModal) Name() string { return m.name.Value() }

// Description returns the entered description
func (m ListModal) Description() string { return m.description.Value() }

// Update handles input events, returns (modal, cmd, submitted)
func (m ListModal) Update(msg tea.Msg) (ListModal, tea.Cmd, bool) {
	if !m.visible {
		return m, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, nil, true
		case "esc":
			m.Hide()
			return m, nil, false
		case "tab", "shift+tab":
			m.focusDesc = !m.focusDesc
			if m.focusDesc {
				m.name.Blur()
				m.description.Focus()
			} else {
				m.description.Blur()
				m.name.Focus()
			}
			return m, nil, false
		}
	}

	var cmd tea.Cmd
	if m.focusDesc {
		m.description, cmd = m.description.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return m, cmd, false
}

// View renders the modal
func (m ListModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 36

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.White).
		Bold(true).
		Width(modalWidth).
		Background(styles.SlateDark)

	fieldStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Background(styles.SlateDark)

	hint := styles.DimStyle.
		Width(modalWidth).
		Background(styles.SlateDark).
		Render("tab: next field · enter: create · esc: cancel")

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("New Reading List"),
		fieldStyle.Render(m.name.View()),
		fieldStyle.Render(m.description.View()),
		hint,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Violet).
		Background(styles.SlateDark).
		Padding(1, 2).
		Render(content)
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lotayaai/lotaya-io/internal/cli/render"
	"github.com/lotayaai/lotaya-io/internal/modal"
	"github.com/lotayaai/lotaya-io/internal/tools"
)

// View renders the tool list, with the active modal drawn over it.
func (m Model) View() string {
	s, ok := m.ctrl.Active()
	if !ok {
		return m.browseView()
	}

	var body string
	switch s.Phase {
	case modal.PhaseOpening, modal.PhaseClosing:
		body = titleStyle.Render(s.Tool.Name) + "\n\n" + dimStyle.Render("…")
	default:
		body = m.modalView(s)
	}

	box := boxStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) browseView() string {
	var sb strings.Builder
	sb.WriteString(m.tools.View())
	sb.WriteString("\n")
	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keyMap.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keyMap.ShortHelp()))
	}
	return sb.String()
}

func (m Model) modalView(s modal.Session) string {
	snap := s.Form.Snapshot()

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(s.Tool.Name))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(s.Tool.Description))
	sb.WriteString("\n\n")

	if snap.Status == tools.StatusSucceeded {
		sb.WriteString(okStyle.Render("✓ Done"))
		sb.WriteString("\n\n")
		sb.WriteString(render.Text(s.Tool.ID, snap.Result))
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("t try another • esc close"))
		return sb.String()
	}

	for i, f := range m.fields {
		label := labelStyle.Render(f.Label)
		if i == m.focus {
			label = focusStyle.Render("› " + f.Label)
		}
		sb.WriteString(label)
		sb.WriteString("\n")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	switch snap.Status {
	case tools.StatusSubmitting:
		sb.WriteString(m.spinner.View() + " Generating...")
	case tools.StatusFailed:
		sb.WriteString(errStyle.Render(snap.ErrorMessage))
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("enter/ctrl+s retry • esc close"))
	default:
		sb.WriteString(dimStyle.Render("tab next field • ctrl+s generate • esc close"))
	}
	return sb.String()
}

package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dreamteacher/internal/ui/theme"
)

// MultiChoice is a single-question option picker. Chosen is -1 until an
// option is picked.
type MultiChoice struct {
	Question string
	Options  []string
	Cursor   int
	Chosen   int
}

// NewMultiChoice creates a picker with a preselected answer, or -1.
func NewMultiChoice(question string, options []string, chosen int) MultiChoice {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return MultiChoice{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Update moves the cursor and picks on Enter or a number key. picked is
// true when an option was chosen by this message.
func (m MultiChoice) Update(msg tea.Msg) (mc MultiChoice, picked bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", "space":
		m.Chosen = m.Cursor
		return m, true
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(m.Options) {
			m.Cursor = int(key[0] - '1')
			m.Chosen = m.Cursor
			return m, true
		}
	}
	return m, false
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == m.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d)  %s", prefix, mark, i+1, opt)

		switch {
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		case i == m.Chosen:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

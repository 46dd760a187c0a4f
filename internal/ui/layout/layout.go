// Package layout renders the frame around every screen.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/dreamteacher/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "✦ Dream Teacher"

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Your mentor needs a bit more room.\n\nPlease resize to at least %d x %d\n(currently %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

func bar(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}

// RenderHeader renders the top bar: brand on the left, title centered and
// status on the right. The title is dropped when the three do not fit.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  " + brand)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	inner := max(0, width-4)
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	if lw+cw+rw+2 > inner {
		gap := max(1, inner-lw-rw)
		return bar(left+strings.Repeat(" ", gap)+right, width)
	}

	leftGap := max(1, (inner-cw)/2-lw)
	rightGap := max(1, inner-lw-leftGap-cw-rw)
	return bar(left+strings.Repeat(" ", leftGap)+center+strings.Repeat(" ", rightGap)+right, width)
}

// RenderFooter renders key hints, keeping as many as fit on one line.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	inner := width - 4
	content := " "
	for _, h := range hints {
		part := "  " + keyStyle.Render(h.Key) + " " + descStyle.Render(h.Description)
		if lipgloss.Width(content+part) > inner {
			break
		}
		content += part
	}
	return bar(content, width)
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	body := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)
	return header + "\n" + body + "\n" + footer
}

// RenderStepper renders a one-line progress trail of step labels with the
// current one highlighted. Steps before current are marked done.
func RenderStepper(labels []string, current, width int) string {
	parts := make([]string, 0, len(labels))
	for i, l := range labels {
		switch {
		case i < current:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+l))
		case i == current:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("● "+l))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ "+l))
		}
	}
	sep := lipgloss.NewStyle().Foreground(theme.Border).Render(" › ")
	line := strings.Join(parts, sep)
	if lipgloss.Width(line) > width && current >= 0 && current < len(labels) {
		line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(fmt.Sprintf("Step %d/%d: %s", current+1, len(labels), labels[current]))
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line)
}

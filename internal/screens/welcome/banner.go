package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/dreamteacher/internal/ui/theme"
)

const bannerArt = `
 ╺┳┓┏━┓┏━╸┏━┓┏┳┓   ╺┳╸┏━╸┏━┓┏━╸╻ ╻┏━╸┏━┓
  ┃┃┣┳┛┣╸ ┣━┫┃┃┃    ┃ ┣╸ ┣━┫┃  ┣━┫┣╸ ┣┳┛
 ╺┻┛╹┗╸┗━╸╹ ╹╹ ╹    ╹ ┗━╸╹ ╹┗━╸╹ ╹┗━╸╹┗╸`

const bannerCompact = "D R E A M   T E A C H E R"

// RenderBanner returns the title banner in the primary color, or a compact
// line for terminals narrower than 44 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

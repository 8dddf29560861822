package runner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var reportBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

var reportTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

var (
	reportLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	reportGoodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	reportBadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// outcome describes how a run ended.
func (s Summary) outcome() (string, bool) {
	switch {
	case s.Cleared:
		return "field cleared", true
	case s.BallLost:
		return fmt.Sprintf("ball lost at tick %d", s.LostAtTick), false
	case s.Interrupted:
		return "interrupted", false
	default:
		return "tick limit reached", true
	}
}

// rows returns the label/value pairs shown in a report.
func (s Summary) rows() [][2]string {
	return [][2]string{
		{"run", s.RunID},
		{"level", s.Level},
		{"ticks", fmt.Sprintf("%d (%.3fs simulated)", s.Ticks, s.Elapsed)},
		{"paddle hits", fmt.Sprintf("%d", s.PaddleHits)},
		{"wall bounces", fmt.Sprintf("%d", s.WallHits)},
		{"blocks", fmt.Sprintf("%d destroyed, %d left", s.BlocksDestroyed, s.BlocksLeft)},
		{"state hash", fmt.Sprintf("%016x", s.Hash)},
	}
}

// RenderSummary formats a summary for the terminal. Plain output has no
// escape sequences so it can be piped and diffed.
func RenderSummary(s Summary, styled bool) string {
	rows := s.rows()
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}

	outcome, good := s.outcome()

	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteRune('\n')
		}
		label := fmt.Sprintf("%-*s", width, r[0])
		if styled {
			label = reportLabelStyle.Render(label)
		}
		sb.WriteString(label)
		sb.WriteString("  ")
		sb.WriteString(r[1])
	}

	if !styled {
		return fmt.Sprintf("result  %s\n%s\n", outcome, sb.String())
	}

	outcomeStyle := reportBadStyle
	if good {
		outcomeStyle = reportGoodStyle
	}
	title := reportTitleStyle.Render("breakout") + "  " + outcomeStyle.Render(outcome)
	return reportBoxStyle.Render(title+"\n\n"+sb.String()) + "\n"
}

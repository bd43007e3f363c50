package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/railz/internal/quiz"
	"github.com/abhisek/railz/internal/scoring"
	"github.com/abhisek/railz/internal/screen"
	"github.com/abhisek/railz/internal/ui/components"
	"github.com/abhisek/railz/internal/ui/layout"
	"github.com/abhisek/railz/internal/ui/theme"
)

// SummaryScreen displays the committed session results.
type SummaryScreen struct {
	summary *quiz.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *quiz.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	// Title.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	// Duration.
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	// Stats line.
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d",
		sum.TotalQuestions, sum.TotalCorrect)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	// Accuracy bar.
	bar := components.NewProgressBar("Accuracy", sum.Accuracy(), true, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Tutorials divider.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Tutorials")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-tutorial results.
	for _, tr := range sum.Tutorials {
		scoreStr := fmt.Sprintf("score %d", tr.ScoreAfter)
		if tr.ScoreBefore != nil && *tr.ScoreBefore != tr.ScoreAfter {
			scoreStr = fmt.Sprintf("score %d > %d", *tr.ScoreBefore, tr.ScoreAfter)
		}

		stateStr := string(tr.ToState)
		if tr.FromState != tr.ToState {
			stateStr = fmt.Sprintf("%s > %s", tr.FromState, tr.ToState)
		}

		line := fmt.Sprintf("  %s (%s)    %d/%d correct    %s    ",
			tr.Title, tr.Category, tr.Correct, tr.Attempted, scoreStr)

		styled := lipgloss.NewStyle().Foreground(theme.Text).Render(line) +
			stateStyle(tr.ToState).Render(stateStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, styled))
		b.WriteString("\n")
	}

	return b.String()
}

// stateStyle maps an understanding state to its theme style.
func stateStyle(st scoring.State) lipgloss.Style {
	switch st {
	case scoring.StateSolid:
		return theme.Solid
	case scoring.StateRusty:
		return theme.Rusty
	case scoring.StateLearning:
		return theme.Learning
	default:
		return theme.Unread
	}
}

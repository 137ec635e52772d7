package status

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/bnema/nlu-trainer/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// StaleAfter flags active sessions that have not moved for that long.
	StaleAfter time.Duration
}

const barWidth = 24

func renderView(groups []botGroup, total int, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("NLU Trainings"),
		s.header.Render(fmt.Sprintf("bots: %d  trainings: %d", len(groups), total)),
	}

	if total == 0 {
		lines = append(lines, s.empty.Render("No trainings recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, group := range groups {
		lines = append(lines, s.section.Render(renderBot(group, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type botGroup struct {
	botID    domain.BotID
	sessions []domain.TrainingSession
}

func groupByBot(sessions []domain.TrainingSession) []botGroup {
	index := map[domain.BotID]int{}
	var groups []botGroup
	for _, session := range sessions {
		i, ok := index[session.ID.BotID]
		if !ok {
			i = len(groups)
			index[session.ID.BotID] = i
			groups = append(groups, botGroup{botID: session.ID.BotID})
		}
		groups[i].sessions = append(groups[i].sessions, session)
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].botID < groups[j].botID })
	for _, group := range groups {
		sort.SliceStable(group.sessions, func(i, j int) bool {
			return group.sessions[i].ID.Language < group.sessions[j].ID.Language
		})
	}
	return groups
}

func renderBot(group botGroup, opts RenderOptions, s styles) string {
	parts := []string{s.bot.Render(fmt.Sprintf("Bot: %s", group.botID))}
	for _, session := range group.sessions {
		parts = append(parts, sessionLine(session, opts, s))
		if session.Status == domain.TrainingStatusErrored && session.Error != "" {
			parts = append(parts, s.warning.Render("  error: "+session.Error))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func sessionLine(session domain.TrainingSession, opts RenderOptions, s styles) string {
	label := s.language.Render(fmt.Sprintf("%-6s", session.ID.Language))
	status := s.status(session.Status).Render(fmt.Sprintf("%-14s", session.Status))
	bar := renderProgressBar(session.Progress, barWidth, s)
	percent := s.detail.Render(fmt.Sprintf("%3.0f%%", clampRatio(session.Progress)*100))

	parts := []string{label, " ", status, " ", bar, " ", percent}
	if session.ModelID != "" {
		parts = append(parts, " ", s.meta.Render(string(session.ModelID)))
	}
	if updated := formatUpdated(session.UpdatedAt, opts.Now); updated != "" {
		parts = append(parts, " ", s.meta.Render("("+updated+")"))
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	if isStale(session, opts) {
		line += " " + s.warning.Render("[stale]")
	}
	return line
}

func isStale(session domain.TrainingSession, opts RenderOptions) bool {
	if opts.Now.IsZero() || opts.StaleAfter <= 0 || session.UpdatedAt.IsZero() {
		return false
	}
	if !session.Status.Active() {
		return false
	}
	return opts.Now.Sub(session.UpdatedAt) > opts.StaleAfter
}

func renderProgressBar(progress float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampRatio(progress)))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampRatio(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func formatUpdated(updatedAt, now time.Time) string {
	if updatedAt.IsZero() {
		return ""
	}
	if now.IsZero() {
		return "updated " + updatedAt.Format(time.RFC3339)
	}

	elapsed := now.Sub(updatedAt)
	switch {
	case elapsed < time.Minute:
		return "updated just now"
	case elapsed < time.Hour:
		return "updated " + plural(int(elapsed.Minutes()), "minute") + " ago"
	case elapsed < 24*time.Hour:
		return "updated " + plural(int(elapsed.Hours()), "hour") + " ago"
	default:
		return "updated " + updatedAt.Format("15:04 on 02 Jan")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

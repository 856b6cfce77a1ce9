package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lane-runner/internal/games/runner"
)

const powerBarWidth = 10

var (
	hudStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))
	hudLabelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("229")).
			Bold(true)
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3).
			Align(lipgloss.Center)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// renderHUD draws the one-line status bar.
func (m GameModel) renderHUD(s runner.Snapshot) string {
	accent := lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color(s.Character.AccentHex)).
		Bold(true)

	field := func(label, value string) string {
		return hudLabelStyle.Render(" "+label+" ") + hudValueStyle.Render(value)
	}

	parts := []string{
		accent.Render(" " + s.Character.Name + " "),
		field("SCORE", fmt.Sprintf("%d", int(s.Stats.Score))),
		field("BEST", fmt.Sprintf("%d", int(s.Stats.HighScore))),
		field("COINS", fmt.Sprintf("%d", s.Stats.Coins)),
		field("MULT", fmt.Sprintf("x%.1f", s.Stats.Multiplier)),
		field("SPD", fmt.Sprintf("%.1f", s.Stats.Speed)),
		field(s.Character.Power.Name, powerBar(s.Player.Power)),
	}
	if m.events.power != "" && time.Since(m.events.powerAt) < powerBanner {
		parts = append(parts, accent.Render(" "+strings.ToUpper(m.events.power)+"! "))
	}

	line := strings.Join(parts, hudStyle.Render(" "))
	return hudStyle.Width(m.screen.Width()).MaxWidth(m.screen.Width()).Render(line)
}

// powerBar renders the power charge with its state.
func powerBar(ps runner.PowerState) string {
	filled := int(ps.Charge()*powerBarWidth + 0.5)
	bar := strings.Repeat("■", filled) + strings.Repeat("·", powerBarWidth-filled)
	switch {
	case ps.Active:
		return bar + " ON"
	case ps.Cooldown:
		return bar + fmt.Sprintf(" %ds", int(ps.CoolLeft/1000)+1)
	default:
		return bar + " READY"
	}
}

func (m GameModel) gameOverBox(s runner.Snapshot) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")).Render("GAME OVER")

	score := s.Stats.Score
	coins := s.Stats.Coins
	if m.events.over {
		score, coins = m.events.overScore, m.events.overCoins
	}

	lines := []string{title, ""}
	if m.events.quip != "" {
		lines = append(lines, lipgloss.NewStyle().Italic(true).Render(m.events.quip), "")
	}
	lines = append(lines,
		fmt.Sprintf("Score %d   Coins %d   Distance %dm", int(score), coins, s.Stats.Distance),
	)
	if score > 0 && score >= s.Stats.HighScore {
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Render("NEW HIGH SCORE"))
	} else {
		lines = append(lines, fmt.Sprintf("Best %d", int(s.Stats.HighScore)))
	}
	if m.submitErr != nil {
		lines = append(lines, dimStyle.Render("run not saved"))
	}
	lines = append(lines, "", dimStyle.Render("R: Run again  |  C: Characters  |  Q: Quit"))

	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func pausedBox() string {
	return overlayStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).Render("PAUSED"),
		"",
		dimStyle.Render("P: Resume  |  C: Characters  |  Q: Quit"),
	))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// scoreScale is the score axis used for gauge bars. It matches the default
// weight total; scores above it clip the bar, not the number.
const scoreScale = 100.0

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Title bar
	sections = append(sections, m.renderTitleBar())

	// Error display
	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Summary stats
	if m.stats != nil {
		sections = append(sections, m.renderStats())
	}

	// Latest assessment gauge
	if len(m.records) > 0 {
		sections = append(sections, m.renderLatest())
	}

	// Recent records table
	if len(m.records) > 0 {
		sections = append(sections, m.renderRecords())
	}

	// Footer
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("ROADGUARD DASHBOARD")

	refreshInfo := fmt.Sprintf("↻ %s", m.config.RefreshInterval)
	if m.loading {
		refreshInfo = "↻ loading..."
	}

	help := helpStyle.Render("q:quit r:refresh ↑↓:scroll")

	// Calculate spacing
	rightPart := fmt.Sprintf("%s | %s", refreshInfo, help)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(rightPart))
}

func (m Model) renderStats() string {
	s := m.stats

	fatiguedPct := 0.0
	if s.Total > 0 {
		fatiguedPct = float64(s.Fatigued) / float64(s.Total) * 100
	}

	line := fmt.Sprintf("  %s %s   %s %s   %s %s   %s %s",
		labelStyle.Render("Assessments:"), valueStyle.Render(fmt.Sprintf("%d", s.Total)),
		labelStyle.Render("Alert:"), alertStyle.Render(fmt.Sprintf("%d", s.Alert)),
		labelStyle.Render("Fatigued:"), fatiguedStyle.Render(fmt.Sprintf("%d (%.0f%%)", s.Fatigued, fatiguedPct)),
		labelStyle.Render("Avg score:"), valueStyle.Render(fmt.Sprintf("%.1f", s.AvgScore)),
	)

	return line
}

func (m Model) renderLatest() string {
	latest := m.records[len(m.records)-1]

	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Latest Assessment"))

	driver := latest.Driver
	if driver == "" {
		driver = "(unnamed)"
	}

	bar := m.renderScoreBar(latest.Score, 30)
	verdict := alertStyle.Render(latest.Label)
	if latest.Label == "fatigued" {
		verdict = fatiguedStyle.Render(latest.Label)
	}

	lines = append(lines, fmt.Sprintf("  %s  %s", labelStyle.Render("Driver:"), valueStyle.Render(driver)))
	lines = append(lines, fmt.Sprintf("  %s   %s", labelStyle.Render("Score:"), bar))
	lines = append(lines, fmt.Sprintf("  %s %s %s",
		labelStyle.Render("Verdict:"), verdict,
		helpStyle.Render(fmt.Sprintf("(p=%.2f, risk %s)", latest.Probability, latest.Risk))))

	return strings.Join(lines, "\n")
}

func (m Model) renderScoreBar(score float64, width int) string {
	fraction := score / scoreScale
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	color := scoreColor(fraction)
	filledBar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyBar := progressBarEmptyStyle.Render(strings.Repeat("░", width-filled))

	return fmt.Sprintf("[%s%s] %5.1f", filledBar, emptyBar, score)
}

func (m Model) renderRecords() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Recent Assessments"))

	// Header
	header := fmt.Sprintf("  %-8s │ %-12s │ %6s │ %-8s │ %-8s",
		"Time", "Driver", "Score", "Label", "Risk")
	lines = append(lines, tableHeaderStyle.Render(header))

	// Newest first
	rows := make([]RecordData, len(m.records))
	for i, r := range m.records {
		rows[len(m.records)-1-i] = r
	}

	// Calculate visible rows based on table offset
	maxVisible := 8
	start := m.tableOffset
	if start >= len(rows) {
		start = 0
	}
	end := start + maxVisible
	if end > len(rows) {
		end = len(rows)
	}

	for _, r := range rows[start:end] {
		driver := r.Driver
		if driver == "" {
			driver = "-"
		}
		if len(driver) > 12 {
			driver = driver[:9] + "..."
		}

		label := alertStyle.Render(fmt.Sprintf("%-8s", r.Label))
		if r.Label == "fatigued" {
			label = fatiguedStyle.Render(fmt.Sprintf("%-8s", r.Label))
		}

		risk := lipgloss.NewStyle().Foreground(riskColor(r.Risk)).Render(fmt.Sprintf("%-8s", r.Risk))

		row := fmt.Sprintf("  %-8s │ %-12s │ %6.1f │ %s │ %s",
			r.Timestamp.Local().Format("15:04:05"), driver, r.Score, label, risk)
		lines = append(lines, tableCellStyle.Render(row))
	}

	if len(rows) > maxVisible {
		scrollInfo := fmt.Sprintf("  [%d-%d of %d assessments]", start+1, end, len(rows))
		lines = append(lines, helpStyle.Render(scrollInfo))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	if m.status == nil {
		return ""
	}

	sys := m.status.System
	updated := m.lastUpdated.Format("15:04:05")

	return helpStyle.Render(fmt.Sprintf(
		"  %s %s │ CPU: %.1f%% │ Mem: %.1f%% │ RSS: %.0f MB │ Updated: %s",
		m.status.Name,
		m.status.Version,
		sys.CPUPercent,
		sys.MemPercent,
		sys.ProcessRSSMB,
		updated,
	))
}

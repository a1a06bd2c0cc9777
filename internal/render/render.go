// Package render formats records into display rows for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kaepora/tracknote/pkg/core"
)

var (
	placeStyle  = lipgloss.NewStyle().Background(lipgloss.Color("6")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	checkStyle  = lipgloss.NewStyle().Background(lipgloss.Color("5")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	itemStyle   = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Padding(0, 1)
	barrenStyle = lipgloss.NewStyle().Background(lipgloss.Color("1")).Foreground(lipgloss.Color("15")).Padding(0, 1)
	rewardStyle = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")).Padding(0, 1)

	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Row renders one record as a single display line. CategoryNone records
// render as an empty string.
func Row(rec core.Record) string {
	if rec.Category == core.CategoryNone {
		return ""
	}

	var cells []string
	if rec.Deletion {
		cells = append(cells, "Delete:")
	}

	switch rec.Category {
	case core.CategoryGoodLocation, core.CategoryBadLocation:
		cells = append(cells, placeStyle.Render(rec.Place), itemCell(rec.Item))
	case core.CategorySkullReward:
		cells = append(cells, rewardStyle.Render("HoS"), checkStyle.Render(rec.Check), itemCell(rec.Item))
	default:
		cells = append(cells, placeStyle.Render(rec.Place), checkStyle.Render(rec.Check), itemCell(rec.Item))
	}

	if rec.Annotation != "" {
		cells = append(cells, bullets(rec.Annotation))
	}
	if s := stars(rec.Count); s != "" {
		cells = append(cells, s)
	}
	return strings.Join(cells, " ")
}

// Group renders an optional header followed by one row per record.
// Empty groups render nothing.
func Group(title string, recs []core.Record) string {
	if len(recs) == 0 {
		return ""
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(headerStyle.Render(title))
		b.WriteString("\n")
	}
	for _, rec := range recs {
		b.WriteString(Row(rec))
		b.WriteString("\n")
	}
	return b.String()
}

func itemCell(item string) string {
	if item == core.LabelBarren {
		return barrenStyle.Render(item)
	}
	return itemStyle.Render(item)
}

// bullets turns a "*"-separated annotation into inline bullet points.
func bullets(annotation string) string {
	parts := strings.Split(annotation, "*")
	for i, p := range parts {
		parts[i] = "• " + strings.TrimSpace(p)
	}
	return strings.Join(parts, " ")
}

// stars marks repeat sightings: every extra pair of submissions earns a
// full star, an odd leftover shows as an outline star.
func stars(count int) string {
	if count <= 1 {
		return ""
	}
	extra := count - 1
	s := strings.Repeat("★", extra/2)
	if extra%2 != 0 {
		s += "☆"
	}
	return s
}

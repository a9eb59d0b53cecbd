// Package summary renders the pre-rewrite checksum diff shown at the
// confirmation gate.
package summary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/ui/style"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	slotStyle    = lipgloss.NewStyle().Foreground(style.Slate)
	changedStyle = lipgloss.NewStyle().Foreground(style.Yellow)
	sameStyle    = lipgloss.NewStyle().Foreground(style.Green)
	skipStyle    = lipgloss.NewStyle().Foreground(style.Slate)
	valueStyle   = lipgloss.NewStyle().Foreground(style.Blue)
)

// shortLen keeps 64-char digests from blowing out the table; enough hex to
// eyeball a change.
const shortLen = 16

// Render produces the per-slot diff table as a string.
func Render(diffs []domain.ChecksumDiff) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Checksum changes") + "\n")

	for _, d := range diffs {
		label := slotStyle.Render(fmt.Sprintf("  %d %-6s", d.Slot, domain.SlotLabel(d.Slot)))

		switch {
		case d.Computed == "":
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				label,
				skipStyle.Render(style.Dot),
				skipStyle.Render(short(d.Existing)+" (kept, nothing fetched)")))
		case d.Changed():
			b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
				label,
				changedStyle.Render(style.Warning),
				valueStyle.Render(short(d.Existing)),
				changedStyle.Render(style.Arrow),
				valueStyle.Render(short(d.Computed))))
		default:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				label,
				sameStyle.Render(style.Check),
				valueStyle.Render(short(d.Computed)+" (unchanged)")))
		}
	}
	return b.String()
}

func short(v string) string {
	if v == "" {
		return "(empty)"
	}
	if len(v) <= shortLen {
		return v
	}
	return v[:shortLen] + "…"
}

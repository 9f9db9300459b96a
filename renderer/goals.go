package renderer

import (
	"fmt"
	"strings"

	"github.com/nestegg-app/nestegg"
)

// GoalsMarkdown renders goal progress, one row per goal.
func GoalsMarkdown(report []nestegg.GoalProgress, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Goals\n\n")

	if len(report) == 0 {
		fmt.Fprintln(&b, "No goals yet. Create one with `negg goal`.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Goal | Current | Target | Progress |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, g := range report {
		fmt.Fprintf(&b, "| %s | %s | %s | %s %s |\n",
			g.Name,
			money(g.CurrentAmount, currency),
			money(g.TargetAmount, currency),
			progressBar(g.Progress),
			g.Progress,
		)
	}
	return b.String()
}

// progressBar draws a ten-step bar. Progress is clamped to 0-100: a goal
// tracking a negative net wealth reports negative progress and renders an
// empty bar.
func progressBar(p nestegg.Percent) string {
	filled := int(p) / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

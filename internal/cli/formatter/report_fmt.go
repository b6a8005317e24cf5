package formatter

import (
	"fmt"
	"strings"

	"github.com/ostrella/clockwise/internal/aggregate"
)

const hoursBarWidth = 24

// FormatHoursReport renders a per-weekday worked/scheduled breakdown with
// a bar chart and the overall percentages.
func FormatHoursReport(title string, r *aggregate.Result) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(title))
	b.WriteString("\n\n")

	maxScheduled := 0.0
	for _, d := range r.Days {
		if d.Scheduled > maxScheduled {
			maxScheduled = d.Scheduled
		}
	}

	var totalWorked, totalScheduled float64
	for _, d := range r.Days {
		totalWorked += d.Worked
		totalScheduled += d.Scheduled
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			Dim(d.Day.Abbrev()),
			RenderHoursBar(d.Worked, d.Scheduled, maxScheduled, hoursBarWidth),
			fmt.Sprintf("%5.1fh / %5.1fh", d.Worked, d.Scheduled)))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %.1fh of %.1fh\n", Dim("total  "), totalWorked, totalScheduled))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("worked "),
		RenderProgress(float64(r.WorkedPercent)/100, hoursBarWidth)))
	b.WriteString(fmt.Sprintf("%s %d%%\n", Dim("missed "), r.NotWorkedPercent))
	return b.String()
}

package formatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ostrella/clockwise/internal/service"
	"github.com/ostrella/clockwise/internal/shiftwin"
)

// FormatStatus renders a worker's attendance status for the terminal.
func FormatStatus(st *service.AttendanceStatus, display *time.Location) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(st.Worker.Name))
	b.WriteString("  ")
	b.WriteString(StatePill(st.State))
	b.WriteString("\n\n")

	switch {
	case errors.Is(st.WindowErr, shiftwin.ErrNoScheduleDefined):
		b.WriteString(StyleYellow.Render("no schedule defined"))
		b.WriteString("\n")
	case errors.Is(st.WindowErr, shiftwin.ErrNoScheduleForToday):
		b.WriteString(Dim("no shift scheduled today"))
		b.WriteString("\n")
	case st.Window != nil:
		b.WriteString(formatWindow(st.Window, display))
	}

	if st.OpenEntry != nil {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("clocked in"),
			st.OpenEntry.StartTime.In(display).Format("15:04:05")))
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("elapsed   "), Bold(st.Elapsed)))
		if st.EarlyStart {
			b.WriteString(StyleYellow.Render("started before shift window"))
			b.WriteString("\n")
		}
	}

	if st.ShiftEndingSoon {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render("⏰ shift ends in under 5 minutes"))
		b.WriteString("\n")
	}

	return b.String()
}

func formatWindow(w *shiftwin.Result, display *time.Location) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("shift start"), w.ValidStartLocal))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("shift end  "),
		w.EndOfShiftUTC.In(display).Format("15:04:05")))
	if w.JustInTime {
		b.WriteString(StyleGreen.Render("within grace period"))
		b.WriteString("\n")
	}
	return b.String()
}

package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
)

func hours(h float64) string {
	return domain.FormatHours(h) + " h"
}

// FormatResult renders a Result for the terminal. Results that represent a
// rejected request (not checked in, unauthorized) are reported by the
// caller as errors and render as their type name here.
func FormatResult(res app.Result, boxed bool) string {
	switch r := res.(type) {
	case app.Help:
		return formatHelp(r, boxed)
	case app.CheckInConfirmed:
		body := fmt.Sprintf("%s %s at %s  %s",
			StyleGreen.Render("●"), r.Date, Bold(r.Time), Dim(fmt.Sprintf("record #%d", r.RecordID)))
		return Frame("Checked in", body, boxed)
	case app.CheckOutConfirmed:
		body := fmt.Sprintf("%s left at %s, worked %s  %s",
			StyleGreen.Render("●"), Bold(r.Time), HoursStyle(r.HoursWorked).Render(hours(r.HoursWorked)),
			Dim(fmt.Sprintf("record #%d", r.RecordID)))
		return Frame("Checked out", body, boxed)
	case app.TodaySummary:
		return formatToday(r, boxed)
	case app.RangeSummary:
		return formatRange(r, boxed)
	case app.AllUsersSummary:
		return formatAllUsers(r, boxed)
	case app.NoRecordsFound:
		return Frame("", Dim("No records for "+describeRange(r.Range)+"."), false)
	case app.Unrecognized:
		return Frame("", Dim("Nothing to do."), false)
	default:
		return Frame("", fmt.Sprintf("%T", res), false)
	}
}

func formatHelp(h app.Help, boxed bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User ID: %s\n", Bold(strconv.FormatInt(h.UserID, 10)))
	if h.IsAdmin {
		b.WriteString(StyleBlue.Render("Administrator") + "\n")
	}
	return Frame("worktime", b.String(), boxed)
}

func formatToday(s app.TodaySummary, boxed bool) string {
	rows := make([][]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		out, worked := StyleYellow.Render("open"), Dim("--")
		if !e.Open() {
			out = *e.CheckOut
		}
		if e.HoursWorked != nil {
			worked = hours(*e.HoursWorked)
		}
		rows = append(rows, []string{e.CheckIn, out, worked})
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"IN", "OUT", "HOURS"}, rows, 2))
	fmt.Fprintf(&b, "\nTotal: %s", Bold(hours(s.TotalHours)))
	return Frame("Today "+s.Date, b.String(), boxed)
}

func formatRange(s app.RangeSummary, boxed bool) string {
	var b strings.Builder
	if len(s.Lines) > 0 {
		rows := make([][]string, 0, len(s.Lines))
		for _, l := range s.Lines {
			rows = append(rows, []string{l.Date, HoursStyle(l.Hours).Render(hours(l.Hours))})
		}
		b.WriteString(RenderTable([]string{"DATE", "HOURS"}, rows, 1))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total:        %s\n", Bold(hours(s.TotalHours)))
	fmt.Fprintf(&b, "Days worked:  %d\n", s.DaysWorked)
	if s.AvgHoursPerDay != nil {
		fmt.Fprintf(&b, "Average:      %s/day\n", hours(*s.AvgHoursPerDay))
	}
	if s.OpenRecords > 0 {
		fmt.Fprintf(&b, "Open records: %s\n", StyleYellow.Render(strconv.Itoa(s.OpenRecords)))
	}
	return Frame(describeRange(s.Range), b.String(), boxed)
}

func formatAllUsers(s app.AllUsersSummary, boxed bool) string {
	rows := make([][]string, 0, len(s.Entries))
	for _, u := range s.Entries {
		rows = append(rows, []string{
			Bold(u.UserName),
			Dim(strconv.FormatInt(u.UserID, 10)),
			hours(u.TotalHours),
			strconv.Itoa(u.DaysWorked),
			hours(u.AverageHoursPerDay()),
		})
	}
	table := RenderTable([]string{"USER", "ID", "HOURS", "DAYS", "AVG/DAY"}, rows, 2, 3, 4)
	return Frame(fmt.Sprintf("All users, last %d days", s.Days), table, boxed)
}

// FormatOpenRecords lists records still waiting for a check-out along with
// how long they have been open at now.
func FormatOpenRecords(records []*domain.WorkRecord, loc *time.Location, now time.Time, boxed bool) string {
	if len(records) == 0 {
		return Frame("", Dim("No open records."), false)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		elapsed := Dim("--")
		if at, err := r.CheckInInstant(loc); err == nil {
			h := domain.HoursBetween(at, now)
			elapsed = HoursStyle(h).Render(hours(h))
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.UserName,
			strconv.FormatInt(r.UserID, 10),
			r.Date,
			r.CheckIn,
			elapsed,
		})
	}
	table := RenderTable([]string{"RECORD", "USER", "ID", "DATE", "IN", "OPEN FOR"}, rows, 0, 5)
	return Frame(fmt.Sprintf("Open records (%d)", len(records)), table, boxed)
}

func describeRange(r app.Range) string {
	switch r.Kind {
	case app.RangeToday:
		return "today"
	case app.RangeAllTime:
		return "all time"
	case app.RangeAllUsersLastNDays:
		return fmt.Sprintf("all users, last %d days", r.Days)
	default:
		return fmt.Sprintf("last %d days", r.Days)
	}
}

package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/intent"
)

const (
	storageFailureText = "❌ Could not save the record. Please try again."
	unrecognizedText   = "🤔 I didn't get that. Use the commands:\n" +
		"• /come - arrived\n" +
		"• /end - leaving\n" +
		"• /today, /week, /stats - statistics\n\n" +
		"Or just write \"arrived\" or \"heading home\""
)

// Render turns a Result into the chat reply sent to the user.
func Render(res app.Result) string {
	switch r := res.(type) {
	case app.Help:
		return renderHelp(r)
	case app.CheckInConfirmed:
		return fmt.Sprintf("✅ Checked in at %s", r.Time)
	case app.CheckOutConfirmed:
		return fmt.Sprintf("✅ Checked out at %s\n⏱ Worked: %s h", r.Time, domain.FormatHours(r.HoursWorked))
	case app.NotCheckedInError:
		return "⚠️ Check in first with /come!"
	case app.TodaySummary:
		return renderToday(r)
	case app.RangeSummary:
		return renderRange(r)
	case app.AllUsersSummary:
		return renderAllUsers(r)
	case app.NoRecordsFound:
		return renderNoRecords(r.Range)
	case app.Unauthorized:
		return "❌ This command is available to the administrator only."
	case app.Unrecognized:
		return unrecognizedText
	default:
		return unrecognizedText
	}
}

func renderHelp(h app.Help) string {
	var b strings.Builder
	if h.UserName != "" {
		fmt.Fprintf(&b, "Hi, %s! 👋\n\n", h.UserName)
	} else {
		b.WriteString("Hi! 👋\n\n")
	}
	fmt.Fprintf(&b, "Your Telegram ID: %d\n\n", h.UserID)
	b.WriteString("🕐 Time tracking:\n" +
		"• /come - when you arrive at work\n" +
		"• /end - when you leave\n" +
		"• Or just write \"arrived\" / \"heading home\"\n\n" +
		"📊 Statistics:\n" +
		"• /today - today\n" +
		fmt.Sprintf("• /week - last %d days\n", intent.WeekDays) +
		fmt.Sprintf("• /month - last %d days\n", intent.MonthDays) +
		"• /stats [days] - all time, or the last N days\n")
	if h.IsAdmin {
		fmt.Fprintf(&b, "\n🔑 Admin commands:\n• /all [days] - every employee, last %d days by default", intent.AllUsersDays)
	}
	return b.String()
}

func renderToday(s app.TodaySummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Today (%s):\n\n", shortDate(s.Date))
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "🕐 In: %s\n", e.CheckIn)
		if e.Open() {
			b.WriteString("⏳ Still at work\n\n")
			continue
		}
		fmt.Fprintf(&b, "🕐 Out: %s\n", *e.CheckOut)
		if e.HoursWorked != nil {
			fmt.Fprintf(&b, "⏱ Worked: %s h\n\n", domain.FormatHours(*e.HoursWorked))
		}
	}
	if s.TotalHours > 0 {
		fmt.Fprintf(&b, "Total today: %s h", domain.FormatHours(s.TotalHours))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderRange(s app.RangeSummary) string {
	var b strings.Builder
	b.WriteString(rangeTitle(s.Range) + ":\n\n")

	// Short windows list every closed record, longer ones only totals.
	if s.Range.Kind == app.RangeLastNDays && s.Range.Days <= intent.WeekDays {
		for _, l := range s.Lines {
			fmt.Fprintf(&b, "• %s: %s h\n", shortDate(l.Date), domain.FormatHours(l.Hours))
		}
		if len(s.Lines) > 0 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "⏱ Total: %s h\n", domain.FormatHours(s.TotalHours))
	fmt.Fprintf(&b, "📆 Days worked: %d", s.DaysWorked)
	if s.AvgHoursPerDay != nil {
		fmt.Fprintf(&b, "\n📊 Average: %s h/day", domain.FormatHours(*s.AvgHoursPerDay))
	}
	if s.OpenRecords > 0 {
		fmt.Fprintf(&b, "\n⏳ Open records: %d", s.OpenRecords)
	}
	return b.String()
}

func renderAllUsers(s app.AllUsersSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👥 All employees (%d days):\n", s.Days)
	for _, u := range s.Entries {
		fmt.Fprintf(&b, "\n👤 %s\n", u.UserName)
		fmt.Fprintf(&b, "   ⏱ %s h over %d days (avg %s h/day)\n",
			domain.FormatHours(u.TotalHours), u.DaysWorked, domain.FormatHours(u.AverageHoursPerDay()))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderNoRecords(r app.Range) string {
	switch r.Kind {
	case app.RangeToday:
		return "📭 No records today yet."
	case app.RangeAllTime:
		return "📭 No records yet."
	case app.RangeAllUsersLastNDays:
		return "📭 No data."
	default:
		return fmt.Sprintf("📭 No records in the last %d days.", r.Days)
	}
}

func rangeTitle(r app.Range) string {
	switch {
	case r.Kind == app.RangeAllTime:
		return "📊 All time"
	case r.Days == intent.WeekDays:
		return "📅 This week"
	case r.Days == intent.MonthDays:
		return "📅 This month"
	default:
		return fmt.Sprintf("📅 Last %d days", r.Days)
	}
}

func shortDate(date string) string {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02.01")
}

func invalidArgumentText(cmd string) string {
	return fmt.Sprintf("⚠️ /%s takes a number of days between 1 and %d, e.g. /%s 14", cmd, intent.MaxDays, cmd)
}

package domain

import "sort"

// UserTotals aggregates one user's closed records.
type UserTotals struct {
	TotalHours float64
	DaysWorked int
	OpenCount  int
}

// AverageHoursPerDay reports total/days, or false when nothing was worked.
func (t UserTotals) AverageHoursPerDay() (float64, bool) {
	if t.DaysWorked == 0 {
		return 0, false
	}
	return RoundHours(t.TotalHours / float64(t.DaysWorked)), true
}

// AggregateUser sums hours over closed records and counts the distinct
// dates among them. Open records only contribute to OpenCount.
func AggregateUser(records []*WorkRecord) UserTotals {
	var t UserTotals
	days := make(map[string]struct{})
	for _, r := range records {
		if r.HoursWorked == nil {
			t.OpenCount++
			continue
		}
		t.TotalHours += *r.HoursWorked
		days[r.Date] = struct{}{}
	}
	t.TotalHours = RoundHours(t.TotalHours)
	t.DaysWorked = len(days)
	return t
}

// UserSummary is one row of the cross-user report. Users are grouped by
// (UserID, UserName), so a renamed user appears once per name.
type UserSummary struct {
	UserID     int64
	UserName   string
	TotalHours float64
	DaysWorked int
}

func (s UserSummary) AverageHoursPerDay() float64 {
	if s.DaysWorked == 0 {
		return 0
	}
	return RoundHours(s.TotalHours / float64(s.DaysWorked))
}

// SortByTotalHours orders summaries by total hours descending; ties keep
// ascending user ID order.
func SortByTotalHours(s []UserSummary) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].TotalHours != s[j].TotalHours {
			return s[i].TotalHours > s[j].TotalHours
		}
		return s[i].UserID < s[j].UserID
	})
}

package app

import "github.com/alexanderramin/worktime/internal/domain"

// Result is the outcome of one event, handed to a transport for rendering.
// The concrete types below are the only implementations.
type Result interface {
	isResult()
}

type Help struct {
	UserID   int64
	UserName string
	IsAdmin  bool
}

type CheckInConfirmed struct {
	RecordID int64
	Date     string
	Time     string
}

type CheckOutConfirmed struct {
	RecordID    int64
	Time        string
	HoursWorked float64
}

type NotCheckedInError struct{}

// TodayEntry is one record of the current day.
type TodayEntry struct {
	CheckIn     string
	CheckOut    *string
	HoursWorked *float64
}

func (e TodayEntry) Open() bool { return e.CheckOut == nil }

type TodaySummary struct {
	Date       string
	Entries    []TodayEntry
	TotalHours float64
}

// DayLine is one closed record inside a range summary.
type DayLine struct {
	Date  string
	Hours float64
}

type RangeSummary struct {
	Range          Range
	Lines          []DayLine
	TotalHours     float64
	DaysWorked     int
	OpenRecords    int
	AvgHoursPerDay *float64
}

type AllUsersSummary struct {
	Days    int
	Entries []domain.UserSummary
}

type NoRecordsFound struct {
	Range Range
}

type Unauthorized struct{}

type Unrecognized struct{}

func (Help) isResult()              {}
func (CheckInConfirmed) isResult()  {}
func (CheckOutConfirmed) isResult() {}
func (NotCheckedInError) isResult() {}
func (TodaySummary) isResult()      {}
func (RangeSummary) isResult()      {}
func (AllUsersSummary) isResult()   {}
func (NoRecordsFound) isResult()    {}
func (Unauthorized) isResult()      {}
func (Unrecognized) isResult()      {}

package core

import (
	"fmt"
	"time"
)

// ReportPeriod 報表區間
type ReportPeriod string

const (
	ReportPeriodDaily   ReportPeriod = "daily"
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodMonthly ReportPeriod = "monthly"
	ReportPeriodYearly  ReportPeriod = "yearly"
)

const DateLayout = "2006-01-02"
const MonthLayout = "2006-01"

func ParseReportPeriod(s string) (ReportPeriod, error) {
	switch ReportPeriod(s) {
	case "":
		return ReportPeriodMonthly, nil
	case ReportPeriodDaily, ReportPeriodWeekly, ReportPeriodMonthly, ReportPeriodYearly:
		return ReportPeriod(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Window 回傳 [from, to] 兩個 YYYY-MM-DD（含頭尾），以 end 為結束日
func (p ReportPeriod) Window(end time.Time) (from, to string) {
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	var start time.Time
	switch p {
	case ReportPeriodDaily:
		start = end
	case ReportPeriodWeekly:
		start = end.AddDate(0, 0, -6)
	case ReportPeriodYearly:
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return start.Format(DateLayout), end.Format(DateLayout)
}

// Today UTC 日期字串
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationCounts groups application totals by status.
type ApplicationCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// DepartmentCount is the number of applications filed from one department.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// MonthlyTrend is one month of decided-application volume.
type MonthlyTrend struct {
	Month    string `json:"month"`
	Approved int    `json:"approved"`
	Rejected int    `json:"rejected"`
}

// LeaveTypeCount is how often one leave type was selected. A multi-type
// application counts once per selected type.
type LeaveTypeCount struct {
	Type  LeaveType `json:"type"`
	Count int       `json:"count"`
}

// CoverageRiskLevel buckets a department's worst-day absence rate.
type CoverageRiskLevel string

const (
	CoverageRiskLow    CoverageRiskLevel = "Low"
	CoverageRiskMedium CoverageRiskLevel = "Medium"
	CoverageRiskHigh   CoverageRiskLevel = "High"
)

// DepartmentCoverage is the coverage-risk assessment for one department over
// a queried window: the fraction of headcount absent on the single worst day.
type DepartmentCoverage struct {
	Department  string            `json:"department"`
	Headcount   int               `json:"headcount"`
	PeakAbsent  int               `json:"peakAbsent"`
	PeakDay     time.Time         `json:"peakDay"`
	AbsenceRate decimal.Decimal   `json:"absenceRate"`
	Risk        CoverageRiskLevel `json:"risk"`
}

// CategoryUtilization is used/total for one tracked category across the ledger.
type CategoryUtilization struct {
	Type        LeaveType       `json:"type"`
	Total       int             `json:"total"`
	Used        int             `json:"used"`
	Utilization decimal.Decimal `json:"utilization"`
}

package domain_test

import (
	"testing"
	"time"

	"github.com/Hosana-alex/Eword-Leave-Management-System/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLeaveApplication_Days(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "single day",
			from: day(2026, time.March, 10),
			to:   day(2026, time.March, 10),
			want: 1,
		},
		{
			name: "inclusive range",
			from: day(2026, time.March, 10),
			to:   day(2026, time.March, 14),
			want: 5,
		},
		{
			name: "month boundary",
			from: day(2026, time.January, 30),
			to:   day(2026, time.February, 2),
			want: 4,
		},
		{
			name: "year boundary",
			from: day(2026, time.December, 30),
			to:   day(2027, time.January, 2),
			want: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := domain.LeaveApplication{FromDate: tt.from, ToDate: tt.to}
			assert.Equal(t, tt.want, app.Days())
		})
	}
}

func TestLeaveApplication_Overlaps(t *testing.T) {
	app := domain.LeaveApplication{
		FromDate: day(2026, time.June, 10),
		ToDate:   day(2026, time.June, 14),
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{"fully before", day(2026, time.June, 1), day(2026, time.June, 9), false},
		{"fully after", day(2026, time.June, 15), day(2026, time.June, 20), false},
		{"touches start day", day(2026, time.June, 5), day(2026, time.June, 10), true},
		{"touches end day", day(2026, time.June, 14), day(2026, time.June, 20), true},
		{"contained", day(2026, time.June, 11), day(2026, time.June, 12), true},
		{"containing", day(2026, time.June, 1), day(2026, time.June, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.Overlaps(tt.from, tt.to))
		})
	}
}

func TestLeaveApplication_TrackedType(t *testing.T) {
	tests := []struct {
		name        string
		types       []domain.LeaveType
		wantType    domain.LeaveType
		wantTracked bool
	}{
		{"single tracked", []domain.LeaveType{domain.SickLeave}, domain.SickLeave, true},
		{"tracked plus untracked", []domain.LeaveType{domain.UnpaidLeave, domain.StudyLeave}, domain.StudyLeave, true},
		{"untracked only", []domain.LeaveType{domain.UnpaidLeave, domain.OtherLeave}, "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := domain.LeaveApplication{LeaveTypes: tt.types}
			got, tracked := app.TrackedType()
			assert.Equal(t, tt.wantTracked, tracked)
			assert.Equal(t, tt.wantType, got)
		})
	}
}

func TestLeaveType_Known(t *testing.T) {
	for _, lt := range domain.TrackedLeaveTypes {
		assert.True(t, lt.Known(), string(lt))
		assert.True(t, lt.Tracked(), string(lt))
	}
	assert.True(t, domain.UnpaidLeave.Known())
	assert.False(t, domain.UnpaidLeave.Tracked())
	assert.True(t, domain.OtherLeave.Known())
	assert.False(t, domain.OtherLeave.Tracked())
	assert.False(t, domain.LeaveType("Sabbatical").Known())
}

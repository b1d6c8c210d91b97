package services

import (
	"testing"
	"time"
)

func TestIsManagementPosition(t *testing.T) {
	tests := []struct {
		position string
		want     bool
	}{
		{"Director General", true},
		{"director economic", true},
		{"Manager Resurse Umane", true},
		{"CEO", true},
		{"Șef Departament Vânzări", true},
		{"sef de departament logistica", true},
		{"Head of Engineering", true},
		{"Coordonator proiect", true},
		{"Administrator societate", true},
		{"Programator", false},
		{"Economist", false},
		{"Inginer de sistem", false},
		{"Vânzător", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsManagementPosition(tt.position); got != tt.want {
			t.Errorf("IsManagementPosition(%q) = %v, want %v", tt.position, got, tt.want)
		}
	}
}

func TestProbationCeiling(t *testing.T) {
	if got := ProbationCeiling("Programator"); got != StandardProbationCeiling {
		t.Errorf("execution position ceiling = %d, want %d", got, StandardProbationCeiling)
	}
	if got := ProbationCeiling("Director Tehnic"); got != ManagementProbationCeiling {
		t.Errorf("management position ceiling = %d, want %d", got, ManagementProbationCeiling)
	}
}

func TestWorkingDays(t *testing.T) {
	// June 2025: 30 days, 9 weekend days, June 1 (Ziua Copilului) falls on
	// a Sunday so it does not reduce the count further.
	if got := WorkingDays(2025, time.June); got != 21 {
		t.Errorf("WorkingDays(2025, June) = %d, want 21", got)
	}
	// January 2025: 23 weekdays minus Jan 1 (Wed), Jan 2 (Thu) and Jan 24 (Fri).
	if got := WorkingDays(2025, time.January); got != 20 {
		t.Errorf("WorkingDays(2025, January) = %d, want 20", got)
	}
	// December 2025: 23 weekdays minus Dec 1 (Mon), Dec 25 (Thu) and Dec 26 (Fri).
	if got := WorkingDays(2025, time.December); got != 20 {
		t.Errorf("WorkingDays(2025, December) = %d, want 20", got)
	}
}

func TestIsLegalHoliday(t *testing.T) {
	if !IsLegalHoliday(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("December 1 should be a legal holiday")
	}
	if IsLegalHoliday(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Error("March 14 should not be a legal holiday")
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	d := func(y, m, day int) time.Time {
		return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		start, end time.Time
		want       int
	}{
		{d(2025, 1, 1), d(2025, 1, 31), 0},
		{d(2025, 1, 1), d(2025, 2, 1), 1},
		{d(2025, 1, 15), d(2025, 2, 14), 0},
		{d(2025, 1, 15), d(2025, 2, 15), 1},
		{d(2025, 1, 1), d(2028, 1, 1), 36},
		{d(2025, 1, 1), d(2028, 1, 2), 36},
		{d(2025, 1, 2), d(2028, 1, 1), 35},
		{d(2025, 6, 1), d(2025, 1, 1), 0},
	}
	for _, tt := range tests {
		if got := WholeMonthsBetween(tt.start, tt.end); got != tt.want {
			t.Errorf("WholeMonthsBetween(%s, %s) = %d, want %d",
				tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"), got, tt.want)
		}
	}
}

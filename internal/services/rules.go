package services

import (
	"strings"
	"time"
)

// Statutory constants for employment contracts and payroll, per the Labour
// Code and the fiscal code rates in force.
const (
	// MinimumGrossSalary is the national gross minimum wage in RON/month.
	MinimumGrossSalary = 3700.0

	// MaxWeeklyHours is the legal maximum including overtime, averaged.
	MaxWeeklyHours = 48

	// StandardWeeklyHours is the full working week the minimum wage assumes.
	StandardWeeklyHours = 40

	// Probation ceilings in calendar days: executive positions get the
	// extended window, everyone else the standard one.
	StandardProbationCeiling   = 90
	ManagementProbationCeiling = 120

	// FixedTermMaxMonths caps the duration of a fixed-term contract.
	FixedTermMaxMonths = 36

	// Non-compete limits: maximum duration and the minimum monthly
	// indemnity as a fraction of the salary.
	NonCompeteMaxMonths          = 24
	NonCompeteMinCompensationPct = 0.25

	// Payroll contribution rates.
	CASRate       = 0.25   // social insurance, employee
	CASSRate      = 0.10   // health insurance, employee
	IncomeTaxRate = 0.10   // on gross minus CAS and CASS
	CAMRate       = 0.0225 // labor insurance, employer side
)

// managementTitleHints mark positions that qualify for the extended
// probation ceiling, matched case-insensitively as substrings.
var managementTitleHints = []string{
	"director",
	"manager",
	"ceo",
	"cfo",
	"cto",
	"sef departament",
	"șef departament",
	"sef de departament",
	"șef de departament",
	"head of",
	"coordonator",
	"coordinator",
	"administrator",
}

// IsManagementPosition applies the management-role heuristic to a job title.
func IsManagementPosition(position string) bool {
	p := strings.ToLower(position)
	for _, hint := range managementTitleHints {
		if strings.Contains(p, hint) {
			return true
		}
	}
	return false
}

// ProbationCeiling returns the probation ceiling in calendar days for a
// given job title.
func ProbationCeiling(position string) int {
	if IsManagementPosition(position) {
		return ManagementProbationCeiling
	}
	return StandardProbationCeiling
}

// legalHolidays is the fixed annual list of non-working legal holidays as
// month/day pairs. Movable feasts (Easter, Pentecost) change year to year
// and are not part of the fixed list.
var legalHolidays = [][2]int{
	{1, 1}, {1, 2}, // Anul Nou
	{1, 24},  // Unirea Principatelor
	{5, 1},   // Ziua Muncii
	{6, 1},   // Ziua Copilului
	{8, 15},  // Adormirea Maicii Domnului
	{11, 30}, // Sfântul Andrei
	{12, 1},  // Ziua Națională
	{12, 25}, {12, 26}, // Crăciunul
}

// IsLegalHoliday reports whether a date is on the fixed holiday list.
func IsLegalHoliday(d time.Time) bool {
	for _, h := range legalHolidays {
		if int(d.Month()) == h[0] && d.Day() == h[1] {
			return true
		}
	}
	return false
}

// WorkingDays counts the working days in a month: calendar days minus
// weekends minus legal holidays that do not themselves fall on a weekend.
func WorkingDays(year int, month time.Month) int {
	days := 0
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Month() == month {
		wd := d.Weekday()
		if wd != time.Saturday && wd != time.Sunday && !IsLegalHoliday(d) {
			days++
		}
		d = d.AddDate(0, 0, 1)
	}
	return days
}

// WholeMonthsBetween returns the number of whole months from start to end.
func WholeMonthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

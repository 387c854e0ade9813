// Package pim implements the personal information manager: the calendar and
// the appointment, to-do, note and journal applications. Record types match
// the JSON files the device keeps under its data directory.
package pim

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar day. It serializes as the [year, month, day] array the
// data files use.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{d.Year, d.Month, d.Day})
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var a [3]int
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	d.Year, d.Month, d.Day = a[0], a[1], a[2]
	return nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Compare orders dates chronologically: negative when d is before o.
func (d Date) Compare(o Date) int {
	if d.Year != o.Year {
		return d.Year - o.Year
	}
	if d.Month != o.Month {
		return d.Month - o.Month
	}
	return d.Day - o.Day
}

// Today returns the current date.
func Today() Date {
	now := time.Now()
	return Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of month 1..12.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "?"
	}
	return monthNames[month-1]
}

// IsLeapYear implements the Gregorian leap rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month, leap-aware.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// FirstWeekday returns the weekday of the first day of the month, with
// Monday = 0 through Sunday = 6. Zeller's congruence, with January and
// February counted as months 13 and 14 of the previous year.
func FirstWeekday(year, month int) int {
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (1 + 13*(month+1)/5 + k + k/4 + j/4 + 5*j) % 7
	// Zeller numbers Saturday as 0.
	return (h + 5) % 7
}

package pim

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"picopim/display"
	"picopim/keyboard"
	"picopim/store"
	"picopim/ui"
)

const appointmentsFile = "appointments.json"

// Validation limits for appointment dates.
const (
	minYear = 2020
	maxYear = 2100
)

var (
	ErrBadDate = errors.New("invalid date")
	ErrBadTime = errors.New("invalid time")
)

// Appointment is one scheduled event.
type Appointment struct {
	ID          string `json:"id"`
	Date        Date   `json:"date"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Appointments keeps the appointment list sorted by date and time.
type Appointments struct {
	store  *store.Store
	logger *slog.Logger
	items  []Appointment
}

func NewAppointments(s *store.Store, logger *slog.Logger) (*Appointments, error) {
	a := &Appointments{store: s, logger: logger}
	if err := s.Load(appointmentsFile, &a.items); err != nil {
		return nil, err
	}
	a.sort()
	return a, nil
}

// Items returns the appointments sorted by date, then time.
func (a *Appointments) Items() []Appointment { return a.items }

// Add validates the fields, inserts the appointment and saves.
func (a *Appointments) Add(date Date, timeOfDay, title, description string) (Appointment, error) {
	if err := ValidateDate(date); err != nil {
		return Appointment{}, err
	}
	if err := ValidateTime(timeOfDay); err != nil {
		return Appointment{}, err
	}
	appt := Appointment{
		ID:          store.NewID(),
		Date:        date,
		Time:        timeOfDay,
		Title:       title,
		Description: description,
	}
	a.items = append(a.items, appt)
	a.sort()
	return appt, a.save()
}

// Delete removes the appointment with the given id.
func (a *Appointments) Delete(id string) error {
	for i, appt := range a.items {
		if appt.ID == id {
			a.items = append(a.items[:i], a.items[i+1:]...)
			return a.save()
		}
	}
	return nil
}

func (a *Appointments) sort() {
	sort.SliceStable(a.items, func(i, j int) bool {
		if c := a.items[i].Date.Compare(a.items[j].Date); c != 0 {
			return c < 0
		}
		return a.items[i].Time < a.items[j].Time
	})
}

func (a *Appointments) save() error {
	if err := a.store.Save(appointmentsFile, a.items); err != nil {
		a.logger.Error("failed to save appointments", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// ValidateDate checks the year, month and day ranges. The day limit is
// leap-aware, so 2025-02-29 is rejected.
func ValidateDate(d Date) error {
	if d.Year < minYear || d.Year > maxYear {
		return fmt.Errorf("%w: year %d not in %d..%d", ErrBadDate, d.Year, minYear, maxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrBadDate, d.Month)
	}
	if days := DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > days {
		return fmt.Errorf("%w: day %d not in 1..%d", ErrBadDate, d.Day, DaysInMonth(d.Year, d.Month))
	}
	return nil
}

// ValidateTime checks an "HH:MM" string.
func ValidateTime(s string) error {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return fmt.Errorf("%w: %q is not HH:MM", ErrBadTime, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return fmt.Errorf("%w: hour in %q", ErrBadTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return fmt.Errorf("%w: minute in %q", ErrBadTime, s)
	}
	return nil
}

// Run drives the appointments screens.
func (a *Appointments) Run(d display.Device, kb keyboard.Input) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "Appointments",
		Items: []ui.MenuItem{
			{Label: "View Appointments", Run: func() bool { a.runList(d, kb); return true }},
			{Label: "Add Appointment", Run: func() bool { a.runAdd(d, kb); return true }},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (a *Appointments) runList(d display.Device, kb keyboard.Input) {
	for {
		labels := make([]string, len(a.items))
		for i, appt := range a.items {
			labels[i] = fmt.Sprintf("%s %s %s", appt.Date, appt.Time, appt.Title)
		}
		list := &ui.ListView{Display: d, Keyboard: kb, Title: "Appointments", Items: labels}
		i, ok := list.Show()
		if !ok {
			return
		}
		a.runDetail(d, kb, a.items[i])
	}
}

func (a *Appointments) runDetail(d display.Device, kb keyboard.Input, appt Appointment) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    appt.Title,
		Items: []ui.MenuItem{
			{Label: "View Details", Run: func() bool {
				ui.MessageBox(d, kb, appt.Title,
					"Date: "+appt.Date.String(),
					"Time: "+appt.Time,
					"",
					appt.Description)
				return true
			}},
			{Label: "Delete", Run: func() bool {
				if !ui.Confirm(d, kb, "Delete appointment?") {
					return true
				}
				if err := a.Delete(appt.ID); err != nil {
					ui.MessageBox(d, kb, "Error", "Could not save changes")
				}
				return false
			}},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (a *Appointments) runAdd(d display.Device, kb keyboard.Input) {
	date, ok := promptDate(d, kb)
	if !ok {
		return
	}
	timeOfDay, ok := promptField(d, kb, "Add Appointment", "Time (HH:MM):", 5)
	if !ok {
		return
	}
	title, ok := promptField(d, kb, "Add Appointment", "Title:", 34)
	if !ok || title == "" {
		return
	}
	desc, ok := promptField(d, kb, "Add Appointment", "Description:", 60)
	if !ok {
		return
	}

	if _, err := a.Add(date, timeOfDay, title, desc); err != nil {
		ui.MessageBox(d, kb, "Error", err.Error())
		return
	}
	ui.MessageBox(d, kb, "Appointments", "Appointment saved")
}

func promptDate(d display.Device, kb keyboard.Input) (Date, bool) {
	year, ok := promptInt(d, kb, "Add Appointment", "Year:")
	if !ok {
		return Date{}, false
	}
	month, ok := promptInt(d, kb, "Add Appointment", "Month (1-12):")
	if !ok {
		return Date{}, false
	}
	day, ok := promptInt(d, kb, "Add Appointment", "Day:")
	if !ok {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

func promptField(d display.Device, kb keyboard.Input, title, prompt string, maxLen int) (string, bool) {
	in := &ui.InputDialog{Display: d, Keyboard: kb, Title: title, Prompt: prompt, MaxLen: maxLen}
	return in.Show()
}

func promptInt(d display.Device, kb keyboard.Input, title, prompt string) (int, bool) {
	for {
		s, ok := promptField(d, kb, title, prompt, 4)
		if !ok {
			return 0, false
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
		ui.MessageBox(d, kb, title, "Enter a number")
	}
}

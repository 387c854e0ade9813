package pim

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"picopim/display"
	"picopim/keyboard"
	"picopim/store"
	"picopim/ui"
)

const journalFile = "journal.json"

// Moods, best to worst, as stored in entries.
var Moods = []string{"great", "good", "okay", "bad", "terrible"}

// ErrEntryExists reports that a day already has a journal entry.
var ErrEntryExists = errors.New("entry for this day already exists")

// Entry is one journal entry. Each day holds at most one.
type Entry struct {
	ID        string `json:"id"`
	Date      Date   `json:"date"`
	Content   string `json:"content"`
	Mood      string `json:"mood"`
	Timestamp string `json:"timestamp"`
}

// Journal keeps entries ordered by date, newest first.
type Journal struct {
	store  *store.Store
	logger *slog.Logger
	items  []Entry
	now    func() time.Time
}

func NewJournal(s *store.Store, logger *slog.Logger) (*Journal, error) {
	j := &Journal{store: s, logger: logger, now: time.Now}
	if err := s.Load(journalFile, &j.items); err != nil {
		return nil, err
	}
	j.sort()
	return j, nil
}

func (j *Journal) Items() []Entry { return j.items }

// ByDate returns the entry for the given day, if any.
func (j *Journal) ByDate(d Date) (Entry, bool) {
	for _, e := range j.items {
		if e.Date == d {
			return e, true
		}
	}
	return Entry{}, false
}

// Add creates the entry for a day. A day that already has one is rejected
// with ErrEntryExists; callers offer editing instead.
func (j *Journal) Add(date Date, content, mood string) (Entry, error) {
	if _, ok := j.ByDate(date); ok {
		return Entry{}, ErrEntryExists
	}
	e := Entry{
		ID:        store.NewID(),
		Date:      date,
		Content:   content,
		Mood:      mood,
		Timestamp: j.now().Format("2006-01-02 15:04"),
	}
	j.items = append(j.items, e)
	j.sort()
	return e, j.save()
}

// Edit replaces a day's content and mood.
func (j *Journal) Edit(id, content, mood string) error {
	for i := range j.items {
		if j.items[i].ID == id {
			j.items[i].Content = content
			j.items[i].Mood = mood
			j.items[i].Timestamp = j.now().Format("2006-01-02 15:04")
			return j.save()
		}
	}
	return nil
}

// Delete removes one entry.
func (j *Journal) Delete(id string) error {
	for i := range j.items {
		if j.items[i].ID == id {
			j.items = append(j.items[:i], j.items[i+1:]...)
			return j.save()
		}
	}
	return nil
}

// MoodStats counts entries per mood.
func (j *Journal) MoodStats() map[string]int {
	stats := map[string]int{}
	for _, e := range j.items {
		stats[e.Mood]++
	}
	return stats
}

func (j *Journal) sort() {
	sort.SliceStable(j.items, func(i, k int) bool {
		return j.items[i].Date.Compare(j.items[k].Date) > 0
	})
}

func (j *Journal) save() error {
	if err := j.store.Save(journalFile, j.items); err != nil {
		j.logger.Error("failed to save journal", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Run drives the journal screens.
func (j *Journal) Run(d display.Device, kb keyboard.Input) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "Journal",
		Items: []ui.MenuItem{
			{Label: "Today's Entry", Run: func() bool { j.runToday(d, kb); return true }},
			{Label: "Browse Entries", Run: func() bool { j.runList(d, kb); return true }},
			{Label: "Mood Statistics", Run: func() bool { j.runStats(d, kb); return true }},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (j *Journal) runToday(d display.Device, kb keyboard.Input) {
	today := Today()
	if e, ok := j.ByDate(today); ok {
		if ui.Confirm(d, kb, "Edit today's entry?") {
			j.runEdit(d, kb, e)
		}
		return
	}

	ta := &ui.TextAreaDialog{Display: d, Keyboard: kb, Title: "Journal " + today.String()}
	content, ok := ta.Show()
	if !ok {
		return
	}
	mood, ok := pickMood(d, kb)
	if !ok {
		return
	}
	if _, err := j.Add(today, content, mood); err != nil {
		ui.MessageBox(d, kb, "Error", "Could not save entry")
		return
	}
	ui.MessageBox(d, kb, "Journal", "Entry saved")
}

func (j *Journal) runEdit(d display.Device, kb keyboard.Input, e Entry) {
	ta := &ui.TextAreaDialog{Display: d, Keyboard: kb, Title: "Journal " + e.Date.String(), Value: e.Content}
	content, ok := ta.Show()
	if !ok {
		return
	}
	mood, ok := pickMood(d, kb)
	if !ok {
		mood = e.Mood
	}
	if err := j.Edit(e.ID, content, mood); err != nil {
		ui.MessageBox(d, kb, "Error", "Could not save entry")
	}
}

func (j *Journal) runList(d display.Device, kb keyboard.Input) {
	for {
		labels := make([]string, len(j.items))
		for i, e := range j.items {
			labels[i] = fmt.Sprintf("%s (%s)", e.Date, e.Mood)
		}
		list := &ui.ListView{Display: d, Keyboard: kb, Title: "Journal", Items: labels}
		i, ok := list.Show()
		if !ok {
			return
		}
		j.runDetail(d, kb, j.items[i])
	}
}

func (j *Journal) runDetail(d display.Device, kb keyboard.Input, e Entry) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    e.Date.String(),
		Items: []ui.MenuItem{
			{Label: "Read", Run: func() bool {
				lines := append([]string{"Mood: " + e.Mood, ""}, splitMessage(e.Content)...)
				ui.MessageBox(d, kb, e.Date.String(), lines...)
				return true
			}},
			{Label: "Edit", Run: func() bool { j.runEdit(d, kb, e); return false }},
			{Label: "Delete", Run: func() bool {
				if !ui.Confirm(d, kb, "Delete entry?") {
					return true
				}
				if err := j.Delete(e.ID); err != nil {
					ui.MessageBox(d, kb, "Error", "Could not save changes")
				}
				return false
			}},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (j *Journal) runStats(d display.Device, kb keyboard.Input) {
	stats := j.MoodStats()
	total := len(j.items)
	lines := []string{fmt.Sprintf("Entries: %d", total), ""}
	for _, mood := range Moods {
		n := stats[mood]
		pct := 0
		if total > 0 {
			pct = n * 100 / total
		}
		lines = append(lines, fmt.Sprintf("%-9s %3d  %3d%%", mood, n, pct))
	}
	ui.MessageBox(d, kb, "Mood Statistics", lines...)
}

func pickMood(d display.Device, kb keyboard.Input) (string, bool) {
	mood, picked := "", false
	items := make([]ui.MenuItem, 0, len(Moods))
	for _, m := range Moods {
		items = append(items, ui.MenuItem{Label: m, Run: func() bool {
			mood, picked = m, true
			return false
		}})
	}
	menu := &ui.Menu{Display: d, Keyboard: kb, Title: "How was your day?", Items: items}
	menu.Show()
	return mood, picked
}

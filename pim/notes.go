package pim

import (
	"log/slog"
	"sort"
	"strings"
	"time"

	"picopim/display"
	"picopim/keyboard"
	"picopim/store"
	"picopim/ui"
)

const notesFile = "notes.json"

// Note is one free-form text note.
type Note struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Created  string `json:"created"`
	Modified string `json:"modified"`
}

// Notes keeps the note list ordered by last modification, newest first.
type Notes struct {
	store  *store.Store
	logger *slog.Logger
	items  []Note
	now    func() time.Time
}

func NewNotes(s *store.Store, logger *slog.Logger) (*Notes, error) {
	n := &Notes{store: s, logger: logger, now: time.Now}
	if err := s.Load(notesFile, &n.items); err != nil {
		return nil, err
	}
	n.sort()
	return n, nil
}

func (n *Notes) Items() []Note { return n.items }

// Add creates a note stamped with the current time.
func (n *Notes) Add(title, content string) (Note, error) {
	stamp := n.now().Format("2006-01-02 15:04")
	note := Note{
		ID:       store.NewID(),
		Title:    title,
		Content:  content,
		Created:  stamp,
		Modified: stamp,
	}
	n.items = append(n.items, note)
	n.sort()
	return note, n.save()
}

// Edit replaces a note's title and content and bumps its modified stamp.
func (n *Notes) Edit(id, title, content string) error {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Title = title
			n.items[i].Content = content
			n.items[i].Modified = n.now().Format("2006-01-02 15:04")
			n.sort()
			return n.save()
		}
	}
	return nil
}

// Delete removes one note.
func (n *Notes) Delete(id string) error {
	for i := range n.items {
		if n.items[i].ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return n.save()
		}
	}
	return nil
}

// Search returns the notes whose title or content contains the query,
// case-insensitively, in list order.
func (n *Notes) Search(query string) []Note {
	q := strings.ToLower(query)
	var out []Note
	for _, note := range n.items {
		if strings.Contains(strings.ToLower(note.Title), q) ||
			strings.Contains(strings.ToLower(note.Content), q) {
			out = append(out, note)
		}
	}
	return out
}

func (n *Notes) sort() {
	sort.SliceStable(n.items, func(i, j int) bool {
		return n.items[i].Modified > n.items[j].Modified
	})
}

func (n *Notes) save() error {
	if err := n.store.Save(notesFile, n.items); err != nil {
		n.logger.Error("failed to save notes", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Run drives the notes screens.
func (n *Notes) Run(d display.Device, kb keyboard.Input) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "Notes",
		Items: []ui.MenuItem{
			{Label: "View Notes", Run: func() bool { n.runList(d, kb, n.items); return true }},
			{Label: "New Note", Run: func() bool { n.runAdd(d, kb); return true }},
			{Label: "Search", Run: func() bool { n.runSearch(d, kb); return true }},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

// runList shows a snapshot of notes; it returns after a detail screen since
// the snapshot may be stale by then.
func (n *Notes) runList(d display.Device, kb keyboard.Input, notes []Note) {
	labels := make([]string, len(notes))
	for i, note := range notes {
		labels[i] = note.Title + "  " + note.Modified
	}
	list := &ui.ListView{Display: d, Keyboard: kb, Title: "Notes", Items: labels}
	i, ok := list.Show()
	if !ok {
		return
	}
	n.runDetail(d, kb, notes[i])
}

func (n *Notes) runDetail(d display.Device, kb keyboard.Input, note Note) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    note.Title,
		Items: []ui.MenuItem{
			{Label: "Read", Run: func() bool {
				ui.MessageBox(d, kb, note.Title, splitMessage(note.Content)...)
				return true
			}},
			{Label: "Edit", Run: func() bool {
				n.runEdit(d, kb, note)
				return false
			}},
			{Label: "Delete", Run: func() bool {
				if !ui.Confirm(d, kb, "Delete note?") {
					return true
				}
				if err := n.Delete(note.ID); err != nil {
					ui.MessageBox(d, kb, "Error", "Could not save changes")
				}
				return false
			}},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (n *Notes) runAdd(d display.Device, kb keyboard.Input) {
	title, ok := promptField(d, kb, "New Note", "Title:", 34)
	if !ok || title == "" {
		return
	}
	ta := &ui.TextAreaDialog{Display: d, Keyboard: kb, Title: "New Note"}
	content, ok := ta.Show()
	if !ok {
		return
	}
	if _, err := n.Add(title, content); err != nil {
		ui.MessageBox(d, kb, "Error", "Could not save changes")
		return
	}
	ui.MessageBox(d, kb, "Notes", "Note saved")
}

func (n *Notes) runEdit(d display.Device, kb keyboard.Input, note Note) {
	in := &ui.InputDialog{Display: d, Keyboard: kb, Title: "Edit Note", Prompt: "Title:", Value: note.Title, MaxLen: 34}
	title, ok := in.Show()
	if !ok || title == "" {
		return
	}
	ta := &ui.TextAreaDialog{Display: d, Keyboard: kb, Title: "Edit Note", Value: note.Content}
	content, ok := ta.Show()
	if !ok {
		return
	}
	if err := n.Edit(note.ID, title, content); err != nil {
		ui.MessageBox(d, kb, "Error", "Could not save changes")
	}
}

func (n *Notes) runSearch(d display.Device, kb keyboard.Input) {
	query, ok := promptField(d, kb, "Search Notes", "Find:", 34)
	if !ok || query == "" {
		return
	}
	n.runList(d, kb, n.Search(query))
}

// splitMessage breaks text into message-box lines.
func splitMessage(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

package pim

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"picopim/display"
	"picopim/keyboard"
	"picopim/store"
	"picopim/ui"
)

const todosFile = "todos.json"

// Todo priorities, lowest to highest.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

var priorityRank = map[string]int{PriorityLow: 0, PriorityNormal: 1, PriorityHigh: 2}

// Todo is one task on the list.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	Created   string `json:"created"`
}

// TodoStats summarizes the list for the stats screen.
type TodoStats struct {
	Total        int
	Completed    int
	Pending      int
	HighPriority int
	Percent      int
}

// Todos keeps the task list ordered: pending before completed, higher
// priority first, oldest first within a priority.
type Todos struct {
	store  *store.Store
	logger *slog.Logger
	items  []Todo
	now    func() time.Time
}

func NewTodos(s *store.Store, logger *slog.Logger) (*Todos, error) {
	t := &Todos{store: s, logger: logger, now: time.Now}
	if err := s.Load(todosFile, &t.items); err != nil {
		return nil, err
	}
	t.sort()
	return t, nil
}

func (t *Todos) Items() []Todo { return t.items }

// Add inserts a new pending task. An unknown priority is stored as normal.
func (t *Todos) Add(title, priority string) (Todo, error) {
	if _, ok := priorityRank[priority]; !ok {
		priority = PriorityNormal
	}
	todo := Todo{
		ID:       store.NewID(),
		Title:    title,
		Priority: priority,
		Created:  t.now().Format("2006-01-02 15:04"),
	}
	t.items = append(t.items, todo)
	t.sort()
	return todo, t.save()
}

// Toggle flips the completed flag of the task with the given id.
func (t *Todos) Toggle(id string) error {
	for i := range t.items {
		if t.items[i].ID == id {
			t.items[i].Completed = !t.items[i].Completed
			t.sort()
			return t.save()
		}
	}
	return nil
}

// Delete removes one task.
func (t *Todos) Delete(id string) error {
	for i := range t.items {
		if t.items[i].ID == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return t.save()
		}
	}
	return nil
}

// ClearCompleted removes every completed task and returns how many went.
func (t *Todos) ClearCompleted() (int, error) {
	kept := t.items[:0]
	removed := 0
	for _, todo := range t.items {
		if todo.Completed {
			removed++
			continue
		}
		kept = append(kept, todo)
	}
	t.items = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, t.save()
}

// Stats computes the totals for the statistics screen.
func (t *Todos) Stats() TodoStats {
	s := TodoStats{Total: len(t.items)}
	for _, todo := range t.items {
		if todo.Completed {
			s.Completed++
		} else {
			s.Pending++
		}
		if todo.Priority == PriorityHigh {
			s.HighPriority++
		}
	}
	if s.Total > 0 {
		s.Percent = s.Completed * 100 / s.Total
	}
	return s
}

func (t *Todos) sort() {
	sort.SliceStable(t.items, func(i, j int) bool {
		a, b := t.items[i], t.items[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if pa, pb := priorityRank[a.Priority], priorityRank[b.Priority]; pa != pb {
			return pa > pb
		}
		return a.Created < b.Created
	})
}

func (t *Todos) save() error {
	if err := t.store.Save(todosFile, t.items); err != nil {
		t.logger.Error("failed to save todos", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Run drives the to-do screens.
func (t *Todos) Run(d display.Device, kb keyboard.Input) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "To-Do List",
		Items: []ui.MenuItem{
			{Label: "View Tasks", Run: func() bool { t.runList(d, kb); return true }},
			{Label: "Add Task", Run: func() bool { t.runAdd(d, kb); return true }},
			{Label: "Clear Completed", Run: func() bool {
				if !ui.Confirm(d, kb, "Remove all completed tasks?") {
					return true
				}
				n, err := t.ClearCompleted()
				if err != nil {
					ui.MessageBox(d, kb, "Error", "Could not save changes")
					return true
				}
				ui.MessageBox(d, kb, "To-Do List", fmt.Sprintf("Removed %d task(s)", n))
				return true
			}},
			{Label: "Statistics", Run: func() bool { t.runStats(d, kb); return true }},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (t *Todos) runList(d display.Device, kb keyboard.Input) {
	for {
		labels := make([]string, len(t.items))
		for i, todo := range t.items {
			mark := "[ ]"
			if todo.Completed {
				mark = "[x]"
			}
			labels[i] = fmt.Sprintf("%s %s (%s)", mark, todo.Title, todo.Priority)
		}
		list := &ui.ListView{
			Display: d, Keyboard: kb,
			Title: "Tasks", Items: labels,
			Hint: "Enter: open  Esc: back",
		}
		i, ok := list.Show()
		if !ok {
			return
		}
		t.runDetail(d, kb, t.items[i].ID)
	}
}

func (t *Todos) runDetail(d display.Device, kb keyboard.Input, id string) {
	menu := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "Task",
		Items: []ui.MenuItem{
			{Label: "Toggle Complete", Run: func() bool {
				if err := t.Toggle(id); err != nil {
					ui.MessageBox(d, kb, "Error", "Could not save changes")
				}
				return false
			}},
			{Label: "Delete", Run: func() bool {
				if !ui.Confirm(d, kb, "Delete task?") {
					return true
				}
				if err := t.Delete(id); err != nil {
					ui.MessageBox(d, kb, "Error", "Could not save changes")
				}
				return false
			}},
			{Label: "Back", Run: func() bool { return false }},
		},
	}
	menu.Show()
}

func (t *Todos) runAdd(d display.Device, kb keyboard.Input) {
	title, ok := promptField(d, kb, "Add Task", "Title:", 34)
	if !ok || title == "" {
		return
	}

	priority := PriorityNormal
	pick := &ui.Menu{
		Display:  d,
		Keyboard: kb,
		Title:    "Priority",
		Items: []ui.MenuItem{
			{Label: "High", Run: func() bool { priority = PriorityHigh; return false }},
			{Label: "Normal", Run: func() bool { priority = PriorityNormal; return false }},
			{Label: "Low", Run: func() bool { priority = PriorityLow; return false }},
		},
	}
	pick.Show()

	if _, err := t.Add(title, priority); err != nil {
		ui.MessageBox(d, kb, "Error", "Could not save changes")
		return
	}
	ui.MessageBox(d, kb, "To-Do List", "Task added")
}

func (t *Todos) runStats(d display.Device, kb keyboard.Input) {
	s := t.Stats()
	ui.MessageBox(d, kb, "Task Statistics",
		fmt.Sprintf("Total:         %d", s.Total),
		fmt.Sprintf("Completed:     %d", s.Completed),
		fmt.Sprintf("Pending:       %d", s.Pending),
		fmt.Sprintf("High priority: %d", s.HighPriority),
		fmt.Sprintf("Done:          %d%%", s.Percent))
}

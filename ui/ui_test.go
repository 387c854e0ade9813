package ui

import (
	"testing"

	"picopim/display"
	"picopim/keyboard"
)

func newScreen() *display.Recorder {
	return display.NewRecorder(display.PanelWidth, display.PanelHeight)
}

func TestMenuSelectAndClose(t *testing.T) {
	var ran []string
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Run: func() bool {
			ran = append(ran, label)
			return true
		}}
	}

	m := &Menu{
		Display:  newScreen(),
		Keyboard: keyboard.NewSim(keyboard.KeyDown, keyboard.KeyEnter, keyboard.KeyEsc),
		Title:    "Main Menu",
		Items:    []MenuItem{item("Calendar"), item("Notes"), item("Exit")},
	}
	m.Show()

	if len(ran) != 1 || ran[0] != "Notes" {
		t.Errorf("wanted [Notes] to run, got %v", ran)
	}
}

func TestMenuNumberShortcut(t *testing.T) {
	var ran []string
	m := &Menu{
		Display:  newScreen(),
		Keyboard: keyboard.NewSim(keyboard.Key('3'), keyboard.KeyEsc),
		Title:    "Main Menu",
		Items: []MenuItem{
			{Label: "Calendar", Run: func() bool { ran = append(ran, "Calendar"); return true }},
			{Label: "Notes", Run: func() bool { ran = append(ran, "Notes"); return true }},
			{Label: "Journal", Run: func() bool { ran = append(ran, "Journal"); return true }},
		},
	}
	m.Show()

	if len(ran) != 1 || ran[0] != "Journal" {
		t.Errorf("wanted [Journal] to run, got %v", ran)
	}
}

func TestMenuSelectionWraps(t *testing.T) {
	var got string
	m := &Menu{
		Display:  newScreen(),
		Keyboard: keyboard.NewSim(keyboard.KeyUp, keyboard.KeyEnter, keyboard.KeyEsc),
		Title:    "Main Menu",
		Items: []MenuItem{
			{Label: "First", Run: func() bool { got = "First"; return true }},
			{Label: "Last", Run: func() bool { got = "Last"; return true }},
		},
	}
	m.Show()

	if got != "Last" {
		t.Errorf("up from the first item should wrap to the last, ran %q", got)
	}
}

func TestMenuItemClosesMenu(t *testing.T) {
	m := &Menu{
		Display:  newScreen(),
		Keyboard: keyboard.NewSim(keyboard.KeyEnter),
		Title:    "Main Menu",
		Items:    []MenuItem{{Label: "Exit", Run: func() bool { return false }}},
	}
	m.Show() // must return without consuming an Esc
}

func TestInputDialogTyping(t *testing.T) {
	kb := keyboard.NewSim(keyboard.Key('h'), keyboard.Key('x'), keyboard.KeyBackspace, keyboard.Key('i'), keyboard.KeyEnter)
	in := &InputDialog{Display: newScreen(), Keyboard: kb, Title: "New Note", Prompt: "Title:"}

	got, ok := in.Show()
	if !ok || got != "hi" {
		t.Errorf("wanted (hi, true), got (%q, %v)", got, ok)
	}
}

func TestInputDialogCancel(t *testing.T) {
	kb := keyboard.NewSim(keyboard.Key('a'), keyboard.KeyEsc)
	in := &InputDialog{Display: newScreen(), Keyboard: kb, Title: "New Note", Prompt: "Title:"}

	got, ok := in.Show()
	if ok || got != "" {
		t.Errorf("wanted cancel, got (%q, %v)", got, ok)
	}
}

func TestInputDialogInitialValue(t *testing.T) {
	in := &InputDialog{
		Display:  newScreen(),
		Keyboard: keyboard.NewSim(keyboard.Key('!'), keyboard.KeyEnter),
		Title:    "Edit",
		Prompt:   "Text:",
		Value:    "hello",
	}

	got, ok := in.Show()
	if !ok || got != "hello!" {
		t.Errorf("wanted (hello!, true), got (%q, %v)", got, ok)
	}
}

func TestTextAreaEnterIsNewlineTabSaves(t *testing.T) {
	kb := keyboard.NewSim(keyboard.Key('a'), keyboard.KeyEnter, keyboard.Key('b'), keyboard.KeyTab)
	ta := &TextAreaDialog{Display: newScreen(), Keyboard: kb, Title: "Journal"}

	got, ok := ta.Show()
	if !ok || got != "a\nb" {
		t.Errorf("wanted (a\\nb, true), got (%q, %v)", got, ok)
	}
}

func TestConfirmDefaultsToNo(t *testing.T) {
	d := newScreen()
	if Confirm(d, keyboard.NewSim(keyboard.KeyEnter), "Delete note?") {
		t.Error("plain Enter should answer no")
	}
	if !Confirm(d, keyboard.NewSim(keyboard.KeyLeft, keyboard.KeyEnter), "Delete note?") {
		t.Error("moving to Yes then Enter should answer yes")
	}
	if Confirm(d, keyboard.NewSim(keyboard.KeyEsc), "Delete note?") {
		t.Error("Esc should answer no")
	}
	if !Confirm(d, keyboard.NewSim(keyboard.Key('y')), "Delete note?") {
		t.Error("'y' should answer yes")
	}
}

func TestListViewPick(t *testing.T) {
	l := &ListView{
		Display:  newScreen(),
		Keyboard: keyboard.NewSim(keyboard.KeyDown, keyboard.KeyDown, keyboard.KeyEnter),
		Title:    "Notes",
		Items:    []string{"one", "two", "three"},
	}

	i, ok := l.Show()
	if !ok || i != 2 {
		t.Errorf("wanted (2, true), got (%d, %v)", i, ok)
	}
}

func TestListViewEmpty(t *testing.T) {
	d := newScreen()
	l := &ListView{
		Display:  d,
		Keyboard: keyboard.NewSim(keyboard.KeyEnter),
		Title:    "Notes",
	}

	i, ok := l.Show()
	if ok || i != -1 {
		t.Errorf("wanted (-1, false), got (%d, %v)", i, ok)
	}
	if !d.HasText("(empty)") {
		t.Error("empty list should show the placeholder")
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "short line", text: "abc", width: 10, want: []string{"abc"}},
		{name: "hard wrap", text: "abcdef", width: 4, want: []string{"abcd", "ef"}},
		{name: "newlines kept", text: "ab\ncd", width: 10, want: []string{"ab", "cd"}},
		{name: "empty", text: "", width: 10, want: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := wrapLines(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wanted %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: wanted %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

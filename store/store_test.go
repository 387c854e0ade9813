package store

import (
	"path/filepath"
	"reflect"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())

	var got []record
	if err := s.Load("notes.json", &got); err != nil {
		t.Fatalf("load of missing file should be a no-op, got %v", err)
	}
	if got != nil {
		t.Errorf("wanted untouched nil slice, got %v", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "data"))

	want := []record{{ID: NewID(), Text: "buy milk"}, {ID: NewID(), Text: "call home"}}
	if err := s.Save("todos.json", want); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got []record
	if err := s.Load("todos.json", &got); err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wanted %v, got %v", want, got)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Save("bad.json", "not a list"); err != nil {
		t.Fatalf("save: %v", err)
	}

	var got []record
	if err := s.Load("bad.json", &got); err == nil {
		t.Error("wanted a decode error, got nil")
	}
}

func TestNewIDUnique(t *testing.T) {
	if NewID() == NewID() {
		t.Error("identifiers should be unique")
	}
}

func TestScoreBook(t *testing.T) {
	dir := t.TempDir()
	b, err := NewScoreBook(New(dir))
	if err != nil {
		t.Fatalf("new score book: %v", err)
	}

	if b.Best("tetris") != 0 {
		t.Error("fresh book should have no scores")
	}

	tests := []struct {
		name   string
		score  int
		isBest bool
	}{
		{name: "first score is a record", score: 100, isBest: true},
		{name: "lower score is not", score: 50, isBest: false},
		{name: "equal score is not", score: 100, isBest: false},
		{name: "higher score is", score: 240, isBest: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Record("tetris", tt.score)
			if err != nil {
				t.Fatalf("record: %v", err)
			}
			if got != tt.isBest {
				t.Errorf("Record(%d) = %v, want %v", tt.score, got, tt.isBest)
			}
		})
	}

	// records survive a reload
	b2, err := NewScoreBook(New(dir))
	if err != nil {
		t.Fatalf("reload score book: %v", err)
	}
	if b2.Best("tetris") != 240 {
		t.Errorf("wanted persisted best 240, got %d", b2.Best("tetris"))
	}
}

package keyboard

import (
	"testing"

	ek "github.com/eiannone/keyboard"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name   string
		event  ek.KeyEvent
		want   Key
		wantOK bool
	}{
		{
			name:   "arrow up",
			event:  ek.KeyEvent{Key: ek.KeyArrowUp},
			want:   KeyUp,
			wantOK: true,
		},
		{
			name:   "arrow left",
			event:  ek.KeyEvent{Key: ek.KeyArrowLeft},
			want:   KeyLeft,
			wantOK: true,
		},
		{
			name:   "enter",
			event:  ek.KeyEvent{Key: ek.KeyEnter},
			want:   KeyEnter,
			wantOK: true,
		},
		{
			name:   "ctrl-c maps to escape",
			event:  ek.KeyEvent{Key: ek.KeyCtrlC},
			want:   KeyEsc,
			wantOK: true,
		},
		{
			name:   "space",
			event:  ek.KeyEvent{Key: ek.KeySpace},
			want:   KeySpace,
			wantOK: true,
		},
		{
			name:   "printable rune",
			event:  ek.KeyEvent{Rune: 'q'},
			want:   Key('q'),
			wantOK: true,
		},
		{
			name:  "nothing",
			event: ek.KeyEvent{},
			want:  KeyNone,
		},
		{
			name:  "non-ascii rune dropped",
			event: ek.KeyEvent{Rune: 'é'},
			want:  KeyNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := translateEvent(tt.event)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("translateEvent() = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKeyPrintable(t *testing.T) {
	if !Key('a').Printable() || Key('a').Rune() != 'a' {
		t.Error("'a' should be printable")
	}
	if KeyEnter.Printable() {
		t.Error("enter should not be printable")
	}
	if KeyEsc.Rune() != 0 {
		t.Error("escape should have no rune")
	}
	if !KeySpace.Printable() {
		t.Error("space should be printable")
	}
}

func TestSim(t *testing.T) {
	s := NewSim(KeyDown, KeyEnter)

	if k, ok := s.Poll(); !ok || k != KeyDown {
		t.Errorf("wanted KeyDown, got (%v, %v)", k, ok)
	}
	if k, ok := s.Wait(0); !ok || k != KeyEnter {
		t.Errorf("wanted KeyEnter, got (%v, %v)", k, ok)
	}
	if _, ok := s.Poll(); ok {
		t.Error("empty script should report no key")
	}
	if _, ok := s.Wait(0); ok {
		t.Error("empty script should not block Wait")
	}

	s.PushText("hi")
	want := []Key{Key('h'), Key('i'), KeyEnter}
	for _, w := range want {
		k, ok := s.Poll()
		if !ok || k != w {
			t.Errorf("wanted %v, got (%v, %v)", w, k, ok)
		}
	}
}

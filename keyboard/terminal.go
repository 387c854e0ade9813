//go:build !tinygo

package keyboard

import (
	"fmt"
	"log/slog"
	"time"
	"unicode"

	ek "github.com/eiannone/keyboard"
)

// Terminal reads keys from the controlling terminal. The underlying library
// puts the terminal in raw mode and delivers events on a channel; Poll drains
// that channel without blocking.
type Terminal struct {
	events <-chan ek.KeyEvent
	logger *slog.Logger
}

func NewTerminal(logger *slog.Logger) (*Terminal, error) {
	events, err := ek.GetKeys(20)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Terminal{events: events, logger: logger}, nil
}

func (t *Terminal) Poll() (Key, bool) {
	select {
	case event, ok := <-t.events:
		if !ok {
			t.logger.Error("keyboard events channel closed unexpectedly")
			return KeyNone, false
		}
		return t.translate(event)
	default:
		return KeyNone, false
	}
}

func (t *Terminal) Wait(timeout time.Duration) (Key, bool) {
	var expire <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expire = timer.C
	}
	for {
		select {
		case event, ok := <-t.events:
			if !ok {
				t.logger.Error("keyboard events channel closed unexpectedly")
				return KeyNone, false
			}
			if k, ok := t.translate(event); ok {
				return k, true
			}
		case <-expire:
			return KeyNone, false
		}
	}
}

func (t *Terminal) Close() error {
	return ek.Close()
}

func (t *Terminal) translate(event ek.KeyEvent) (Key, bool) {
	if event.Err != nil {
		t.logger.Error("keyboard event error", slog.String("error", event.Err.Error()))
		return KeyNone, false
	}
	if k, ok := translateEvent(event); ok {
		return k, true
	}
	return KeyNone, false
}

func translateEvent(event ek.KeyEvent) (Key, bool) {
	switch event.Key {
	case ek.KeyArrowUp:
		return KeyUp, true
	case ek.KeyArrowDown:
		return KeyDown, true
	case ek.KeyArrowLeft:
		return KeyLeft, true
	case ek.KeyArrowRight:
		return KeyRight, true
	case ek.KeyEnter:
		return KeyEnter, true
	case ek.KeyEsc, ek.KeyCtrlC:
		return KeyEsc, true
	case ek.KeyBackspace, ek.KeyBackspace2:
		return KeyBackspace, true
	case ek.KeyTab:
		return KeyTab, true
	case ek.KeySpace:
		return KeySpace, true
	}
	if r := event.Rune; r != 0 && r <= unicode.MaxASCII {
		return Key(r), true
	}
	return KeyNone, false
}

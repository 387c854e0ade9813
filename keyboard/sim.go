package keyboard

import (
	"sync"
	"time"
)

// Sim is a scripted keyboard for tests and for running headless. Keys are
// consumed in the order they were pushed; an empty script reads as "no key"
// for both Poll and Wait so nothing ever blocks.
type Sim struct {
	mu   sync.Mutex
	keys []Key
}

func NewSim(keys ...Key) *Sim {
	return &Sim{keys: keys}
}

// Push appends keys to the script.
func (s *Sim) Push(keys ...Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, keys...)
}

// PushText appends the characters of text followed by Enter, the way a user
// would type into an input dialog.
func (s *Sim) PushText(text string) {
	keys := make([]Key, 0, len(text)+1)
	for _, r := range text {
		keys = append(keys, Key(r))
	}
	keys = append(keys, KeyEnter)
	s.Push(keys...)
}

func (s *Sim) Poll() (Key, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.keys) == 0 {
		return KeyNone, false
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, true
}

func (s *Sim) Wait(time.Duration) (Key, bool) {
	return s.Poll()
}

func (s *Sim) Close() error { return nil }

// Pending returns the number of unconsumed keys.
func (s *Sim) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

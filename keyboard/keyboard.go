// Package keyboard reads the Picocalc's matrix keyboard, or a stand-in for
// it. Polling is non-blocking: no pending key is a normal result, and the
// game loops rely on that.
package keyboard

import "time"

// Key identifies a pressed key. Printable keys carry their ASCII value;
// control keys use the codes the keyboard controller emits.
type Key uint16

const (
	KeyNone      Key = 0x00
	KeyUp        Key = 0x01
	KeyDown      Key = 0x02
	KeyLeft      Key = 0x03
	KeyRight     Key = 0x04
	KeyBackspace Key = 0x08
	KeyTab       Key = 0x09
	KeyEnter     Key = 0x0D
	KeyEsc       Key = 0x1B
	KeySpace     Key = 0x20
)

// Printable reports whether the key is a printable ASCII character.
func (k Key) Printable() bool {
	return k >= 0x20 && k <= 0x7E
}

// Rune returns the character for a printable key, 0 otherwise.
func (k Key) Rune() rune {
	if !k.Printable() {
		return 0
	}
	return rune(k)
}

// Input is the input source contract. Poll never blocks; Wait blocks until a
// key arrives or the timeout passes (a non-positive timeout waits forever).
type Input interface {
	Poll() (Key, bool)
	Wait(timeout time.Duration) (Key, bool)
	Close() error
}

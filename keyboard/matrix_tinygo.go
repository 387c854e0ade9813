//go:build tinygo

package keyboard

import (
	"errors"
	"log/slog"
	"machine"
	"time"
)

// keyboard controller address on the I2C bus (STM32 co-processor).
const matrixAddr = 0x55

// Matrix reads the 67-key matrix keyboard through the I2C co-processor. The
// controller reports the currently held key code, zero when idle; repeated
// reads of the same code are collapsed into one key event.
type Matrix struct {
	bus     *machine.I2C
	lastKey Key
	logger  *slog.Logger
}

func NewMatrix(logger *slog.Logger) (*Matrix, error) {
	bus := machine.I2C0
	err := bus.Configure(machine.I2CConfig{
		SCL:       machine.GP5,
		SDA:       machine.GP4,
		Frequency: 400000,
	})
	if err != nil {
		return nil, err
	}
	m := &Matrix{bus: bus, logger: logger}
	buf := make([]byte, 1)
	if err := bus.Tx(matrixAddr, nil, buf); err != nil {
		return nil, errors.New("keyboard controller not responding")
	}
	return m, nil
}

func (m *Matrix) Poll() (Key, bool) {
	buf := make([]byte, 1)
	if err := m.bus.Tx(matrixAddr, nil, buf); err != nil {
		return KeyNone, false
	}
	k := Key(buf[0])
	if k == KeyNone {
		m.lastKey = KeyNone
		return KeyNone, false
	}
	if k == m.lastKey {
		return KeyNone, false
	}
	m.lastKey = k
	return k, true
}

func (m *Matrix) Wait(timeout time.Duration) (Key, bool) {
	start := time.Now()
	for {
		if k, ok := m.Poll(); ok {
			return k, true
		}
		if timeout > 0 && time.Since(start) > timeout {
			return KeyNone, false
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func (m *Matrix) Close() error { return nil }

// Detect on the device itself: the matrix keyboard or nothing.
func Detect(logger *slog.Logger) Input {
	if m, err := NewMatrix(logger); err == nil {
		logger.Info("keyboard: i2c matrix")
		return m
	} else {
		logger.Warn("keyboard: controller not detected, input disabled", slog.String("reason", err.Error()))
	}
	return NewSim()
}

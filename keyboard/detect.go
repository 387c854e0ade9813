//go:build !tinygo

package keyboard

import "log/slog"

// Detect picks the best available input source: the I2C matrix keyboard when
// built for the device, the controlling terminal otherwise, and an empty
// scripted keyboard as the headless last resort.
func Detect(logger *slog.Logger) Input {
	if t, err := NewTerminal(logger); err == nil {
		logger.Info("keyboard: terminal")
		return t
	} else {
		logger.Warn("keyboard: no terminal, input disabled", slog.String("reason", err.Error()))
	}
	return NewSim()
}

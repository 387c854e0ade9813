//go:build !tinygo

package display

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Detect picks the best available backend: the hardware panel first, then the
// ANSI terminal stand-in, then the headless recorder. Detection never fails;
// the chosen backend is logged.
func Detect(logger *slog.Logger) Device {
	if d, err := probePanel(); err == nil {
		logger.Info("display: hardware panel")
		return d
	} else {
		logger.Debug("display: no hardware panel", slog.String("reason", err.Error()))
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Info("display: terminal stand-in")
		return NewTerminal(os.Stdout)
	}
	logger.Info("display: headless recorder")
	return NewRecorder(PanelWidth, PanelHeight)
}

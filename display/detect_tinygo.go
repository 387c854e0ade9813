//go:build tinygo

package display

import "log/slog"

// Detect on the device itself: the panel is the only backend.
func Detect(logger *slog.Logger) Device {
	d, err := probePanel()
	if err != nil {
		logger.Error("display: panel init failed", slog.String("error", err.Error()))
		return NewRecorder(PanelWidth, PanelHeight)
	}
	logger.Info("display: hardware panel")
	return d
}

//go:build !tinygo

package display

import "errors"

var errNoPanel = errors.New("not built for the device")

func probePanel() (Device, error) {
	return nil, errNoPanel
}

//go:build windows

package tui

import "os"

// Windows has no resize signal; watch keeps its starting size.
var resizeSignals []os.Signal

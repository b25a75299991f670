package model

import "time"

// Shared defaults used by the binary and its packages.
const (
	DefaultTickInterval  = 600 * time.Millisecond
	DefaultFrameInterval = 50 * time.Millisecond
	DefaultSkin          = "default"
	DefaultHistorySize   = 60
	DefaultAPIAddr       = "127.0.0.1:3300"
	DefaultMaxPrayer     = 99
)

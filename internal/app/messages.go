package app

import "time"

// TickMsg triggers one frame of the loop.
type TickMsg time.Time

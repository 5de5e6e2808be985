package asteroids

import "time"

// LoopData describes one frame handed down by the host loop.
type LoopData struct {
	Time  time.Time
	Frame int64
	Delta float64
}

package asteroids

import "sync/atomic"

// Lives is the player's life counter. The game state resets it and the
// player decrements it; both go through atomic updates.
type Lives struct {
	n atomic.Int32
}

func NewLives(n int) *Lives {
	l := &Lives{}
	l.n.Store(int32(n))
	return l
}

func (l *Lives) Count() int {
	return int(l.n.Load())
}

func (l *Lives) Set(n int) {
	l.n.Store(int32(n))
}

// TakeOne decrements the counter unless it is already zero.
func (l *Lives) TakeOne() bool {
	for {
		n := l.n.Load()
		if n <= 0 {
			return false
		}
		if l.n.CompareAndSwap(n, n-1) {
			return true
		}
	}
}

package metric

import "sync/atomic"

// Gauge tracks a current value along with the high-water mark it reached
// since the last emission.
type Gauge struct {
	cur int64
	max int64
}

func (g *Gauge) Inc() {
	cur := atomic.AddInt64(&g.cur, 1)

	for {
		max := atomic.LoadInt64(&g.max)
		if cur <= max || atomic.CompareAndSwapInt64(&g.max, max, cur) {
			return
		}
	}
}

func (g *Gauge) Dec() {
	atomic.AddInt64(&g.cur, -1)
}

func (g *Gauge) Set(val int64) {
	atomic.StoreInt64(&g.cur, val)

	for {
		max := atomic.LoadInt64(&g.max)
		if val <= max || atomic.CompareAndSwapInt64(&g.max, max, val) {
			return
		}
	}
}

// Max returns the high-water mark seen since the last call and resets it
// to the current value.
func (g *Gauge) Max() float64 {
	cur := atomic.LoadInt64(&g.cur)
	max := atomic.SwapInt64(&g.max, cur)

	if max < cur {
		max = cur
	}

	return float64(max)
}

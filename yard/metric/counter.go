package metric

import "sync/atomic"

// Counter accumulates increments between emissions. Delta drains the
// accumulated value, so each periodic tick reports only what happened
// since the previous one.
type Counter struct {
	cur int64
}

func (c *Counter) Inc() {
	atomic.AddInt64(&c.cur, 1)
}

func (c *Counter) IncDelta(delta int) {
	atomic.AddInt64(&c.cur, int64(delta))
}

func (c *Counter) Delta() float64 {
	return float64(atomic.SwapInt64(&c.cur, 0))
}

package emitter

import "sync/atomic"

// onceListener runs the wrapped listener at most once, then detaches itself.
type onceListener struct {
	listener Listener
	fired    atomic.Bool
	detach   func(Listener)
}

func newOnceListener(l Listener, detach func(Listener)) *onceListener {
	return &onceListener{listener: l, detach: detach}
}

func (o *onceListener) HandleEvent(args ...any) any {
	// claimed before the call so re-entrant emits cannot run it again
	if !o.fired.CompareAndSwap(false, true) {
		return nil
	}
	defer o.detach(o)
	return Invoke(o.listener, args...)
}

func (o *onceListener) Unwrap() Listener {
	return o.listener
}

// manyListener runs the wrapped listener limit times, detaching on the last
// call. A limit of zero or less never detaches.
type manyListener struct {
	listener Listener
	limit    int64
	calls    atomic.Int64
	detach   func(Listener)
}

func newManyListener(l Listener, limit int, detach func(Listener)) *manyListener {
	return &manyListener{listener: l, limit: int64(limit), detach: detach}
}

func (m *manyListener) HandleEvent(args ...any) any {
	if m.limit <= 0 {
		return Invoke(m.listener, args...)
	}

	n := m.calls.Add(1)
	if n > m.limit {
		return nil
	}
	if n == m.limit {
		defer m.detach(m)
	}
	return Invoke(m.listener, args...)
}

func (m *manyListener) Unwrap() Listener {
	return m.listener
}

package emitter_test

import (
	"io"
	"log/slog"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/emitter"
)

// spy records every call and returns a fixed result.
type spy struct {
	mu     sync.Mutex
	calls  [][]any
	result any
}

func newSpy() *spy {
	return &spy{}
}

func returning(result any) *spy {
	return &spy{result: result}
}

func (s *spy) HandleEvent(args ...any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, args)
	return s.result
}

func (s *spy) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *spy) lastCall() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil
	}
	return s.calls[len(s.calls)-1]
}

// mockListener is a listener exposing only the handle method.
type mockListener struct {
	mock.Mock
}

func (m *mockListener) HandleEvent(args ...any) any {
	return m.Called(args...).Get(0)
}

// stub returns a fresh listener with its own identity.
func stub() emitter.Listener {
	return emitter.Func(func(args ...any) any { return nil })
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newDispatcher returns a dispatcher without registration notifications,
// so wildcard listeners only see the events a test emits.
func newDispatcher(opts ...emitter.Option) *emitter.Dispatcher {
	base := []emitter.Option{
		emitter.WithLogger(quietLogger()),
		emitter.WithoutNewListenerEvent(),
	}
	return emitter.New(append(base, opts...)...)
}

func containsListener(list []emitter.Listener, l emitter.Listener) bool {
	for _, x := range list {
		if x == l {
			return true
		}
	}
	return false
}

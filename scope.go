package emitter

import "github.com/dmitrymomot/emitter/pkg/wildcard"

// Scope prefixes every event name with its name and the dispatcher's
// separator before delegating to the shared dispatcher. Scopes hold no
// listeners of their own and may be created and dropped freely.
//
//	users := d.Namespace("users")
//	users.On("created", l)           // registers "users:created"
//	users.Namespace("admin").Emit("x") // emits "users:admin:x"
type Scope struct {
	dispatcher *Dispatcher
	name       string
}

// Namespace returns a scope named segment over d.
func (d *Dispatcher) Namespace(segment string) *Scope {
	return &Scope{dispatcher: d, name: segment}
}

// Namespace returns a child scope whose name is s's name, the separator and segment.
func (s *Scope) Namespace(segment string) *Scope {
	return &Scope{dispatcher: s.dispatcher, name: s.event(segment)}
}

// Name returns the effective prefix, e.g. "a:b" for a nested scope.
func (s *Scope) Name() string {
	return s.name
}

// Dispatcher returns the shared underlying dispatcher.
func (s *Scope) Dispatcher() *Dispatcher {
	return s.dispatcher
}

func (s *Scope) event(name string) string {
	return s.name + s.dispatcher.separator + name
}

// everything matches all events under the scope.
func (s *Scope) everything() string {
	return s.event(wildcard.Token)
}

// Emit emits the scoped event on the dispatcher.
func (s *Scope) Emit(event string, args ...any) *Scope {
	s.dispatcher.Emit(s.event(event), args...)
	return s
}

// On registers l on the scoped event.
func (s *Scope) On(event string, l Listener) {
	s.dispatcher.On(s.event(event), l)
}

// OnFunc registers fn on the scoped event and returns its handle.
func (s *Scope) OnFunc(event string, fn func(args ...any) any) Listener {
	return s.dispatcher.OnFunc(s.event(event), fn)
}

// Once registers l on the scoped event to run at most once.
func (s *Scope) Once(event string, l Listener) {
	s.dispatcher.Once(s.event(event), l)
}

// Many registers l on the scoped event to run n times.
func (s *Scope) Many(event string, l Listener, n int) {
	s.dispatcher.Many(s.event(event), l, n)
}

// Off removes the first occurrence of l under the scoped query.
func (s *Scope) Off(event string, l Listener) {
	s.dispatcher.Off(s.event(event), l)
}

// OffEvery removes every occurrence of l under the scoped query.
func (s *Scope) OffEvery(event string, l Listener) {
	s.dispatcher.OffEvery(s.event(event), l)
}

// RemoveAll empties the slots matched by the scoped query.
func (s *Scope) RemoveAll(event string) {
	s.dispatcher.RemoveAll(s.event(event))
}

// Reset empties every slot under the scope.
func (s *Scope) Reset() {
	s.dispatcher.RemoveAll(s.everything())
}

// Count counts listeners overlapping the scoped event.
func (s *Scope) Count(event string) int {
	return s.dispatcher.Count(s.event(event))
}

// CountAll counts every listener under the scope.
func (s *Scope) CountAll() int {
	return s.dispatcher.Count(s.everything())
}

// Listeners returns listeners overlapping the scoped event.
func (s *Scope) Listeners(event string) []Listener {
	return s.dispatcher.Listeners(s.event(event))
}

// AllListeners returns every listener under the scope.
func (s *Scope) AllListeners() []Listener {
	return s.dispatcher.Listeners(s.everything())
}

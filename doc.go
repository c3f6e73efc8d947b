// Package emitter provides a synchronous, in-process publish/subscribe
// dispatcher with wildcard event patterns and prefixing scopes.
//
// # Listeners
//
// A Listener is anything with a HandleEvent(args ...any) any method. Plain
// functions are adapted with Func, typed payload handlers with Typed:
//
//	d := emitter.New()
//
//	greet := emitter.Func(func(args ...any) any {
//		fmt.Println(args...) // "hello world greet"
//		return nil
//	})
//	d.On("greet", greet)
//	d.Emit("greet", "hello", "world")
//	d.Off("greet", greet)
//
// The emitted event name is always appended as the last argument.
//
// # Patterns
//
// Event names may contain "*", which matches any run of characters. Matching
// is symmetric for Emit, Count and Listeners: emitting "user:*" reaches
// listeners on "user:created", and emitting "user:created" reaches listeners
// on "user:*". Off, OffEvery and RemoveAll treat only the query as a pattern,
// so removing "user:created" never touches a listener registered on "user:*".
//
// # Lifecycle
//
// Once runs a listener a single time; Many runs it n times. Both remove
// themselves from the dispatcher when spent. A listener returning exactly
// false stops the current emission. Every registration emits "newListener"
// with the pattern and the listener; see WithNewListenerEvent.
//
// # Scopes
//
// Namespace returns a Scope that prefixes event names:
//
//	users := d.Namespace("users")
//	users.On("created", l)          // "users:created"
//	users.Namespace("admin").Emit("x") // "users:admin:x"
//	users.CountAll()                // everything under "users:*"
//
// # Configuration
//
// New uses DefaultConfig. NewFromEnv reads EMITTER_SEPARATOR,
// EMITTER_NEW_LISTENER_EVENT and EMITTER_DISABLE_NEW_LISTENER through
// core/config. Diagnostics go to slog.Default() unless WithLogger is given.
//
// # Concurrency
//
// Emission is synchronous: every matched listener has run when Emit returns.
// A Dispatcher is safe for concurrent use; listeners are never called with
// the registry lock held, so they may re-enter the dispatcher.
package emitter

// Package wildcard compiles event-name patterns into anchored matchers.
//
// A pattern is a plain string in which every "*" stands for any run of
// characters, including none. Everything else is matched literally, so
// "user.created" never matches "userXcreated". A pattern without "*" matches
// only itself.
//
//	m := wildcard.Compile("scope:*")
//	m.Match("scope:event") // true
//	m.Match("other-event") // false
//	m.String()             // "^scope:.*$"
//
// Compiled matchers are memoized in a process-wide cache keyed by the pattern
// text. The cache is append-only and shared by every caller, so compiling the
// same pattern twice returns the same matcher.
//
// Overlaps implements the symmetric test used for event dispatch: two
// patterns overlap when either one, treated as a pattern, matches the other
// treated as a literal.
package wildcard

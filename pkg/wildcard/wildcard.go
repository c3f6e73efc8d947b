package wildcard

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/emitter/core/cache"
)

// Token is the wildcard token recognized in patterns.
const Token = "*"

var compiled = cache.New[string, *Matcher]()

// Matcher tests literal strings against a compiled pattern.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
}

// Compile returns the matcher for pattern, compiling it on first use.
func Compile(pattern string) *Matcher {
	return compiled.GetOrCompute(pattern, func() *Matcher {
		return &Matcher{
			pattern: pattern,
			re:      regexp.MustCompile(expression(pattern)),
		}
	})
}

// expression never fails to compile: literal pieces are quoted.
func expression(pattern string) string {
	parts := strings.Split(pattern, Token)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return "^" + strings.Join(parts, ".*") + "$"
}

// Match reports whether s matches the whole pattern.
func (m *Matcher) Match(s string) bool {
	return m.re.MatchString(s)
}

// Pattern returns the source pattern.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// String returns the anchored expression the pattern compiles to.
func (m *Matcher) String() string {
	return m.re.String()
}

// Match reports whether pattern matches the literal s.
func Match(pattern, s string) bool {
	return Compile(pattern).Match(s)
}

// Overlaps reports whether a matches b or b matches a.
func Overlaps(a, b string) bool {
	return Match(a, b) || Match(b, a)
}

// HasWildcard reports whether pattern contains the wildcard token.
func HasWildcard(pattern string) bool {
	return strings.Contains(pattern, Token)
}

// CacheLen returns the number of distinct patterns compiled so far in this process.
func CacheLen() int {
	return compiled.Len()
}

// Package cache provides a thread-safe, generic memoization table.
//
// Entries are inserted once and never evicted, which suits caches whose key
// space is bounded by the program itself (compiled patterns, parsed
// templates, reflected type metadata).
//
// # Usage
//
//	import "github.com/dmitrymomot/emitter/core/cache"
//
//	c := cache.New[string, *regexp.Regexp]()
//
//	re := c.GetOrCompute("^user:.*$", func() *regexp.Regexp {
//		return regexp.MustCompile("^user:.*$")
//	})
//
//	if re, found := c.Get("^user:.*$"); found {
//		fmt.Println(re.String())
//	}
//
// # Concurrency
//
// Reads take a shared lock. GetOrCompute may run the compute function more
// than once when two goroutines miss the same key at the same time; only the
// first stored value is kept and returned to both callers, so compute
// functions must be pure.
package cache

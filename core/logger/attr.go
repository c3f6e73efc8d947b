package logger

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Attribute helpers return the empty Attr for nil or empty input, so calls like
// log.Info("msg", logger.Error(err)) need no nil checks. slog drops empty Attrs.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Keys are the argument indexes, so gaps show which errors were nil.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic records a recovered panic value under the key "panic".
func Panic(recovered any) slog.Attr {
	if recovered == nil {
		return slog.Attr{}
	}
	return slog.Any("panic", recovered)
}

// ============================================================================
// Dispatch Metadata
// ============================================================================

// ID creates an identifier attribute with a custom key.
func ID(key, value string) slog.Attr {
	if value == "" {
		return slog.Attr{}
	}
	return slog.String(key, value)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Pattern creates an attribute for a registered or queried event pattern.
func Pattern(p string) slog.Attr {
	return slog.String("pattern", p)
}

// Listener records the dynamic type of a listener, never its value.
func Listener(l any) slog.Attr {
	if l == nil {
		return slog.Attr{}
	}
	return slog.String("listener", fmt.Sprintf("%T", l))
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key creates a generic key-value attribute.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// ============================================================================
// Debugging
// ============================================================================

// Stack captures the current goroutine's stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}

// StackFrom wraps an already captured stack trace.
func StackFrom(stack []byte) slog.Attr {
	if len(stack) == 0 {
		return slog.Attr{}
	}
	return slog.String("stack", string(stack))
}

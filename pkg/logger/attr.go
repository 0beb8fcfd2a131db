package logger

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/domainkit"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
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
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ValidationErrors records the path-to-messages map carried by a
// validation failure under the key "validation". Any other error, or nil,
// yields an empty Attr.
func ValidationErrors(err error) slog.Attr {
	var failure *domainkit.ValidationFailure
	if !errors.As(err, &failure) {
		return slog.Attr{}
	}
	return slog.Any("validation", failure.Errors())
}

// Path records a field path such as "addresses[0].city" under the key "path".
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Lifecycle records how an entity was obtained under the key "lifecycle".
func Lifecycle(l domainkit.Lifecycle) slog.Attr {
	return slog.String("lifecycle", l.String())
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

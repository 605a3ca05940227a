package log

import (
	"fmt"
	"log/slog"
)

// Error returns an attribute holding the error and its stack trace, when
// one was recorded with github.com/pkg/errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}

	return slog.Group("error",
		slog.String("message", err.Error()),
		slog.String("stack", fmt.Sprintf("%+v", err)),
	)
}

package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/kvstored/kvstored/internal"
)

// ErrorHandler maps handler errors to plain-text responses. HTTPError values
// carry their own status and user-facing message; anything else (including
// recovered panics) becomes an opaque 500.
func ErrorHandler() internal.ErrorHandler {
	return func(c internal.Context, err error) error {
		if httpErr := internal.AsHTTPError(err); httpErr != nil {
			if httpErr.Code >= http.StatusInternalServerError {
				cause := httpErr.Err
				if cause == nil {
					cause = httpErr
				}
				c.LogError("request failed",
					slog.Int("status", httpErr.Code),
					slog.Any("error", cause),
				)
			}
			return c.String(httpErr.Code, httpErr.Message)
		}

		c.LogError("unhandled error", slog.Any("error", err))
		return c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}

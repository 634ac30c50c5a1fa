// Package middlewares provides HTTP middleware for the key-value store's
// request dispatcher.
//
// This package includes four essential middlewares:
//
// # Request ID
//
// RequestID middleware assigns a unique ID to each request for tracing and debugging.
// It checks incoming headers for existing IDs or generates new ones using ULID.
//
//	app := internal.New(
//	    internal.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// Use RequestIDExtractor() with WithLogger for automatic request_id in all logs:
//
//	app := internal.New(
//	    internal.WithLogger("api", middlewares.RequestIDExtractor()),
//	    internal.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// # Recover
//
// Recover middleware catches panics and converts them to typed errors.
// The PanicError can be handled by the global ErrorHandler.
//
//	app := internal.New(
//	    internal.WithMiddleware(
//	        middlewares.Recover(),
//	    ),
//	    internal.WithErrorHandler(func(c internal.Context, err error) error {
//	        if middlewares.IsPanicError(err) {
//	            pe, _ := middlewares.AsPanicError(err)
//	            c.LogError("panic", "value", pe.Value, "stack", string(pe.Stack))
//	            return c.String(500, "Internal Server Error")
//	        }
//	        return c.String(500, err.Error())
//	    }),
//	)
//
// # Timeout
//
// Timeout middleware enforces request timeouts and returns typed TimeoutError.
// Note: the handler goroutine continues after timeout; use context.Done() for
// early termination on long-running backend calls.
//
//	app := internal.New(
//	    internal.WithMiddleware(
//	        middlewares.Timeout(5*time.Second),
//	    ),
//	)
//
// # CORS
//
// CORS middleware handles Cross-Origin Resource Sharing headers.
// It processes preflight (OPTIONS) requests and adds CORS headers to all responses.
//
//	app := internal.New(
//	    internal.WithMiddleware(
//	        middlewares.CORS(),
//	    ),
//	)
//
// # Recommended Middleware Order
//
//	internal.WithMiddleware(
//	    middlewares.CORS(),
//	    middlewares.RequestID(),
//	    middlewares.Recover(),
//	    middlewares.Timeout(5*time.Second),
//	)
package middlewares

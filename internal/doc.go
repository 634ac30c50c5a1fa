// Package internal provides the core HTTP scaffolding used to build the
// key-value store's request dispatcher: application lifecycle, routing,
// middleware composition, and graceful shutdown.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, and graceful shutdown
//   - Context: Provides request/response access and logging helpers
//   - Router: Interface handlers use to declare routes
//   - Handler: Interface implemented by types that declare routes on a router
//   - HandlerFunc: Signature for individual route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed directly to any
// function that expects a standard library context:
//
//	func (h *Handler) read(c internal.Context) error {
//	    value, _, err := h.store.Read(c, c.Query("key"))
//	    if err != nil {
//	        return err
//	    }
//	    return c.String(http.StatusOK, value)
//	}
//
// # Application Structure
//
// Create an application with New() and configure it using options:
//
//	app := internal.New(
//	    internal.WithHandlers(httpapi.NewHandler(coordinator)),
//	    internal.WithMiddleware(middlewares.Recover(), middlewares.RequestID()),
//	    internal.WithHealthChecks(internal.WithReadinessCheck("backend", pool.Healthcheck)),
//	)
//
// # Handler Pattern
//
// Handlers implement the Handler interface and declare routes. They receive
// dependencies via constructor injection, not context helpers.
//
// # Error Handling
//
// Errors returned from handlers trigger the ErrorHandler, typically mapping
// *HTTPError values to status codes and plain-text bodies.
package internal

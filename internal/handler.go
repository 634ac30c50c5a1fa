package internal

// Handler declares routes on a router.
//
// Example:
//
//	type KVHandler struct {
//	    store *coordinator.Coordinator
//	}
//
//	func (h *KVHandler) Routes(r internal.Router) {
//	    r.POST("/create", h.create)
//	    r.GET("/read", h.read)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It receives a Context and returns an error.
// Returning a non-nil error triggers the error handling middleware.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect/modify the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func Audit(next internal.HandlerFunc) internal.HandlerFunc {
//	    return func(c internal.Context) error {
//	        c.LogInfo("request", "path", c.Request().URL.Path)
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error

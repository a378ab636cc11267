package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so the first one given runs outermost:
// Chain(mw1, mw2)(h) is mw1(mw2(h)). The app relies on this to put Recovery
// around everything and to run RequestID and Auth before the access logger
// reads request id and user id from the context.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

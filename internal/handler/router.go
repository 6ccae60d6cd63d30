package handler

import "net/http"

// Route binds one method and path to a handler. Alias, when set, is the
// "rota" query value that also resolves to this route, a fallback kept for
// clients whose hosting rewrites paths.
type Route struct {
	Method string
	Path   string
	Alias  string
	Handle http.HandlerFunc
}

// Router dispatches requests against a single route table. Resolution order:
// exact path plus method first, then alias plus method; the first match wins.
// A path that exists under a different method still falls through to 404.
type Router struct {
	routes []Route
}

// NewRouter creates a router over the given table.
func NewRouter(routes []Route) *Router {
	return &Router{routes: routes}
}

// Resolve selects the handler for a request, reporting whether any route
// matched.
func (rt *Router) Resolve(method, path, alias string) (http.HandlerFunc, bool) {
	for _, route := range rt.routes {
		if route.Method == method && route.Path == path {
			return route.Handle, true
		}
	}
	if alias != "" {
		for _, route := range rt.routes {
			if route.Method == method && route.Alias == alias {
				return route.Handle, true
			}
		}
	}
	return nil, false
}

// ServeHTTP dispatches to the resolved handler or writes the 404 envelope.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, ok := rt.Resolve(r.Method, r.URL.Path, r.URL.Query().Get("rota"))
	if !ok {
		WriteError(w, http.StatusNotFound, "Rota não encontrada.")
		return
	}
	h(w, r)
}

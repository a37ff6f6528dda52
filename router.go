package respond

import (
	"strings"

	"github.com/Murilinho145SG/respond/httpio"
	"github.com/Murilinho145SG/respond/log"
)

// Handler fills in the response for a request through w.
type Handler func(w *httpio.Writer, r *httpio.Request)

type HandlersList map[string]Handler

// Router maps exact request paths to handlers. Routes must be registered
// before the router is served.
type Router struct {
	Routes HandlersList
}

func NewRouter() *Router {
	return &Router{
		Routes: make(HandlersList),
	}
}

func (r *Router) Route(route string, handler Handler) {
	log.Info("Registering " + route)
	r.Routes[route] = handler
}

// ParseRoute returns the handler for the request path, ignoring the query
// string, or nil when nothing is registered.
func (r *Router) ParseRoute(req *httpio.Request) Handler {
	if req == nil {
		return nil
	}

	path, _, _ := strings.Cut(req.Path, "?")
	return r.Routes[path]
}

// Group registers routes under a common prefix.
type Group struct {
	prefix string
	router *Router
}

// Group calls fn with a Group whose routes are prefixed with prefix.
func (r *Router) Group(prefix string, fn func(g *Group)) {
	fn(&Group{
		prefix: strings.TrimSuffix(prefix, "/"),
		router: r,
	})
}

func (g *Group) Route(route string, handler Handler) {
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}

	g.router.Route(g.prefix+route, handler)
}

// Package router implements the fragment-based route table used by the
// single-page client: patterns with :name placeholders, first match wins,
// unmatched locations redirect home. The core is independent of any browser
// environment; a Location implementation adapts it to the real address bar.
package router

import (
	"net/url"
	"regexp"
	"strings"
	"sync"
)

// Params maps placeholder names to their URL-decoded segment values.
type Params map[string]string

// Handler is invoked when its route matches the current location.
type Handler func(Params)

// Location is the navigation environment the router dispatches on. Navigate
// must fire change listeners only when the fragment actually changes, which
// mirrors hashchange semantics and keeps the home redirect from looping.
type Location interface {
	Fragment() string
	Navigate(path string)
	OnChange(fn func())
}

type route struct {
	pattern    string
	re         *regexp.Regexp
	paramNames []string
	handler    Handler
}

// Route describes the currently resolved location.
type Route struct {
	Pattern string
	Params  Params
	Path    string
}

// Router dispatches the current location against registered patterns in
// registration order.
type Router struct {
	loc     Location
	routes  []route
	current *Route
}

// New builds a router on top of loc and re-resolves on every location change.
func New(loc Location) *Router {
	r := &Router{loc: loc}
	loc.OnChange(func() { r.Resolve() })
	return r
}

// compile turns "/client/:slug/month/:month" into an anchored regexp with one
// ([^/]+) capture per placeholder. Literal segments are quoted, and parameter
// segments cannot span a path separator.
func compile(pattern string) (*regexp.Regexp, []string) {
	segments := strings.Split(pattern, "/")
	var names []string
	parts := make([]string, len(segments))
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") && len(seg) > 1 {
			names = append(names, seg[1:])
			parts[i] = "([^/]+)"
		} else {
			parts[i] = regexp.QuoteMeta(seg)
		}
	}
	return regexp.MustCompile("^" + strings.Join(parts, "/") + "$"), names
}

// Register adds a pattern and its handler. Registration order is dispatch
// order. Returns the router to allow chaining.
func (r *Router) Register(pattern string, handler Handler) *Router {
	re, names := compile(pattern)
	r.routes = append(r.routes, route{
		pattern:    pattern,
		re:         re,
		paramNames: names,
		handler:    handler,
	})
	return r
}

// Resolve matches the current fragment (default "/") against the registered
// patterns in order and invokes the first match's handler. Parameter values
// are percent-decoded after extraction, never before matching. When nothing
// matches, the router redirects home.
func (r *Router) Resolve() {
	path := r.loc.Fragment()
	if path == "" {
		path = "/"
	}
	for _, rt := range r.routes {
		m := rt.re.FindStringSubmatch(path)
		if m == nil {
			continue
		}
		params := Params{}
		for i, name := range rt.paramNames {
			val := m[i+1]
			if dec, err := url.PathUnescape(val); err == nil {
				val = dec
			}
			params[name] = val
		}
		r.current = &Route{Pattern: rt.pattern, Params: params, Path: path}
		rt.handler(params)
		return
	}
	r.Navigate("/")
}

// Navigate changes the location fragment, which triggers re-resolution
// through the location's change event.
func (r *Router) Navigate(path string) {
	r.loc.Navigate(path)
}

// Start performs the initial resolve for the location present at load time.
func (r *Router) Start() {
	r.Resolve()
}

// Current returns the last successfully resolved route, or nil before the
// first resolve.
func (r *Router) Current() *Route {
	return r.current
}

// MemoryLocation is an in-process Location used by tests and by server-side
// dispatch. Navigate only notifies listeners when the fragment changes.
type MemoryLocation struct {
	mu        sync.Mutex
	fragment  string
	listeners []func()
}

func NewMemoryLocation(fragment string) *MemoryLocation {
	return &MemoryLocation{fragment: fragment}
}

func (l *MemoryLocation) Fragment() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fragment
}

func (l *MemoryLocation) Navigate(path string) {
	l.mu.Lock()
	if l.fragment == path {
		l.mu.Unlock()
		return
	}
	l.fragment = path
	listeners := make([]func(), len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func (l *MemoryLocation) OnChange(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

package web

import (
	"fmt"
	"net/url"
	"strings"
)

// Route binds a path pattern to a named view.
//
// Pattern segments are either literals, a single-segment parameter written
// {name}, or a trailing remainder parameter written {name...}. The pattern
// "/{name...}" matches every path and is the table's catch-all.
type Route struct {
	Pattern string
	Name    string
	View    ViewDef
}

// Match is the result of resolving a path against a Table.
// Fallback is true when no route before the catch-all matched.
type Match struct {
	Route    Route
	Params   map[string]string
	Fallback bool
}

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentParam
	segmentRest
)

type segment struct {
	kind  segmentKind
	value string
}

type compiledRoute struct {
	route    Route
	segments []segment
}

// Table is an immutable, ordered list of routes resolved first-match-wins.
// A Table is safe for concurrent use.
type Table struct {
	routes []compiledRoute
	names  map[string]int
}

// NewTable compiles routes in declaration order. The list must be non-empty,
// names must be unique, and exactly one catch-all route must be declared last.
func NewTable(routes ...Route) (*Table, error) {
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	t := &Table{
		routes: make([]compiledRoute, 0, len(routes)),
		names:  make(map[string]int, len(routes)),
	}

	catchAlls := 0
	for i, r := range routes {
		if r.Name == "" {
			return nil, fmt.Errorf("route %d (%s): %w", i, r.Pattern, ErrMissingName)
		}
		if _, exists := t.names[r.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, r.Name)
		}

		segments, err := parsePattern(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("route %s: %w", r.Name, err)
		}

		c := compiledRoute{route: r, segments: segments}
		if c.catchAll() {
			catchAlls++
			if i != len(routes)-1 {
				return nil, fmt.Errorf("%w: %s is declared at position %d of %d", ErrCatchAll, r.Name, i+1, len(routes))
			}
		}

		t.names[r.Name] = i
		t.routes = append(t.routes, c)
	}

	if catchAlls != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrCatchAll, catchAlls)
	}

	return t, nil
}

// MustTable is like NewTable but panics on error. It is intended for
// package-level route declarations.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the first route whose pattern matches path. Every path
// resolves: when nothing else matches, the catch-all route is returned with
// Fallback set.
func (t *Table) Resolve(path string) Match {
	parts := splitPath(path)
	last := len(t.routes) - 1

	for i := range t.routes {
		if params, ok := t.routes[i].match(parts); ok {
			return Match{
				Route:    t.routes[i].route,
				Params:   params,
				Fallback: i == last,
			}
		}
	}

	return Match{Route: t.routes[last].route, Fallback: true}
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	routes := make([]Route, len(t.routes))
	for i, c := range t.routes {
		routes[i] = c.route
	}
	return routes
}

// Lookup returns the route with the given name.
func (t *Table) Lookup(name string) (Route, bool) {
	i, ok := t.names[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i].route, true
}

// CatchAll returns the table's terminal catch-all route.
func (t *Table) CatchAll() Route {
	return t.routes[len(t.routes)-1].route
}

// Path builds the URL path for the named route, substituting params.
// Remainder parameters may be empty; single-segment parameters may not,
// and may not contain "/". Values that the HTTP layer would decode or clean
// into a different path are rejected with ErrInvalidParam.
func (t *Table) Path(name string, params map[string]string) (string, error) {
	i, ok := t.names[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownRoute, name)
	}

	var b strings.Builder
	for _, seg := range t.routes[i].segments {
		switch seg.kind {
		case segmentLiteral:
			b.WriteString("/")
			b.WriteString(seg.value)
		case segmentParam:
			v := params[seg.value]
			if v == "" {
				return "", fmt.Errorf("%w: %s requires %s", ErrMissingParam, name, seg.value)
			}
			if strings.Contains(v, "/") || dotSegment(v) {
				return "", fmt.Errorf("%w: %s=%q is not a single segment", ErrInvalidParam, seg.value, v)
			}
			b.WriteString("/")
			b.WriteString(url.PathEscape(v))
		case segmentRest:
			v := strings.Trim(params[seg.value], "/")
			if v == "" {
				continue
			}
			for _, part := range strings.Split(v, "/") {
				if dotSegment(part) {
					return "", fmt.Errorf("%w: %s=%q contains a dot segment", ErrInvalidParam, seg.value, v)
				}
				b.WriteString("/")
				b.WriteString(url.PathEscape(part))
			}
		}
	}

	if b.Len() == 0 {
		return "/", nil
	}
	return b.String(), nil
}

func (c *compiledRoute) catchAll() bool {
	return len(c.segments) == 1 && c.segments[0].kind == segmentRest
}

func (c *compiledRoute) match(parts []string) (map[string]string, bool) {
	var params map[string]string

	for i, seg := range c.segments {
		if seg.kind == segmentRest {
			if params == nil {
				params = make(map[string]string, 1)
			}
			params[seg.value] = strings.Join(parts[i:], "/")
			return params, true
		}

		if i >= len(parts) {
			return nil, false
		}

		switch seg.kind {
		case segmentLiteral:
			if parts[i] != seg.value {
				return nil, false
			}
		case segmentParam:
			if parts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, len(c.segments))
			}
			params[seg.value] = parts[i]
		}
	}

	if len(parts) != len(c.segments) {
		return nil, false
	}
	return params, true
}

func dotSegment(s string) bool {
	return s == "." || s == ".."
}

func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}

func parsePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, pattern)
	}
	if pattern == "/" {
		return nil, nil
	}

	parts := strings.Split(pattern[1:], "/")
	segments := make([]segment, 0, len(parts))
	seen := make(map[string]bool)

	for i, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPattern, pattern)
		}

		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return nil, fmt.Errorf("%w: %q has a malformed segment %q", ErrInvalidPattern, pattern, part)
			}
			segments = append(segments, segment{kind: segmentLiteral, value: part})
			continue
		}

		if !strings.HasSuffix(part, "}") {
			return nil, fmt.Errorf("%w: %q has an unterminated parameter %q", ErrInvalidPattern, pattern, part)
		}

		name := part[1 : len(part)-1]
		kind := segmentParam
		if rest, ok := strings.CutSuffix(name, "..."); ok {
			if i != len(parts)-1 {
				return nil, fmt.Errorf("%w: %q remainder parameter must be last", ErrInvalidPattern, pattern)
			}
			name = rest
			kind = segmentRest
		}

		if !validParamName(name) {
			return nil, fmt.Errorf("%w: %q has an invalid parameter name %q", ErrInvalidPattern, pattern, name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q repeats parameter %q", ErrInvalidPattern, pattern, name)
		}
		seen[name] = true

		segments = append(segments, segment{kind: kind, value: name})
	}

	return segments, nil
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

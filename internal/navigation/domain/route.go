package domain

import (
	"errors"
	"fmt"
	"path"
	"strings"

	pkgstrings "github.com/klwxsrx/kahuna-console/pkg/strings"
)

var ErrInvalidRouteTable = errors.New("invalid route table")

type (
	// RouteConfig describes a route the way the application declares it, children have paths relative to the parent.
	RouteConfig struct {
		Path       string
		Name       string
		Public     bool
		Roles      []string
		RedirectTo string
		Children   []RouteConfig
	}

	Route struct {
		Path         string
		Name         string
		RequiresAuth bool
		Roles        []string
		RedirectTo   string
	}

	RouteTable struct {
		routes []Route
		byPath map[string]int
	}
)

// IsRedirect reports whether the route only forwards to another path.
func (r Route) IsRedirect() bool {
	return r.RedirectTo != ""
}

// NewRouteTable flattens configs, a child without its own roles inherits the parent ones.
func NewRouteTable(configs ...RouteConfig) (*RouteTable, error) {
	table := &RouteTable{byPath: make(map[string]int)}
	for _, config := range configs {
		err := table.add("/", nil, config)
		if err != nil {
			return nil, err
		}
	}

	return table, nil
}

func MustNewRouteTable(configs ...RouteConfig) *RouteTable {
	table, err := NewRouteTable(configs...)
	if err != nil {
		panic(err)
	}
	return table
}

func (t *RouteTable) Find(rawPath string) (Route, bool) {
	i, ok := t.byPath[NormalizePath(rawPath)]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

func (t *RouteTable) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

func (t *RouteTable) add(parentPath string, parentRoles []string, config RouteConfig) error {
	fullPath := config.Path
	if !strings.HasPrefix(fullPath, "/") {
		fullPath = path.Join(parentPath, fullPath)
	}
	fullPath = NormalizePath(fullPath)

	if _, exists := t.byPath[fullPath]; exists {
		return fmt.Errorf("%w: duplicated path %s", ErrInvalidRouteTable, fullPath)
	}

	roles := config.Roles
	if roles == nil {
		roles = parentRoles
	}

	route := Route{
		Path:         fullPath,
		Name:         config.Name,
		RequiresAuth: !config.Public,
		Roles:        roles,
		RedirectTo:   config.RedirectTo,
	}
	if route.IsRedirect() {
		route.RequiresAuth = false
		route.Roles = nil
		route.RedirectTo = NormalizePath(route.RedirectTo)
	}
	if route.Name == "" {
		route.Name = routeNameFromPath(fullPath)
	}

	t.byPath[fullPath] = len(t.routes)
	t.routes = append(t.routes, route)

	for _, child := range config.Children {
		err := t.add(fullPath, roles, child)
		if err != nil {
			return err
		}
	}
	return nil
}

// NormalizePath drops the query, the fragment and the trailing slash.
func NormalizePath(rawPath string) string {
	if i := strings.IndexAny(rawPath, "?#"); i >= 0 {
		rawPath = rawPath[:i]
	}
	if !strings.HasPrefix(rawPath, "/") {
		rawPath = "/" + rawPath
	}

	return path.Clean(rawPath)
}

func routeNameFromPath(fullPath string) string {
	if fullPath == "/" {
		return "root"
	}
	return pkgstrings.ToLowerCamelCase(strings.ReplaceAll(strings.Trim(fullPath, "/"), "/", "_"))
}

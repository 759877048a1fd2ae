// Package intent turns a normalized command into at most one tool
// invocation. The route table is an explicit ordered list of
// (predicate, tool, argument builder) entries evaluated top to bottom;
// the first match wins and there is no fallback search.
package intent

import (
	"encoding/json"
	"strings"
)

// Normalize canonicalizes recognized text. Empty input is a valid
// command that matches no route.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Invocation names a registered tool and carries its encoded arguments.
type Invocation struct {
	Tool string
	Args json.RawMessage
}

type Route struct {
	Name  string
	Match func(cmd string) bool
	Build func(cmd string) (tool string, args any)
}

type Router struct {
	routes []Route
}

func NewRouter(routes []Route) *Router {
	return &Router{routes: routes}
}

// Route classifies a normalized command. A nil return means no tool
// fires this turn and only the model reply is surfaced.
func (r *Router) Route(cmd string) *Invocation {
	for _, route := range r.routes {
		if !route.Match(cmd) {
			continue
		}
		tool, args := route.Build(cmd)
		raw, err := json.Marshal(args)
		if err != nil {
			return nil
		}
		return &Invocation{Tool: tool, Args: raw}
	}
	return nil
}

func containsAny(cmd string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(cmd, w) {
			return true
		}
	}
	return false
}

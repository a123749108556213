package security

import (
	"strings"

	"circus-admin/internal/model"
)

// Decision is the outcome of evaluating a request against the access policy.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny_unauthenticated"
	case DenyForbidden:
		return "deny_forbidden"
	}
	return "unknown"
}

// Rule binds path patterns to the authorities allowed to reach them.
//
// Patterns are either exact paths ("/login") or prefixes ending in "/**",
// which match the prefix itself and everything below it.
// A public rule admits everyone, authenticated or not.
type Rule struct {
	Patterns    []string
	Authorities []string
	Public      bool
}

func (r Rule) matches(path string) bool {
	for _, pattern := range r.Patterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == base || strings.HasPrefix(path, base+"/")
	}
	return path == pattern
}

// Policy is an ordered rule table; the first matching rule decides.
// Paths matching no rule only require an authenticated caller.
type Policy struct {
	rules []Rule
}

func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

func authorities(roles ...model.Role) []string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, role.Authority())
	}
	return out
}

// DefaultPolicy 網站的存取規則，/api/ 底下的路徑與頁面路徑共用同一組角色
func DefaultPolicy() *Policy {
	return NewPolicy(
		Rule{
			Patterns: []string{
				"/login", "/register", "/logout", "/api/auth/**", "/tickets/save",
				"/static/**", "/favicon.ico", "/healthz",
			},
			Public: true,
		},
		Rule{
			Patterns:    []string{"/users/**", "/api/users/**"},
			Authorities: authorities(model.RoleSuperAdmin),
		},
		Rule{
			Patterns: []string{
				"/animals/**", "/tickets/**", "/humanActs/**", "/animalActs/**",
				"/api/animals/**", "/api/tickets/**", "/api/humanActs/**", "/api/animalActs/**",
			},
			Authorities: authorities(model.RoleEmployee, model.RoleBoss, model.RoleSuperAdmin),
		},
		Rule{
			Patterns:    []string{"/employees/**", "/api/employees/**"},
			Authorities: authorities(model.RoleBoss, model.RoleSuperAdmin),
		},
	)
}

// Evaluate classifies a request by path and the caller's authorities.
// It has no side effects.
func (p *Policy) Evaluate(path string, held []string, authenticated bool) Decision {
	for _, rule := range p.rules {
		if !rule.matches(path) {
			continue
		}
		if rule.Public {
			return Allow
		}
		if !authenticated {
			return DenyUnauthenticated
		}
		if holdsAny(held, rule.Authorities) {
			return Allow
		}
		return DenyForbidden
	}

	if !authenticated {
		return DenyUnauthenticated
	}
	return Allow
}

// EvaluatePrincipal is Evaluate for an optional principal.
func (p *Policy) EvaluatePrincipal(path string, principal *Principal) Decision {
	return p.Evaluate(path, principal.Authorities(), principal != nil)
}

func holdsAny(held, required []string) bool {
	for _, h := range held {
		for _, r := range required {
			if h == r {
				return true
			}
		}
	}
	return false
}

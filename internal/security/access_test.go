package security_test

import (
	"testing"

	"circus-admin/internal/model"
	"circus-admin/internal/security"

	"github.com/stretchr/testify/assert"
)

func principal(role model.Role) *security.Principal {
	return &security.Principal{UserID: 1, Email: "someone@example.com", Role: role}
}

func TestDefaultPolicy_PublicPaths(t *testing.T) {
	policy := security.DefaultPolicy()

	for _, path := range []string{
		"/login", "/register", "/logout", "/api/auth/login", "/api/auth/register",
		"/tickets/save", "/static/app.css", "/favicon.ico", "/healthz",
	} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, nil))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleVisitor)))
		})
	}
}

func TestDefaultPolicy_Users(t *testing.T) {
	policy := security.DefaultPolicy()

	for _, path := range []string{"/users", "/users/edit/3", "/api/users", "/api/users/3/role"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, security.DenyUnauthenticated, policy.EvaluatePrincipal(path, nil))
			assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal(path, principal(model.RoleVisitor)))
			assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal(path, principal(model.RoleEmployee)))
			assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal(path, principal(model.RoleBoss)))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleSuperAdmin)))
		})
	}
}

func TestDefaultPolicy_StaffResources(t *testing.T) {
	policy := security.DefaultPolicy()

	for _, path := range []string{"/animals", "/tickets/edit/1", "/humanActs", "/animalActs/add", "/api/tickets"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, security.DenyUnauthenticated, policy.EvaluatePrincipal(path, nil))
			assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal(path, principal(model.RoleVisitor)))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleEmployee)))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleBoss)))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleSuperAdmin)))
		})
	}
}

func TestDefaultPolicy_Employees(t *testing.T) {
	policy := security.DefaultPolicy()

	for _, path := range []string{"/employees", "/employees/add", "/api/employees/2"} {
		t.Run(path, func(t *testing.T) {
			assert.Equal(t, security.DenyUnauthenticated, policy.EvaluatePrincipal(path, nil))
			assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal(path, principal(model.RoleVisitor)))
			assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal(path, principal(model.RoleEmployee)))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleBoss)))
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal(path, principal(model.RoleSuperAdmin)))
		})
	}
}

func TestDefaultPolicy_CatchAll(t *testing.T) {
	policy := security.DefaultPolicy()

	t.Run("Anonymous is sent to login", func(t *testing.T) {
		assert.Equal(t, security.DenyUnauthenticated, policy.EvaluatePrincipal("/performances", nil))
		assert.Equal(t, security.DenyUnauthenticated, policy.EvaluatePrincipal("/no/such/page", nil))
	})

	t.Run("Any authenticated role is allowed", func(t *testing.T) {
		for _, role := range model.Roles() {
			assert.Equal(t, security.Allow, policy.EvaluatePrincipal("/performances", principal(role)))
		}
	})

	t.Run("Unknown role still passes the catch-all", func(t *testing.T) {
		assert.Equal(t, security.Allow, policy.EvaluatePrincipal("/performances", principal("JUGGLER")))
		assert.Equal(t, security.DenyForbidden, policy.EvaluatePrincipal("/animals", principal("JUGGLER")))
	})
}

func TestPolicy_RoleNamesAreCaseSensitive(t *testing.T) {
	policy := security.DefaultPolicy()

	assert.Equal(t, security.DenyForbidden, policy.Evaluate("/users", []string{"ROLE_super_admin"}, true))
	assert.Equal(t, security.DenyForbidden, policy.Evaluate("/users", []string{"SUPER_ADMIN"}, true))
	assert.Equal(t, security.Allow, policy.Evaluate("/users", []string{"ROLE_SUPER_ADMIN"}, true))
}

func TestPolicy_PatternMatching(t *testing.T) {
	policy := security.DefaultPolicy()

	t.Run("Prefix must end at a segment boundary", func(t *testing.T) {
		// /usersettings is not under /users/**
		assert.Equal(t, security.Allow, policy.EvaluatePrincipal("/usersettings", principal(model.RoleVisitor)))
	})

	t.Run("Exact public path does not cover children", func(t *testing.T) {
		assert.Equal(t, security.DenyUnauthenticated, policy.EvaluatePrincipal("/login/extra", nil))
	})

	t.Run("First matching rule wins", func(t *testing.T) {
		p := security.NewPolicy(
			security.Rule{Patterns: []string{"/a/**"}, Public: true},
			security.Rule{Patterns: []string{"/a/b"}, Authorities: []string{"ROLE_BOSS"}},
		)
		assert.Equal(t, security.Allow, p.Evaluate("/a/b", nil, false))
	})
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "allow", security.Allow.String())
	assert.Equal(t, "deny_unauthenticated", security.DenyUnauthenticated.String())
	assert.Equal(t, "deny_forbidden", security.DenyForbidden.String())
}

func TestPrincipal_Authorities(t *testing.T) {
	var nilPrincipal *security.Principal
	assert.Nil(t, nilPrincipal.Authorities())
	assert.False(t, nilPrincipal.IsVisitorOnly())

	assert.Equal(t, []string{"ROLE_BOSS"}, principal(model.RoleBoss).Authorities())
	assert.True(t, principal(model.RoleVisitor).IsVisitorOnly())
	assert.False(t, principal(model.RoleEmployee).IsVisitorOnly())
}

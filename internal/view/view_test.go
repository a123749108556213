package view_test

import (
	"bytes"
	"testing"

	"circus-admin/internal/model"
	"circus-admin/internal/security"
	"circus-admin/internal/view"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := view.Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"login", "register", "access_denied", "error",
		"performances/list", "performances/form",
		"tickets/list", "tickets/form",
		"animals/list", "animals/form",
		"employees/list", "employees/form",
		"humanActs/list", "humanActs/form",
		"animalActs/list", "animalActs/form",
		"users/list", "users/edit",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestErrorPage(t *testing.T) {
	tmpl := view.MustTemplates()

	t.Run("Anonymous", func(t *testing.T) {
		var buf bytes.Buffer
		err := tmpl.ExecuteTemplate(&buf, "error", map[string]any{
			"message":   "page not found: /nope",
			"principal": (*security.Principal)(nil),
		})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "page not found: /nope")
		assert.NotContains(t, buf.String(), "/users")
	})

	t.Run("Super admin sees the full navigation", func(t *testing.T) {
		var buf bytes.Buffer
		err := tmpl.ExecuteTemplate(&buf, "error", map[string]any{
			"message":   "boom",
			"principal": &security.Principal{UserID: 1, Email: "superadmin@example.com", Role: model.RoleSuperAdmin},
		})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `href="/users"`)
		assert.Contains(t, buf.String(), `href="/employees"`)
	})
}

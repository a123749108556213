package security

import "circus-admin/internal/model"

// Principal is the authenticated caller attached to a request.
type Principal struct {
	UserID int64      `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// NewPrincipal builds the principal of a stored identity.
func NewPrincipal(user *model.User) *Principal {
	return &Principal{UserID: user.ID, Email: user.Email, Role: user.Role}
}

// Authorities returns the single authority granted by the principal's role.
// A nil principal holds no authorities.
func (p *Principal) Authorities() []string {
	if p == nil || p.Role == "" {
		return nil
	}
	return []string{p.Role.Authority()}
}

// HasRole reports whether the principal's role is exactly role.
func (p *Principal) HasRole(role model.Role) bool {
	return p != nil && p.Role == role
}

// IsVisitorOnly 只持有基本觀眾角色
func (p *Principal) IsVisitorOnly() bool {
	return p.HasRole(model.RoleVisitor)
}

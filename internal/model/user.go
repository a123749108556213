package model

import "time"

// Role 使用者角色，名稱大小寫敏感
type Role string

const (
	RoleVisitor    Role = "VISITOR"
	RoleEmployee   Role = "EMPLOYEE"
	RoleBoss       Role = "BOSS"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// AuthorityPrefix is prepended to a role name to form its authority string.
const AuthorityPrefix = "ROLE_"

// IsValid 驗證角色是否有效
func (r Role) IsValid() bool {
	switch r {
	case RoleVisitor, RoleEmployee, RoleBoss, RoleSuperAdmin:
		return true
	}
	return false
}

// Authority maps the role to exactly one authority, e.g. ROLE_SUPER_ADMIN.
func (r Role) Authority() string {
	return AuthorityPrefix + string(r)
}

// Roles lists every assignable role in display order.
func Roles() []Role {
	return []Role{RoleVisitor, RoleEmployee, RoleBoss, RoleSuperAdmin}
}

// User 帳號模型，Password 永遠保存雜湊值
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsNew 尚未寫入資料庫
func (u *User) IsNew() bool {
	return u.ID == 0
}

package middleware

import (
	"context"
	"errors"
	"strings"

	"circus-admin/internal/cache"
	"circus-admin/internal/model"
	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"
	"circus-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// IdentityResolver finds the caller of a request. A nil principal with a nil
// error means the caller is anonymous.
type IdentityResolver interface {
	Resolve(c *gin.Context) (*security.Principal, error)
}

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(raw string) (*security.Principal, error)
}

// UserLookup loads the current state of an account.
type UserLookup interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
}

// SessionResolver 先看 Authorization: Bearer，沒有的話再看 session cookie
//
// The role carried by a token or session is only a hint: every request reloads
// the account, so a role change or a deleted account applies immediately.
type SessionResolver struct {
	tokens     TokenParser
	sessions   cache.SessionStore
	users      UserLookup
	cookieName string
}

func NewSessionResolver(tokens TokenParser, sessions cache.SessionStore, users UserLookup, cookieName string) *SessionResolver {
	return &SessionResolver{tokens: tokens, sessions: sessions, users: users, cookieName: cookieName}
}

func (r *SessionResolver) Resolve(c *gin.Context) (*security.Principal, error) {
	ctx := c.Request.Context()

	if raw, ok := bearerToken(c.GetHeader("Authorization")); ok {
		principal, err := r.tokens.Parse(raw)
		if err != nil {
			logger.WithComponent("access").Debug("Rejected bearer token", zap.Error(err))
			return nil, nil
		}
		return r.refresh(ctx, principal)
	}

	token, err := c.Cookie(r.cookieName)
	if err != nil || token == "" {
		return nil, nil
	}
	principal, err := r.lookupSession(ctx, token)
	if err != nil || principal == nil {
		return nil, err
	}

	current, err := r.refresh(ctx, principal)
	if err != nil {
		return nil, err
	}
	if current == nil {
		// 帳號已刪除，順便清掉 session
		if err := r.sessions.Delete(ctx, token); err != nil {
			logger.WithComponent("access").Warn("Failed to drop orphan session", zap.Error(err))
		}
	}
	return current, nil
}

func (r *SessionResolver) lookupSession(ctx context.Context, token string) (*security.Principal, error) {
	principal, err := r.sessions.Get(ctx, token)
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return principal, nil
}

// refresh 以資料庫中的帳號取代 token/session 內的身分，帳號不存在時視為匿名
func (r *SessionResolver) refresh(ctx context.Context, principal *security.Principal) (*security.Principal, error) {
	user, err := r.users.FindByID(ctx, principal.UserID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return security.NewPrincipal(user), nil
}

func bearerToken(header string) (string, bool) {
	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// Authenticate attaches the resolved principal, if any, to the request.
func Authenticate(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := resolver.Resolve(c)
		if err != nil {
			Fail(c, security.UnhandledFault, err)
			return
		}
		if principal != nil {
			c.Set(principalKey, principal)
		}
		c.Next()
	}
}

// Authorize 依存取規則放行或拒絕請求
func Authorize(policy *security.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := policy.EvaluatePrincipal(c.Request.URL.Path, CurrentPrincipal(c))
		if kind, denied := security.FailureForDecision(decision); denied {
			Fail(c, kind, nil)
			return
		}
		c.Next()
	}
}

// CurrentPrincipal returns the caller attached by Authenticate, or nil.
func CurrentPrincipal(c *gin.Context) *security.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := v.(*security.Principal)
	return principal
}

// SetPrincipal attaches principal to the request context.
func SetPrincipal(c *gin.Context, principal *security.Principal) {
	c.Set(principalKey, principal)
}

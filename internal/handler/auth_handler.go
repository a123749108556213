package handler

import (
	"errors"
	"net/http"
	"time"

	"circus-admin/config"
	"circus-admin/internal/cache"
	"circus-admin/internal/middleware"
	"circus-admin/internal/model"
	"circus-admin/internal/security"
	"circus-admin/internal/service"
	apperrors "circus-admin/pkg/app_errors"
	"circus-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	users    service.UserService
	sessions cache.SessionStore
	tokens   *security.TokenIssuer
	cfg      config.AuthConfig
}

func NewAuthHandler(users service.UserService, sessions cache.SessionStore, tokens *security.TokenIssuer, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		cfg:      cfg,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", h.Register)
	r.GET("/access-denied", h.AccessDenied)

	router := r.Group("/api/auth")
	{
		router.POST("/login", h.APILogin)
		router.POST("/register", h.APIRegister)
	}
}

// CredentialsForm 登入與註冊共用
type CredentialsForm struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

func (h *AuthHandler) Home(c *gin.Context) {
	redirect(c, "/performances")
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	_, failed := c.GetQuery("error")
	_, loggedOut := c.GetQuery("logout")
	_, registered := c.GetQuery("registered")
	render(c, http.StatusOK, "login", gin.H{
		"error":      failed,
		"logout":     loggedOut,
		"registered": registered,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, "/login?error")
		return
	}

	user, err := h.users.Authenticate(c, form.Email, form.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		logger.WithComponent("handler").Info("Login rejected", zap.String("email", form.Email))
		redirect(c, "/login?error")
		return
	}
	if err != nil {
		handleError(c, err, "Login")
		return
	}

	token, err := h.sessions.Create(c, security.NewPrincipal(user))
	if err != nil {
		handleError(c, err, "Login")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, token, h.cfg.SessionTTLMin*60, "/", "", false, true)
	redirect(c, "/performances")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cfg.SessionCookie); err == nil && token != "" {
		if err := h.sessions.Delete(c, token); err != nil {
			handleError(c, err, "Logout")
			return
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.SessionCookie, "", -1, "/", "", false, true)
	redirect(c, "/login?logout")
}

func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register", gin.H{})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form CredentialsForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusOK, "register", gin.H{"email": form.Email, "error": validationMessage(err)})
		return
	}

	if _, err := h.users.Register(c, form.Email, form.Password); err != nil {
		if isValidation(err) {
			render(c, http.StatusOK, "register", gin.H{"email": form.Email, "error": err.Error()})
			return
		}
		handleError(c, err, "Register")
		return
	}
	redirect(c, "/login?registered")
}

func (h *AuthHandler) AccessDenied(c *gin.Context) {
	render(c, http.StatusForbidden, "access_denied", gin.H{})
}

func (h *AuthHandler) APILogin(c *gin.Context) {
	var req CredentialsForm
	if err := BindJson(c, &req); err != nil {
		return
	}

	user, err := h.users.Authenticate(c, req.Email, req.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		middleware.Fail(c, security.Unauthenticated, err)
		return
	}
	if err != nil {
		handleError(c, err, "APILogin")
		return
	}

	token, err := h.tokens.Issue(security.NewPrincipal(user))
	if err != nil {
		handleError(c, err, "APILogin")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{
		Token:     token.Token,
		TokenType: "Bearer",
		ExpiresAt: token.ExpiresAt,
		User:      user,
	})
}

func (h *AuthHandler) APIRegister(c *gin.Context) {
	var req CredentialsForm
	if err := c.ShouldBindJSON(&req); err != nil {
		// email 缺少時回傳與服務層一致的訊息
		if req.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrEmailRequired.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": validationMessage(err)})
		return
	}

	user, err := h.users.Register(c, req.Email, req.Password)
	if err != nil {
		handleAPIError(c, err, "APIRegister")
		return
	}
	c.JSON(http.StatusCreated, user)
}

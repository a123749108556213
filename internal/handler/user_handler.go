package handler

import (
	"errors"
	"net/http"
	"net/url"

	"circus-admin/internal/model"
	"circus-admin/internal/service"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	pages := r.Group("/users")
	{
		pages.GET("", h.List)
		pages.POST("/change-role", h.ChangeRole)
		pages.POST("/delete", h.Delete)
		pages.GET("/edit/:id", h.EditForm)
		pages.POST("/save", h.Save)
	}

	api := r.Group("/api/users")
	{
		api.GET("", h.APIList)
		api.GET("/:id", h.APIGet)
		api.PUT("/:id/role", h.APIChangeRole)
		api.DELETE("/:id", h.APIDelete)
	}
}

type ChangeRoleForm struct {
	UserID int64  `form:"userId" binding:"required"`
	Role   string `form:"role" binding:"required"`
}

type DeleteUserForm struct {
	UserID int64 `form:"userId" binding:"required"`
}

// UserForm 編輯帳號，password 留白表示不修改
type UserForm struct {
	ID       int64  `form:"id" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password"`
	Role     string `form:"role" binding:"required"`
}

func usersWithMessage(msg string) string {
	return "/users?msg=" + url.QueryEscape(msg)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "users/list", gin.H{
		"users": users,
		"roles": model.Roles(),
		"msg":   c.Query("msg"),
	})
}

func (h *UserHandler) ChangeRole(c *gin.Context) {
	var form ChangeRoleForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, usersWithMessage(validationMessage(err)))
		return
	}

	user, err := h.service.ChangeRole(c, form.UserID, model.Role(form.Role))
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		redirect(c, usersWithMessage("user not found"))
	case errors.Is(err, apperrors.ErrInvalidRole):
		redirect(c, usersWithMessage("invalid role: "+form.Role))
	case err != nil:
		handleError(c, err, "ChangeRole")
	default:
		redirect(c, usersWithMessage("role of "+user.Email+" changed to "+string(user.Role)))
	}
}

func (h *UserHandler) Delete(c *gin.Context) {
	var form DeleteUserForm
	if err := c.ShouldBind(&form); err != nil {
		redirect(c, usersWithMessage(validationMessage(err)))
		return
	}

	user, err := h.service.FindByID(c, form.UserID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		redirect(c, usersWithMessage("user not found"))
		return
	}
	if err != nil {
		handleError(c, err, "Delete")
		return
	}
	if err := h.service.Delete(c, user.ID); err != nil {
		handleError(c, err, "Delete")
		return
	}
	redirect(c, usersWithMessage("user "+user.Email+" deleted"))
}

func (h *UserHandler) renderForm(c *gin.Context, user *model.User, message string) {
	render(c, http.StatusOK, "users/edit", gin.H{
		"user":  user,
		"roles": model.Roles(),
		"error": message,
	})
}

func (h *UserHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditForm")
		return
	}
	h.renderForm(c, user, "")
}

func (h *UserHandler) Save(c *gin.Context) {
	var form UserForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, &model.User{ID: form.ID, Email: form.Email, Role: model.Role(form.Role)}, validationMessage(err))
		return
	}

	user := &model.User{
		ID:       form.ID,
		Email:    form.Email,
		Password: form.Password,
		Role:     model.Role(form.Role),
	}
	saved, err := h.service.Save(c, user)
	if err != nil {
		if isValidation(err) {
			user.Password = ""
			h.renderForm(c, user, err.Error())
			return
		}
		handleError(c, err, "Save")
		return
	}
	redirect(c, usersWithMessage("user "+saved.Email+" saved"))
}

func (h *UserHandler) APIList(c *gin.Context) {
	users, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "APIList")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) APIGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "APIGet")
		return
	}
	c.JSON(http.StatusOK, user)
}

// APIChangeRole PUT /api/users/:id/role?role=BOSS
func (h *UserHandler) APIChangeRole(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.service.ChangeRole(c, id, model.Role(c.Query("role")))
	if err != nil {
		handleAPIError(c, err, "APIChangeRole")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) APIDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "APIDelete")
		return
	}
	c.Status(http.StatusNoContent)
}

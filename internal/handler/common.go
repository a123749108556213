package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"circus-admin/internal/middleware"
	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"
	"circus-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validationMessage(err),
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// render 補上目前登入者後渲染頁面
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["principal"] = middleware.CurrentPrincipal(c)
	c.HTML(status, name, data)
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// pathID parses the :id parameter; a malformed id is answered as NotFound.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.Fail(c, security.NotFound, nil)
		return 0, false
	}
	return id, true
}

// queryID 讀取選用的查詢參數，缺少或格式錯誤時回傳 false
func queryID(c *gin.Context, key string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// isValidation reports errors that are shown back to the user instead of failing the request.
func isValidation(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidInput) ||
		errors.Is(err, apperrors.ErrInvalidRole) ||
		errors.Is(err, apperrors.ErrEmailRequired) ||
		errors.Is(err, apperrors.ErrEmailAlreadyExists)
}

// validationMessage 將 binding 錯誤轉成使用者看得懂的訊息
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if isValidation(err) {
			return err.Error()
		}
		return "Invalid request format"
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "min", "gte":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email", field))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}
	return strings.Join(messages, ", ")
}

// handleError routes a non-validation failure to the failure responder.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	if apperrors.IsNotFound(err) {
		log.Warn("Entity not found")
		middleware.Respond(c, security.NotFound, err)
		return
	}
	log.Error("Unexpected error")
	middleware.Respond(c, security.UnhandledFault, err)
}

// handleAPIError 驗證錯誤回 400/409，其餘交給 handleError
func handleAPIError(c *gin.Context, err error, operation string) {
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case isValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		handleError(c, err, operation)
	}
}

var errInvalidDateTime = fmt.Errorf("%w: date and time must look like 2006-01-02T15:04", apperrors.ErrInvalidInput)

// redirectWithError 重新導向到列表頁並帶上錯誤訊息
func redirectWithError(c *gin.Context, location string, err error) {
	redirect(c, location+"?error="+url.QueryEscape(err.Error()))
}

package handler

import (
	"net/http"

	"circus-admin/internal/middleware"
	"circus-admin/internal/model"
	"circus-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type PerformanceHandler struct {
	service   service.PerformanceService
	employees service.EmployeeService
}

func NewPerformanceHandler(service service.PerformanceService, employees service.EmployeeService) *PerformanceHandler {
	return &PerformanceHandler{service: service, employees: employees}
}

func (h *PerformanceHandler) RegisterRoutes(r *gin.Engine) {
	pages := r.Group("/performances")
	{
		pages.GET("", h.List)
		pages.GET("/add", h.AddForm)
		pages.POST("/add", h.Save)
		pages.POST("/save", h.Save)
		pages.GET("/edit/:id", h.EditForm)
		pages.GET("/delete/:id", h.Delete)
	}

	api := r.Group("/api/performances")
	{
		api.GET("", h.APIList)
		api.GET("/:id", h.APIGet)
		api.GET("/:id/revenue", h.APIRevenue)
		api.POST("", h.APISave)
		api.DELETE("/:id", h.APIDelete)
	}
}

// PerformanceForm 頁面表單與 API 共用，date_time 使用 ISO-8601 本地時間
type PerformanceForm struct {
	ID              int64  `form:"id" json:"id"`
	Name            string `form:"name" json:"name" binding:"required"`
	DateTime        string `form:"date_time" json:"date_time" binding:"required"`
	DurationMinutes int    `form:"duration_minutes" json:"duration_minutes" binding:"required,min=1"`
	MainArtistID    int64  `form:"main_artist_id" json:"main_artist_id" binding:"required"`
	Description     string `form:"description" json:"description"`
}

func (f PerformanceForm) toModel() (*model.Performance, error) {
	p := &model.Performance{
		ID:              f.ID,
		Name:            f.Name,
		DurationMinutes: f.DurationMinutes,
		MainArtistID:    f.MainArtistID,
		Description:     f.Description,
	}
	if f.DateTime == "" {
		return p, nil
	}
	t, err := service.ParseLocalDateTime(f.DateTime)
	if err != nil {
		return p, errInvalidDateTime
	}
	p.DateTime = t
	return p, nil
}

func (h *PerformanceHandler) List(c *gin.Context) {
	var query model.PerformanceListQuery
	_ = c.ShouldBindQuery(&query)

	principal := middleware.CurrentPrincipal(c)
	performances, err := h.service.List(c, principal, query)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "performances/list", gin.H{
		"performances": performances,
		"query":        query,
		"canManage":    principal != nil && !principal.IsVisitorOnly(),
	})
}

func (h *PerformanceHandler) renderForm(c *gin.Context, performance *model.Performance, dateTime, message string) {
	employees, err := h.employees.List(c)
	if err != nil {
		handleError(c, err, "renderForm")
		return
	}
	if dateTime == "" {
		dateTime = performance.LocalDateTime()
	}
	render(c, http.StatusOK, "performances/form", gin.H{
		"performance": performance,
		"dateTime":    dateTime,
		"employees":   employees,
		"error":       message,
	})
}

func (h *PerformanceHandler) AddForm(c *gin.Context) {
	h.renderForm(c, &model.Performance{}, "", "")
}

func (h *PerformanceHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	performance, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditForm")
		return
	}
	h.renderForm(c, performance, "", "")
}

func (h *PerformanceHandler) Save(c *gin.Context) {
	var form PerformanceForm
	if err := c.ShouldBind(&form); err != nil {
		performance, _ := form.toModel()
		h.renderForm(c, performance, form.DateTime, validationMessage(err))
		return
	}
	performance, err := form.toModel()
	if err != nil {
		h.renderForm(c, performance, form.DateTime, err.Error())
		return
	}

	if _, err := h.service.Save(c, performance); err != nil {
		if isValidation(err) {
			h.renderForm(c, performance, form.DateTime, err.Error())
			return
		}
		handleError(c, err, "Save")
		return
	}
	redirect(c, "/performances")
}

func (h *PerformanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "Delete")
		return
	}
	redirect(c, "/performances")
}

func (h *PerformanceHandler) APIList(c *gin.Context) {
	var query model.PerformanceListQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	performances, err := h.service.List(c, middleware.CurrentPrincipal(c), query)
	if err != nil {
		handleError(c, err, "APIList")
		return
	}
	c.JSON(http.StatusOK, performances)
}

func (h *PerformanceHandler) APIGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	performance, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "APIGet")
		return
	}
	c.JSON(http.StatusOK, performance)
}

func (h *PerformanceHandler) APIRevenue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	revenue, err := h.service.Revenue(c, id)
	if err != nil {
		handleError(c, err, "APIRevenue")
		return
	}
	c.JSON(http.StatusOK, gin.H{"performance_id": id, "revenue": revenue})
}

func (h *PerformanceHandler) APISave(c *gin.Context) {
	var req PerformanceForm
	if err := BindJson(c, &req); err != nil {
		return
	}
	performance, err := req.toModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := h.service.Save(c, performance)
	if err != nil {
		handleAPIError(c, err, "APISave")
		return
	}
	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, saved)
}

func (h *PerformanceHandler) APIDelete(c *gin.Context) {
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

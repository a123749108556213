package handler

import (
	"net/http"

	"circus-admin/internal/middleware"
	"circus-admin/internal/model"
	"circus-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service      service.TicketService
	performances service.PerformanceService
}

func NewTicketHandler(service service.TicketService, performances service.PerformanceService) *TicketHandler {
	return &TicketHandler{service: service, performances: performances}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	pages := r.Group("/tickets")
	{
		pages.GET("", h.List)
		pages.GET("/add", h.AddForm)
		pages.POST("/add", h.Save)
		pages.POST("/save", h.Save)
		pages.GET("/edit/:id", h.EditForm)
		pages.GET("/delete/:id", h.Delete)
	}

	api := r.Group("/api/tickets")
	{
		api.GET("", h.APIList)
		api.POST("", h.APISave)
		api.DELETE("/:id", h.APIDelete)
	}
}

// TicketForm 購票表單
type TicketForm struct {
	ID            int64  `form:"id" json:"id"`
	PerformanceID int64  `form:"performance_id" json:"performance_id" binding:"required"`
	CustomerName  string `form:"customer_name" json:"customer_name" binding:"required"`
	ViewersCount  int    `form:"viewers_count" json:"viewers_count" binding:"required,min=1"`
	TotalPrice    int64  `form:"total_price" json:"total_price" binding:"min=0"`
}

func (f TicketForm) toModel() *model.Ticket {
	return &model.Ticket{
		ID:            f.ID,
		PerformanceID: f.PerformanceID,
		CustomerName:  f.CustomerName,
		ViewersCount:  f.ViewersCount,
		TotalPrice:    f.TotalPrice,
	}
}

func (h *TicketHandler) list(c *gin.Context) ([]*model.Ticket, int64, error) {
	if performanceID, ok := queryID(c, "performanceId"); ok {
		tickets, err := h.service.ListByPerformanceID(c, performanceID)
		return tickets, performanceID, err
	}
	tickets, err := h.service.List(c)
	return tickets, 0, err
}

func (h *TicketHandler) List(c *gin.Context) {
	tickets, performanceID, err := h.list(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "tickets/list", gin.H{
		"tickets":       tickets,
		"performanceId": performanceID,
	})
}

func (h *TicketHandler) renderForm(c *gin.Context, ticket *model.Ticket, message string) {
	performances, err := h.performances.List(c, middleware.CurrentPrincipal(c), model.PerformanceListQuery{})
	if err != nil {
		handleError(c, err, "renderForm")
		return
	}
	render(c, http.StatusOK, "tickets/form", gin.H{
		"ticket":       ticket,
		"performances": performances,
		"returnTo":     c.Query("returnTo"),
		"error":        message,
	})
}

func (h *TicketHandler) AddForm(c *gin.Context) {
	ticket := &model.Ticket{ViewersCount: 1}
	if performanceID, ok := queryID(c, "performanceId"); ok {
		ticket.PerformanceID = performanceID
	}
	h.renderForm(c, ticket, "")
}

func (h *TicketHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ticket, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditForm")
		return
	}
	h.renderForm(c, ticket, "")
}

// Save 從演出頁購票時帶 returnTo=performances，完成後回到演出列表
func (h *TicketHandler) Save(c *gin.Context) {
	var form TicketForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form.toModel(), validationMessage(err))
		return
	}

	ticket := form.toModel()
	if _, err := h.service.Save(c, ticket); err != nil {
		if isValidation(err) {
			h.renderForm(c, ticket, err.Error())
			return
		}
		handleError(c, err, "Save")
		return
	}

	if c.Query("returnTo") == "performances" {
		redirect(c, "/performances")
		return
	}
	redirect(c, "/tickets")
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "Delete")
		return
	}
	redirect(c, "/tickets")
}

func (h *TicketHandler) APIList(c *gin.Context) {
	tickets, _, err := h.list(c)
	if err != nil {
		handleError(c, err, "APIList")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) APISave(c *gin.Context) {
	var req TicketForm
	if err := BindJson(c, &req); err != nil {
		return
	}
	saved, err := h.service.Save(c, req.toModel())
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

func (h *TicketHandler) APIDelete(c *gin.Context) {
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

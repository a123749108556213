package handler

import (
	"net/http"

	"circus-admin/internal/model"
	"circus-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	service service.EmployeeService
}

func NewEmployeeHandler(service service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

func (h *EmployeeHandler) RegisterRoutes(r *gin.Engine) {
	pages := r.Group("/employees")
	{
		pages.GET("", h.List)
		pages.GET("/add", h.AddForm)
		pages.POST("/add", h.Save)
		pages.POST("/save", h.Save)
		pages.GET("/edit/:id", h.EditForm)
		pages.GET("/delete/:id", h.Delete)
	}

	api := r.Group("/api/employees")
	{
		api.GET("", h.APIList)
		api.GET("/:id", h.APIGet)
		api.POST("", h.APISave)
		api.DELETE("/:id", h.APIDelete)
	}
}

type EmployeeForm struct {
	ID       int64  `form:"id" json:"id"`
	Name     string `form:"name" json:"name" binding:"required"`
	Position string `form:"position" json:"position"`
	Phone    string `form:"phone" json:"phone"`
	Email    string `form:"email" json:"email" binding:"omitempty,email"`
}

func (f EmployeeForm) toModel() *model.Employee {
	return &model.Employee{
		ID:       f.ID,
		Name:     f.Name,
		Position: f.Position,
		Phone:    f.Phone,
		Email:    f.Email,
	}
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "employees/list", gin.H{
		"employees": employees,
		"error":     c.Query("error"),
	})
}

func (h *EmployeeHandler) renderForm(c *gin.Context, employee *model.Employee, message string) {
	render(c, http.StatusOK, "employees/form", gin.H{
		"employee": employee,
		"error":    message,
	})
}

func (h *EmployeeHandler) AddForm(c *gin.Context) {
	h.renderForm(c, &model.Employee{}, "")
}

func (h *EmployeeHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	employee, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditForm")
		return
	}
	h.renderForm(c, employee, "")
}

func (h *EmployeeHandler) Save(c *gin.Context) {
	var form EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form.toModel(), validationMessage(err))
		return
	}
	employee := form.toModel()
	if _, err := h.service.Save(c, employee); err != nil {
		if isValidation(err) {
			h.renderForm(c, employee, err.Error())
			return
		}
		handleError(c, err, "Save")
		return
	}
	redirect(c, "/employees")
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		if isValidation(err) {
			redirectWithError(c, "/employees", err)
			return
		}
		handleError(c, err, "Delete")
		return
	}
	redirect(c, "/employees")
}

func (h *EmployeeHandler) APIList(c *gin.Context) {
	employees, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "APIList")
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) APIGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	employee, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "APIGet")
		return
	}
	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) APISave(c *gin.Context) {
	var req EmployeeForm
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

func (h *EmployeeHandler) APIDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleAPIError(c, err, "APIDelete")
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"circus-admin/internal/model"
	"circus-admin/internal/service"

	"github.com/gin-gonic/gin"
)

type AnimalHandler struct {
	service service.AnimalService
}

func NewAnimalHandler(service service.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

func (h *AnimalHandler) RegisterRoutes(r *gin.Engine) {
	pages := r.Group("/animals")
	{
		pages.GET("", h.List)
		pages.GET("/add", h.AddForm)
		pages.POST("/add", h.Save)
		pages.POST("/save", h.Save)
		pages.GET("/edit/:id", h.EditForm)
		pages.GET("/delete/:id", h.Delete)
	}
}

type AnimalForm struct {
	ID      int64  `form:"id"`
	Name    string `form:"name" binding:"required"`
	Species string `form:"species"`
	Age     int    `form:"age" binding:"min=0"`
}

func (f AnimalForm) toModel() *model.Animal {
	return &model.Animal{
		ID:      f.ID,
		Name:    f.Name,
		Species: f.Species,
		Age:     f.Age,
	}
}

func (h *AnimalHandler) List(c *gin.Context) {
	animals, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	render(c, http.StatusOK, "animals/list", gin.H{
		"animals": animals,
		"error":   c.Query("error"),
	})
}

func (h *AnimalHandler) renderForm(c *gin.Context, animal *model.Animal, message string) {
	render(c, http.StatusOK, "animals/form", gin.H{
		"animal": animal,
		"error":  message,
	})
}

func (h *AnimalHandler) AddForm(c *gin.Context) {
	h.renderForm(c, &model.Animal{}, "")
}

func (h *AnimalHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	animal, err := h.service.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditForm")
		return
	}
	h.renderForm(c, animal, "")
}

func (h *AnimalHandler) Save(c *gin.Context) {
	var form AnimalForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form.toModel(), validationMessage(err))
		return
	}
	animal := form.toModel()
	if _, err := h.service.Save(c, animal); err != nil {
		if isValidation(err) {
			h.renderForm(c, animal, err.Error())
			return
		}
		handleError(c, err, "Save")
		return
	}
	redirect(c, "/animals")
}

func (h *AnimalHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		if isValidation(err) {
			redirectWithError(c, "/animals", err)
			return
		}
		handleError(c, err, "Delete")
		return
	}
	redirect(c, "/animals")
}

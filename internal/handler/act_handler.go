package handler

import (
	"net/http"

	"circus-admin/internal/middleware"
	"circus-admin/internal/model"
	"circus-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// ActHandler 人類節目與動物節目的頁面
type ActHandler struct {
	humanActs    service.HumanActService
	animalActs   service.AnimalActService
	performances service.PerformanceService
	employees    service.EmployeeService
	animals      service.AnimalService
}

func NewActHandler(
	humanActs service.HumanActService,
	animalActs service.AnimalActService,
	performances service.PerformanceService,
	employees service.EmployeeService,
	animals service.AnimalService,
) *ActHandler {
	return &ActHandler{
		humanActs:    humanActs,
		animalActs:   animalActs,
		performances: performances,
		employees:    employees,
		animals:      animals,
	}
}

func (h *ActHandler) RegisterRoutes(r *gin.Engine) {
	human := r.Group("/humanActs")
	{
		human.GET("", h.ListHumanActs)
		human.GET("/add", h.AddHumanActForm)
		human.POST("/add", h.SaveHumanAct)
		human.POST("/save", h.SaveHumanAct)
		human.GET("/edit/:id", h.EditHumanActForm)
		human.GET("/delete/:id", h.DeleteHumanAct)
	}

	animal := r.Group("/animalActs")
	{
		animal.GET("", h.ListAnimalActs)
		animal.GET("/add", h.AddAnimalActForm)
		animal.POST("/add", h.SaveAnimalAct)
		animal.POST("/save", h.SaveAnimalAct)
		animal.GET("/edit/:id", h.EditAnimalActForm)
		animal.GET("/delete/:id", h.DeleteAnimalAct)
	}
}

type HumanActForm struct {
	ID              int64  `form:"id"`
	Title           string `form:"title" binding:"required"`
	Type            string `form:"type"`
	PerformanceID   int64  `form:"performance_id" binding:"required"`
	MainPerformerID int64  `form:"main_performer_id" binding:"required"`
}

func (f HumanActForm) toModel() *model.HumanAct {
	return &model.HumanAct{
		ID:              f.ID,
		Title:           f.Title,
		Type:            f.Type,
		PerformanceID:   f.PerformanceID,
		MainPerformerID: f.MainPerformerID,
	}
}

type AnimalActForm struct {
	ID            int64 `form:"id"`
	PerformanceID int64 `form:"performance_id" binding:"required"`
	AnimalID      int64 `form:"animal_id" binding:"required"`
	TrainerID     int64 `form:"trainer_id" binding:"required"`
}

func (f AnimalActForm) toModel() *model.AnimalAct {
	return &model.AnimalAct{
		ID:            f.ID,
		PerformanceID: f.PerformanceID,
		AnimalID:      f.AnimalID,
		TrainerID:     f.TrainerID,
	}
}

// ListHumanActs 支援 ?performerId= 篩選主要表演者
func (h *ActHandler) ListHumanActs(c *gin.Context) {
	var (
		acts []*model.HumanAct
		err  error
	)
	performerID, filtered := queryID(c, "performerId")
	if filtered {
		acts, err = h.humanActs.ListByPerformer(c, performerID)
	} else {
		acts, err = h.humanActs.List(c)
	}
	if err != nil {
		handleError(c, err, "ListHumanActs")
		return
	}
	employees, err := h.employees.List(c)
	if err != nil {
		handleError(c, err, "ListHumanActs")
		return
	}
	render(c, http.StatusOK, "humanActs/list", gin.H{
		"acts":        acts,
		"employees":   employees,
		"performerId": performerID,
	})
}

func (h *ActHandler) renderHumanActForm(c *gin.Context, act *model.HumanAct, message string) {
	performances, err := h.performances.List(c, middleware.CurrentPrincipal(c), model.PerformanceListQuery{})
	if err != nil {
		handleError(c, err, "renderHumanActForm")
		return
	}
	employees, err := h.employees.List(c)
	if err != nil {
		handleError(c, err, "renderHumanActForm")
		return
	}
	render(c, http.StatusOK, "humanActs/form", gin.H{
		"act":          act,
		"performances": performances,
		"employees":    employees,
		"error":        message,
	})
}

func (h *ActHandler) AddHumanActForm(c *gin.Context) {
	h.renderHumanActForm(c, &model.HumanAct{}, "")
}

func (h *ActHandler) EditHumanActForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	act, err := h.humanActs.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditHumanActForm")
		return
	}
	h.renderHumanActForm(c, act, "")
}

func (h *ActHandler) SaveHumanAct(c *gin.Context) {
	var form HumanActForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderHumanActForm(c, form.toModel(), validationMessage(err))
		return
	}
	act := form.toModel()
	if _, err := h.humanActs.Save(c, act); err != nil {
		if isValidation(err) {
			h.renderHumanActForm(c, act, err.Error())
			return
		}
		handleError(c, err, "SaveHumanAct")
		return
	}
	redirect(c, "/humanActs")
}

func (h *ActHandler) DeleteHumanAct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.humanActs.Delete(c, id); err != nil {
		handleError(c, err, "DeleteHumanAct")
		return
	}
	redirect(c, "/humanActs")
}

func (h *ActHandler) ListAnimalActs(c *gin.Context) {
	acts, err := h.animalActs.List(c)
	if err != nil {
		handleError(c, err, "ListAnimalActs")
		return
	}
	render(c, http.StatusOK, "animalActs/list", gin.H{
		"acts": acts,
	})
}

func (h *ActHandler) renderAnimalActForm(c *gin.Context, act *model.AnimalAct, message string) {
	performances, err := h.performances.List(c, middleware.CurrentPrincipal(c), model.PerformanceListQuery{})
	if err != nil {
		handleError(c, err, "renderAnimalActForm")
		return
	}
	animals, err := h.animals.List(c)
	if err != nil {
		handleError(c, err, "renderAnimalActForm")
		return
	}
	employees, err := h.employees.List(c)
	if err != nil {
		handleError(c, err, "renderAnimalActForm")
		return
	}
	render(c, http.StatusOK, "animalActs/form", gin.H{
		"act":          act,
		"performances": performances,
		"animals":      animals,
		"employees":    employees,
		"error":        message,
	})
}

func (h *ActHandler) AddAnimalActForm(c *gin.Context) {
	h.renderAnimalActForm(c, &model.AnimalAct{}, "")
}

func (h *ActHandler) EditAnimalActForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	act, err := h.animalActs.FindByID(c, id)
	if err != nil {
		handleError(c, err, "EditAnimalActForm")
		return
	}
	h.renderAnimalActForm(c, act, "")
}

func (h *ActHandler) SaveAnimalAct(c *gin.Context) {
	var form AnimalActForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderAnimalActForm(c, form.toModel(), validationMessage(err))
		return
	}
	act := form.toModel()
	if _, err := h.animalActs.Save(c, act); err != nil {
		if isValidation(err) {
			h.renderAnimalActForm(c, act, err.Error())
			return
		}
		handleError(c, err, "SaveAnimalAct")
		return
	}
	redirect(c, "/animalActs")
}

func (h *ActHandler) DeleteAnimalAct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.animalActs.Delete(c, id); err != nil {
		handleError(c, err, "DeleteAnimalAct")
		return
	}
	redirect(c, "/animalActs")
}

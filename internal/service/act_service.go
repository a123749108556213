package service

import (
	"context"
	"fmt"
	"strings"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	apperrors "circus-admin/pkg/app_errors"
)

type HumanActService interface {
	List(ctx context.Context) ([]*model.HumanAct, error)
	// ListByPerformer 只列出指定表演者擔任主角的節目
	ListByPerformer(ctx context.Context, performerID int64) ([]*model.HumanAct, error)
	FindByID(ctx context.Context, id int64) (*model.HumanAct, error)
	Save(ctx context.Context, act *model.HumanAct) (*model.HumanAct, error)
	Delete(ctx context.Context, id int64) error
}

type HumanActServiceImpl struct {
	repo repository.HumanActRepository
}

func NewHumanActService(repo repository.HumanActRepository) HumanActService {
	return &HumanActServiceImpl{repo: repo}
}

func (s *HumanActServiceImpl) List(ctx context.Context) ([]*model.HumanAct, error) {
	return s.repo.List(ctx)
}

func (s *HumanActServiceImpl) ListByPerformer(ctx context.Context, performerID int64) ([]*model.HumanAct, error) {
	return s.repo.ListByMainPerformerID(ctx, performerID)
}

func (s *HumanActServiceImpl) FindByID(ctx context.Context, id int64) (*model.HumanAct, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *HumanActServiceImpl) Save(ctx context.Context, act *model.HumanAct) (*model.HumanAct, error) {
	switch {
	case strings.TrimSpace(act.Title) == "":
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrInvalidInput)
	case act.PerformanceID <= 0 || act.MainPerformerID <= 0:
		return nil, fmt.Errorf("%w: performance and main performer are required", apperrors.ErrInvalidInput)
	}
	if act.ID == 0 {
		return s.repo.Create(ctx, act)
	}
	return s.repo.Update(ctx, act)
}

func (s *HumanActServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

type AnimalActService interface {
	List(ctx context.Context) ([]*model.AnimalAct, error)
	FindByID(ctx context.Context, id int64) (*model.AnimalAct, error)
	Save(ctx context.Context, act *model.AnimalAct) (*model.AnimalAct, error)
	Delete(ctx context.Context, id int64) error
}

type AnimalActServiceImpl struct {
	repo repository.AnimalActRepository
}

func NewAnimalActService(repo repository.AnimalActRepository) AnimalActService {
	return &AnimalActServiceImpl{repo: repo}
}

func (s *AnimalActServiceImpl) List(ctx context.Context) ([]*model.AnimalAct, error) {
	return s.repo.List(ctx)
}

func (s *AnimalActServiceImpl) FindByID(ctx context.Context, id int64) (*model.AnimalAct, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnimalActServiceImpl) Save(ctx context.Context, act *model.AnimalAct) (*model.AnimalAct, error) {
	if act.PerformanceID <= 0 || act.AnimalID <= 0 || act.TrainerID <= 0 {
		return nil, fmt.Errorf("%w: performance, animal and trainer are required", apperrors.ErrInvalidInput)
	}
	if act.ID == 0 {
		return s.repo.Create(ctx, act)
	}
	return s.repo.Update(ctx, act)
}

func (s *AnimalActServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

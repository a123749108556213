package service

import (
	"context"
	"fmt"
	"strings"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	apperrors "circus-admin/pkg/app_errors"
)

type AnimalService interface {
	List(ctx context.Context) ([]*model.Animal, error)
	FindByID(ctx context.Context, id int64) (*model.Animal, error)
	Save(ctx context.Context, animal *model.Animal) (*model.Animal, error)
	Delete(ctx context.Context, id int64) error
}

type AnimalServiceImpl struct {
	repo repository.AnimalRepository
}

func NewAnimalService(repo repository.AnimalRepository) AnimalService {
	return &AnimalServiceImpl{repo: repo}
}

func (s *AnimalServiceImpl) List(ctx context.Context) ([]*model.Animal, error) {
	return s.repo.List(ctx)
}

func (s *AnimalServiceImpl) FindByID(ctx context.Context, id int64) (*model.Animal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AnimalServiceImpl) Save(ctx context.Context, animal *model.Animal) (*model.Animal, error) {
	if strings.TrimSpace(animal.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	if animal.Age < 0 {
		return nil, fmt.Errorf("%w: age must not be negative", apperrors.ErrInvalidInput)
	}
	if animal.ID == 0 {
		return s.repo.Create(ctx, animal)
	}
	return s.repo.Update(ctx, animal)
}

func (s *AnimalServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	apperrors "circus-admin/pkg/app_errors"
)

type EmployeeService interface {
	List(ctx context.Context) ([]*model.Employee, error)
	FindByID(ctx context.Context, id int64) (*model.Employee, error)
	Save(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type EmployeeServiceImpl struct {
	repo repository.EmployeeRepository
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{repo: repo}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]*model.Employee, error) {
	return s.repo.List(ctx)
}

func (s *EmployeeServiceImpl) FindByID(ctx context.Context, id int64) (*model.Employee, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EmployeeServiceImpl) Save(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if strings.TrimSpace(employee.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrInvalidInput)
	}
	if employee.ID == 0 {
		return s.repo.Create(ctx, employee)
	}
	return s.repo.Update(ctx, employee)
}

// Delete 員工仍被演出或節目引用時由資料庫拒絕
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

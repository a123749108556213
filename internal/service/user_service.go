package service

import (
	"context"
	"errors"
	"strings"

	"circus-admin/internal/model"
	"circus-admin/internal/repository"
	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"
	"circus-admin/pkg/logger"

	"go.uber.org/zap"
)

type UserService interface {
	// Register 建立一般觀眾帳號，email 空白或已存在時回傳錯誤且不寫入
	Register(ctx context.Context, email, password string) (*model.User, error)
	// Authenticate 驗證帳號密碼，任何失敗都回傳 ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	// Save inserts when the user has no id, otherwise updates it in place.
	Save(ctx context.Context, user *model.User) (*model.User, error)
	ChangeRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	// Bootstrap 建立預設帳號，重複執行不會產生重複資料
	Bootstrap(ctx context.Context, password string) error
}

type UserServiceImpl struct {
	repo   repository.UserRepository
	hasher security.PasswordHasher
}

func NewUserService(repo repository.UserRepository, hasher security.PasswordHasher) UserService {
	return &UserServiceImpl{
		repo:   repo,
		hasher: hasher,
	}
}

// DefaultAccounts 啟動時建立的帳號
var DefaultAccounts = []struct {
	Email string
	Role  model.Role
}{
	{Email: "superadmin@example.com", Role: model.RoleSuperAdmin},
	{Email: "admin@example.com", Role: model.RoleEmployee},
	{Email: "user@example.com", Role: model.RoleVisitor},
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (s *UserServiceImpl) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if password == "" {
		return nil, apperrors.ErrInvalidInput
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	// 同時註冊時由 unique constraint 擋下，repository 會回傳 ErrEmailAlreadyExists
	return s.repo.Create(ctx, &model.User{
		Email:    email,
		Password: hash,
		Role:     model.RoleVisitor,
	})
}

func (s *UserServiceImpl) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !s.hasher.Verify(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserServiceImpl) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.repo.FindByEmail(ctx, normalizeEmail(email))
}

func (s *UserServiceImpl) List(ctx context.Context) ([]*model.User, error) {
	return s.repo.List(ctx)
}

func (s *UserServiceImpl) Save(ctx context.Context, user *model.User) (*model.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if user.Role != "" && !user.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if user.IsNew() {
		if user.Role == "" {
			user.Role = model.RoleVisitor
		}
		hash, err := s.hasher.Hash(user.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
		return s.repo.Create(ctx, user)
	}

	existing, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if user.Role == "" {
		user.Role = existing.Role
	}

	// 空白或與目前雜湊相同視為未修改，其餘視為新密碼
	if strings.TrimSpace(user.Password) == "" || user.Password == existing.Password {
		user.Password = existing.Password
	} else {
		hash, err := s.hasher.Hash(user.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	return s.repo.Update(ctx, user)
}

func (s *UserServiceImpl) ChangeRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	return s.repo.UpdateRole(ctx, id, role)
}

func (s *UserServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserServiceImpl) Bootstrap(ctx context.Context, password string) error {
	log := logger.WithComponent("bootstrap")
	for _, account := range DefaultAccounts {
		exists, err := s.repo.ExistsByEmail(ctx, account.Email)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}
		created, err := s.repo.CreateIfNotExists(ctx, &model.User{
			Email:    account.Email,
			Password: hash,
			Role:     account.Role,
		})
		if err != nil {
			return err
		}
		if created {
			log.Info("Created default account", zap.String("email", account.Email), zap.String("role", string(account.Role)))
		}
	}
	return nil
}

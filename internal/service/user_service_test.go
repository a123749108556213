package service_test

import (
	"context"
	"strings"
	"testing"

	"circus-admin/internal/model"
	"circus-admin/internal/repository/mocks"
	"circus-admin/internal/security"
	"circus-admin/internal/service"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (service.UserService, *mocks.MockUserRepository, *security.BcryptHasher) {
	t.Helper()
	repo := mocks.NewMockUserRepository(t)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	return service.NewUserService(repo, hasher), repo, hasher
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)

		repo.EXPECT().ExistsByEmail(ctx, "new@example.com").Return(false, nil).Once()
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@example.com" &&
				u.Role == model.RoleVisitor &&
				u.Password != "pw" &&
				hasher.Verify(u.Password, "pw")
		})).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
			u.ID = 10
			return u, nil
		}).Once()

		user, err := svc.Register(ctx, " new@example.com ", "pw")
		require.NoError(t, err)
		assert.Equal(t, int64(10), user.ID)
		assert.NotEqual(t, "pw", user.Password)
	})

	t.Run("Duplicate email does not write", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().ExistsByEmail(ctx, "user@example.com").Return(true, nil).Once()

		_, err := svc.Register(ctx, "user@example.com", "pw")
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Password longer than 72 bytes is invalid input", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().ExistsByEmail(ctx, "long@example.com").Return(false, nil).Once()

		_, err := svc.Register(ctx, "long@example.com", strings.Repeat("a", 80))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing email", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		_, err := svc.Register(ctx, "   ", "pw")
		assert.ErrorIs(t, err, apperrors.ErrEmailRequired)
	})

	t.Run("Race on unique constraint", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().ExistsByEmail(ctx, "race@example.com").Return(false, nil).Once()
		repo.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrEmailAlreadyExists).Once()

		_, err := svc.Register(ctx, "race@example.com", "pw")
		assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	})
}

func TestUserService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		hash, err := hasher.Hash("pw")
		require.NoError(t, err)

		stored := &model.User{ID: 1, Email: "a@example.com", Password: hash, Role: model.RoleEmployee}
		repo.EXPECT().FindByEmail(ctx, "a@example.com").Return(stored, nil).Once()

		user, err := svc.Authenticate(ctx, "a@example.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, stored, user)
	})

	t.Run("Wrong password", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		hash, err := hasher.Hash("pw")
		require.NoError(t, err)

		repo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&model.User{ID: 1, Password: hash}, nil).Once()

		_, err = svc.Authenticate(ctx, "a@example.com", "nope")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Authenticate(ctx, "ghost@example.com", "pw")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestUserService_Save(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T, hasher *security.BcryptHasher) *model.User {
		hash, err := hasher.Hash("old")
		require.NoError(t, err)
		return &model.User{ID: 4, Email: "a@example.com", Password: hash, Role: model.RoleEmployee}
	}

	t.Run("Blank password keeps the stored hash", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		stored := existing(t, hasher)

		repo.EXPECT().FindByID(ctx, int64(4)).Return(stored, nil).Once()
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Password == stored.Password
		})).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) { return u, nil }).Once()

		_, err := svc.Save(ctx, &model.User{ID: 4, Email: "a@example.com", Password: "", Role: model.RoleEmployee})
		require.NoError(t, err)
	})

	t.Run("Password equal to the stored hash is unchanged", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		stored := existing(t, hasher)

		repo.EXPECT().FindByID(ctx, int64(4)).Return(stored, nil).Once()
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Password == stored.Password
		})).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) { return u, nil }).Once()

		_, err := svc.Save(ctx, &model.User{ID: 4, Email: "a@example.com", Password: stored.Password, Role: model.RoleBoss})
		require.NoError(t, err)
	})

	t.Run("New raw password is re-hashed", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		stored := existing(t, hasher)

		repo.EXPECT().FindByID(ctx, int64(4)).Return(stored, nil).Once()
		repo.EXPECT().Update(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Password != "new" && u.Password != stored.Password && hasher.Verify(u.Password, "new")
		})).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) { return u, nil }).Once()

		_, err := svc.Save(ctx, &model.User{ID: 4, Email: "a@example.com", Password: "new"})
		require.NoError(t, err)
	})

	t.Run("Password longer than 72 bytes is invalid input", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)
		stored := existing(t, hasher)

		repo.EXPECT().FindByID(ctx, int64(4)).Return(stored, nil).Once()

		_, err := svc.Save(ctx, &model.User{ID: 4, Email: "a@example.com", Password: strings.Repeat("b", 100)})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("New user is hashed with the default role", func(t *testing.T) {
		svc, repo, hasher := newUserService(t)

		repo.EXPECT().Create(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Role == model.RoleVisitor && hasher.Verify(u.Password, "pw")
		})).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) { return u, nil }).Once()

		_, err := svc.Save(ctx, &model.User{Email: "b@example.com", Password: "pw"})
		require.NoError(t, err)
	})

	t.Run("Unknown id", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.Save(ctx, &model.User{ID: 99, Email: "x@example.com"})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("Invalid role", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		_, err := svc.Save(ctx, &model.User{ID: 4, Email: "a@example.com", Role: "boss"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})
}

func TestUserService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Grants boss", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().UpdateRole(ctx, int64(2), model.RoleBoss).Return(&model.User{ID: 2, Role: model.RoleBoss}, nil).Once()

		user, err := svc.ChangeRole(ctx, 2, model.RoleBoss)
		require.NoError(t, err)
		assert.Equal(t, model.RoleBoss, user.Role)
	})

	t.Run("Rejects unknown role", func(t *testing.T) {
		svc, _, _ := newUserService(t)

		_, err := svc.ChangeRole(ctx, 2, "ADMIN")
		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})
}

func TestUserService_Bootstrap(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates only missing accounts", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().ExistsByEmail(ctx, "superadmin@example.com").Return(true, nil).Once()
		repo.EXPECT().ExistsByEmail(ctx, "admin@example.com").Return(false, nil).Once()
		repo.EXPECT().ExistsByEmail(ctx, "user@example.com").Return(false, nil).Once()
		repo.EXPECT().CreateIfNotExists(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "admin@example.com" && u.Role == model.RoleEmployee
		})).Return(true, nil).Once()
		repo.EXPECT().CreateIfNotExists(ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "user@example.com" && u.Role == model.RoleVisitor
		})).Return(true, nil).Once()

		require.NoError(t, svc.Bootstrap(ctx, "password"))
	})

	t.Run("Second run writes nothing", func(t *testing.T) {
		svc, repo, _ := newUserService(t)

		repo.EXPECT().ExistsByEmail(ctx, mock.Anything).Return(true, nil).Times(3)

		require.NoError(t, svc.Bootstrap(ctx, "password"))
		repo.AssertNotCalled(t, "CreateIfNotExists", mock.Anything, mock.Anything)
	})
}

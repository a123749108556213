package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"circus-admin/internal/model"
	"circus-admin/internal/security"
	apperrors "circus-admin/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type SessionStore interface {
	// 建立：登入成功後建立 session，回傳放進 cookie 的 token
	Create(ctx context.Context, principal *security.Principal) (string, error)
	// 讀取：依 token 取得登入者，並延長有效期限
	Get(ctx context.Context, token string) (*security.Principal, error)
	// 刪除：登出，token 不存在時不視為錯誤
	Delete(ctx context.Context, token string) error
}

type RedisSessionStoreImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &RedisSessionStoreImpl{
		client: client,
		ttl:    ttl,
	}
}

// session key
func (s *RedisSessionStoreImpl) getSessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisSessionStoreImpl) Create(ctx context.Context, principal *security.Principal) (string, error) {
	token := uuid.NewString()
	key := s.getSessionKey(token)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]interface{}{
			"user_id": principal.UserID,
			"email":   principal.Email,
			"role":    string(principal.Role),
		})
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStoreImpl) Get(ctx context.Context, token string) (*security.Principal, error) {
	if token == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	key := s.getSessionKey(token)

	result, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	// 檢查 key 是否存在
	if len(result) == 0 {
		return nil, apperrors.ErrSessionNotFound
	}

	userID, err := strconv.ParseInt(result["user_id"], 10, 64)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	role := model.Role(result["role"])
	if !role.IsValid() {
		return nil, apperrors.ErrSessionNotFound
	}

	if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
		return nil, err
	}

	return &security.Principal{UserID: userID, Email: result["email"], Role: role}, nil
}

func (s *RedisSessionStoreImpl) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, s.getSessionKey(token)).Err()
}

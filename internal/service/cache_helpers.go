package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"auditpro/internal/domain"
	"auditpro/internal/logger"

	"go.uber.org/zap"
)

// cacheGetJSON decodes the cached value at key into dest. Misses and cache
// failures both report false; failures are logged.
func cacheGetJSON(ctx context.Context, c domain.Cache, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	raw, err := c.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Get().Warn("cached value is not valid JSON", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func cacheSetJSON(ctx context.Context, c domain.Cache, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Get().Warn("failed to encode value for cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.Set(ctx, key, string(data), ttl); err != nil {
		logger.Get().Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheInvalidate(ctx context.Context, c domain.Cache, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}

func cacheInvalidatePrefix(ctx context.Context, c domain.Cache, prefix string) {
	if c == nil {
		return
	}
	if err := c.DeleteByPrefix(ctx, prefix); err != nil {
		logger.Get().Warn("cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

// repoError passes domain errors through and wraps anything else as internal.
func repoError(message string, err error) error {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return domain.NewInternalError(message, err)
}

package cache

import (
	"go.uber.org/zap"

	"github.com/localvendor/backend/internal/application/report"
	"github.com/localvendor/backend/internal/infrastructure/config"
)

// NewReportCache builds the report cache named by the configuration.
// When Redis is disabled or unreachable it falls back to the in-memory
// cache, which is sufficient for single-instance deployments.
func NewReportCache(cfg config.RedisConfig, logger *zap.Logger) report.Cache {
	if !cfg.Enabled {
		return NewInMemoryReportCache()
	}

	redisCache, err := NewRedisReportCache(cfg, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory report cache", zap.Error(err))
		return NewInMemoryReportCache()
	}

	logger.Info("Using Redis report cache", zap.String("addr", cfg.Addr()))
	return redisCache
}

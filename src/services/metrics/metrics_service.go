package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/redis"
)

// MetricsService exposes the connection-pool counters of the backing stores.
type MetricsService struct {
	pool        *pgxpool.Pool
	redisClient *redis.RedisClient
	startedAt   time.Time
}

func NewMetricsService(pool *pgxpool.Pool, redisClient *redis.RedisClient) *MetricsService {
	return &MetricsService{
		pool:        pool,
		redisClient: redisClient,
		startedAt:   time.Now(),
	}
}

func (ms *MetricsService) Snapshot() domain.MetricsSnapshot {
	stat := ms.pool.Stat()

	snapshot := domain.MetricsSnapshot{
		UptimeSeconds: int64(time.Since(ms.startedAt).Seconds()),
		DB: domain.DBPoolMetrics{
			TotalConns:        stat.TotalConns(),
			AcquiredConns:     stat.AcquiredConns(),
			IdleConns:         stat.IdleConns(),
			ConstructingConns: stat.ConstructingConns(),
			MaxConns:          stat.MaxConns(),
			NewConnsCount:     stat.NewConnsCount(),
			AcquireCount:      stat.AcquireCount(),
			EmptyAcquireCount: stat.EmptyAcquireCount(),
		},
	}

	if ms.redisClient != nil {
		poolStats := ms.redisClient.PoolStats()
		snapshot.Cache = &domain.CachePoolMetrics{
			Hits:       poolStats.Hits,
			Misses:     poolStats.Misses,
			Timeouts:   poolStats.Timeouts,
			TotalConns: poolStats.TotalConns,
			IdleConns:  poolStats.IdleConns,
			StaleConns: poolStats.StaleConns,
		}
	}

	return snapshot
}

// HealthCheck pings the backing stores.
func (ms *MetricsService) HealthCheck(ctx context.Context) error {
	if err := ms.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	if ms.redisClient != nil {
		if err := ms.redisClient.HealthCheck(ctx); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
	}

	return nil
}

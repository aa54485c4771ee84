package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/logger"
	"github.com/sbilibin2017/gw-medequip-tracker/internal/models"
)

const reportCacheKey = "report:summary"

// ReportCacheRepository caches the aggregate report in Redis.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached report
}

// NewReportCacheRepository creates a new repository instance with a TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches the cached report, or nil if the cache is empty.
func (r *ReportCacheRepository) Get(ctx context.Context) (*models.Report, error) {
	val, err := r.client.Get(ctx, reportCacheKey).Result()

	logger.Log.Infow(
		"key", reportCacheKey,
		"result", val,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report models.Report
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, err
	}

	return &report, nil
}

// Set caches the report with the configured expiration.
func (r *ReportCacheRepository) Set(ctx context.Context, report models.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, reportCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", reportCacheKey,
		"result", "ok",
		"error", err,
	)

	return err
}

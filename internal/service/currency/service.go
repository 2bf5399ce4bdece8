// internal/service/currency/service.go
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"farepass-service/internal/domain/currency"
	"farepass-service/internal/repository/postgres"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cacheKey = "exchange_rates:table"
	cacheTTL = time.Hour
)

type CurrencyService struct {
	rateRepo *postgres.RateRepository
	provider RateProvider
	redis    *redis.Client
	logger   *zap.Logger
}

func NewCurrencyService(rateRepo *postgres.RateRepository, provider RateProvider, redisClient *redis.Client, logger *zap.Logger) *CurrencyService {
	return &CurrencyService{
		rateRepo: rateRepo,
		provider: provider,
		redis:    redisClient,
		logger:   logger,
	}
}

// Table returns the current rate table, preferring the Redis cache and
// falling back to the stored rows. An empty table is still usable: every
// conversion degrades to 1:1 passthrough.
func (s *CurrencyService) Table(ctx context.Context) (currency.RateTable, error) {
	data, err := s.redis.Get(ctx, cacheKey).Bytes()
	if err == nil {
		var table currency.RateTable
		if err := json.Unmarshal(data, &table); err == nil {
			return table, nil
		}
		// Corrupt cache entry; fall through to the database.
	}

	table, err := s.rateRepo.LoadTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate table: %w", err)
	}

	s.cache(ctx, table)
	return table, nil
}

// Refresh pulls fresh rates from the provider and stores them. A provider
// failure keeps the previous table in place.
func (s *CurrencyService) Refresh(ctx context.Context) error {
	table, err := s.provider.Fetch(ctx)
	if err != nil {
		s.logger.Error("rate refresh failed, keeping previous table", zap.Error(err))
		return err
	}

	if err := s.rateRepo.UpsertAll(ctx, table); err != nil {
		s.logger.Error("failed to store refreshed rates", zap.Error(err))
		return err
	}

	s.cache(ctx, table)

	s.logger.Info("exchange rates refreshed", zap.Int("currencies", len(table)))
	return nil
}

// List returns the stored rates with refresh timestamps (admin view).
func (s *CurrencyService) List(ctx context.Context) ([]currency.ExchangeRate, error) {
	return s.rateRepo.List(ctx)
}

func (s *CurrencyService) cache(ctx context.Context, table currency.RateTable) {
	data, err := json.Marshal(table)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, cacheKey, data, cacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache rate table", zap.Error(err))
	}
}

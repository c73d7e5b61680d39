package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/lspdigital/sertifikasi_service/internal/clients/wilayah"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const wilayahCacheTTL = 24 * time.Hour

// WilayahService fronts the external region directory with a redis cache.
// The directory changes rarely, the submission form hits it on every
// keypress-level cascade, and none of the answers ever feed back into stored
// addresses (those are denormalized name snapshots).
type WilayahService interface {
	Provinces(ctx context.Context) ([]wilayah.Region, error)
	Regencies(ctx context.Context, provinceID string) ([]wilayah.Region, error)
	Districts(ctx context.Context, regencyID string) ([]wilayah.Region, error)
	Villages(ctx context.Context, districtID string) ([]wilayah.Region, error)
}

type wilayahService struct {
	client *wilayah.Client
	rdb    *redis.Client
	log    *zap.Logger
}

func NewWilayahService(client *wilayah.Client, rdb *redis.Client, log *zap.Logger) WilayahService {
	return &wilayahService{client: client, rdb: rdb, log: log}
}

func (s *wilayahService) Provinces(ctx context.Context) ([]wilayah.Region, error) {
	return s.cached(ctx, "wilayah:provinces", func() ([]wilayah.Region, error) {
		return s.client.Provinces(ctx)
	})
}

func (s *wilayahService) Regencies(ctx context.Context, provinceID string) ([]wilayah.Region, error) {
	return s.cached(ctx, "wilayah:regencies:"+provinceID, func() ([]wilayah.Region, error) {
		return s.client.Regencies(ctx, provinceID)
	})
}

func (s *wilayahService) Districts(ctx context.Context, regencyID string) ([]wilayah.Region, error) {
	return s.cached(ctx, "wilayah:districts:"+regencyID, func() ([]wilayah.Region, error) {
		return s.client.Districts(ctx, regencyID)
	})
}

func (s *wilayahService) Villages(ctx context.Context, districtID string) ([]wilayah.Region, error) {
	return s.cached(ctx, "wilayah:villages:"+districtID, func() ([]wilayah.Region, error) {
		return s.client.Villages(ctx, districtID)
	})
}

// cached is best-effort cache-aside: redis being down degrades to direct
// directory calls, it never fails the request.
func (s *wilayahService) cached(ctx context.Context, key string, fetch func() ([]wilayah.Region, error)) ([]wilayah.Region, error) {
	if s.rdb != nil {
		raw, err := s.rdb.Get(ctx, key).Result()
		if err == nil {
			var regions []wilayah.Region
			if jerr := json.Unmarshal([]byte(raw), &regions); jerr == nil {
				return regions, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.log.Warn("wilayah cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	regions, err := fetch()
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if raw, jerr := json.Marshal(regions); jerr == nil {
			if serr := s.rdb.Set(ctx, key, raw, wilayahCacheTTL).Err(); serr != nil {
				s.log.Warn("wilayah cache write failed", zap.String("key", key), zap.Error(serr))
			}
		}
	}
	return regions, nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bikya/bikya-backend/internal/domain/entity"
	usecasecontract "github.com/bikya/bikya-backend/internal/usecase/contract"
)

// BikeCacheStore caches bike details and listing pages in Redis.
type BikeCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ usecasecontract.IBikeCache = (*BikeCacheStore)(nil)

func NewBikeCacheStore(rdb *redis.Client) *BikeCacheStore {
	return &BikeCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   5 * time.Minute,
	}
}

func bikeDetailKey(id string) string { return fmt.Sprintf("bike:id:%s", id) }

func (c *BikeCacheStore) GetBikeByID(ctx context.Context, id string) (*entity.Bike, bool, error) {
	b, err := c.rdb.Get(ctx, bikeDetailKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var bike entity.Bike
	if err := json.Unmarshal(b, &bike); err != nil {
		return nil, false, nil
	}
	return &bike, true, nil
}

func (c *BikeCacheStore) SetBikeByID(ctx context.Context, id string, bike *entity.Bike) error {
	data, err := json.Marshal(bike)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, bikeDetailKey(id), data, c.detailTTL).Err()
}

func (c *BikeCacheStore) InvalidateBikeByID(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, bikeDetailKey(id)).Err()
}

func (c *BikeCacheStore) GetBikesPage(ctx context.Context, key string) (*usecasecontract.CachedBikesPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page usecasecontract.CachedBikesPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *BikeCacheStore) SetBikesPage(ctx context.Context, key string, page *usecasecontract.CachedBikesPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateBikeLists drops every cached listing page. Pages are keyed
// "bikes:list:<filter-hash>", so a SCAN over the prefix catches them all.
func (c *BikeCacheStore) InvalidateBikeLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, "bikes:list:*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	_, _ = pipe.Exec(ctx)
	return nil
}

package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vipinrawat0001/closet-carousel-commerce/model"
)

// RedisStore keeps the three session keys in Redis, for deployments where
// several instances must see the same session. Values are JSON, no TTL:
// carts live until cleared, like the file store.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func buyKey(sessionID string) string  { return fmt.Sprintf("cart:buy:%s", sessionID) }
func rentKey(sessionID string) string { return fmt.Sprintf("cart:rent:%s", sessionID) }
func modeKey(sessionID string) string { return fmt.Sprintf("cart:mode:%s", sessionID) }

func (s *RedisStore) Load(ctx context.Context, sessionID string) (Snapshot, error) {
	var snap Snapshot

	if data, err := s.client.Get(ctx, buyKey(sessionID)).Bytes(); err == nil {
		if err2 := json.Unmarshal(data, &snap.Buy); err2 != nil {
			return Snapshot{}, fmt.Errorf("unmarshal buy cart failed: %w", err2)
		}
	} else if !errors.Is(err, redis.Nil) {
		return snap, fmt.Errorf("redis get failed: %w", err)
	}

	if data, err := s.client.Get(ctx, rentKey(sessionID)).Bytes(); err == nil {
		if err2 := json.Unmarshal(data, &snap.Rent); err2 != nil {
			return Snapshot{}, fmt.Errorf("unmarshal rent cart failed: %w", err2)
		}
	} else if !errors.Is(err, redis.Nil) {
		return snap, fmt.Errorf("redis get failed: %w", err)
	}

	mode, err := s.client.Get(ctx, modeKey(sessionID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return snap, fmt.Errorf("redis get failed: %w", err)
	}
	snap.Mode = mode
	return snap, nil
}

func (s *RedisStore) SaveBuy(ctx context.Context, sessionID string, lines []model.BuyLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal buy cart failed: %w", err)
	}
	if err := s.client.Set(ctx, buyKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) SaveRent(ctx context.Context, sessionID string, lines []model.RentLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal rent cart failed: %w", err)
	}
	if err := s.client.Set(ctx, rentKey(sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (s *RedisStore) SaveMode(ctx context.Context, sessionID string, mode model.ShoppingMode) error {
	if err := s.client.Set(ctx, modeKey(sessionID), string(mode), 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

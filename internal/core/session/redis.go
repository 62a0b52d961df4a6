package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Redis keeps sessions as plain string keys with a TTL, so expiry is redis' job.
type Redis struct {
	RDB *redis.Client
}

func NewRedis(ctx context.Context, addr, pass string, db int) (*Redis, error) {
	const op = "session.NewRedis"
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Redis{RDB: rdb}, nil
}

func (s *Redis) Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	const op = "session.Redis.Save"
	if err := s.RDB.Set(ctx, keyPrefix+sid, userID, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Redis) Lookup(ctx context.Context, sid string) (int64, error) {
	const op = "session.Redis.Lookup"
	v, err := s.RDB.Get(ctx, keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	uid, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: corrupt value: %w", op, err)
	}
	return uid, nil
}

func (s *Redis) Delete(ctx context.Context, sid string) error {
	const op = "session.Redis.Delete"
	if err := s.RDB.Del(ctx, keyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Redis) Close() error { return s.RDB.Close() }

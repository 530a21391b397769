package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"holiday_tracker/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client

func Connect() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	_, err := RDB.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	fmt.Println("Successfully connected to Redis!")
}

func Close() {
	if RDB != nil {
		RDB.Close()
		fmt.Println("Redis connection closed.")
	}
}

var ErrNotFound = errors.New("session not found")

// Session is the authoritative server-side record behind a login token.
// Deleting it (logout, TTL expiry) invalidates the token immediately.
type Session struct {
	UserID string
	Role   string
}

type Store interface {
	Create(ctx context.Context, sid string, sess Session, ttl time.Duration) error
	Get(ctx context.Context, sid string) (Session, error)
	Delete(ctx context.Context, sid string) error
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (s *redisStore) Create(ctx context.Context, sid string, sess Session, ttl time.Duration) error {
	key := sessionKey(sid)
	if err := s.rdb.HSet(ctx, key, "user_id", sess.UserID, "role", sess.Role).Err(); err != nil {
		return fmt.Errorf("redisStore.Create: %w", err)
	}
	if err := s.rdb.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("redisStore.Create: %w", err)
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, sid string) (Session, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("redisStore.Get: %w", err)
	}
	if len(vals) == 0 {
		return Session{}, ErrNotFound
	}
	return Session{UserID: vals["user_id"], Role: vals["role"]}, nil
}

func (s *redisStore) Delete(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("redisStore.Delete: %w", err)
	}
	return nil
}

// Package chatstore persists chat session history for the bot surfaces.
// The redis implementation backs multi-instance deployments; the in-memory
// one serves single-node setups without redis.
package chatstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/healthpredict/healthpredict/internal/config"
	"github.com/healthpredict/healthpredict/internal/domain/service"
	"github.com/healthpredict/healthpredict/pkg/constants"
	"github.com/healthpredict/healthpredict/pkg/errors"
	"github.com/healthpredict/healthpredict/pkg/logger"
)

const sessionKeyPrefix = "healthpredict:chat:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

var _ service.ChatStore = (*redisStore)(nil)

// NewRedisStore connects to redis and verifies connectivity.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig, log logger.Logger) (service.ChatStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.ErrUnavailable("redis unreachable").WithCause(err)
	}

	ttl := cfg.SessionTTLDuration()
	if ttl <= 0 {
		ttl = constants.DefaultChatSessionTTL
	}
	return &redisStore{client: client, ttl: ttl, log: log}, nil
}

// Append pushes a message onto the session list and refreshes its TTL.
func (s *redisStore) Append(ctx context.Context, sessionID string, msg service.ChatMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	key := sessionKeyPrefix + sessionID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// History returns the session's messages oldest-first. An expired or
// unknown session yields an empty history.
func (s *redisStore) History(ctx context.Context, sessionID string) ([]service.ChatMessage, error) {
	raw, err := s.client.LRange(ctx, sessionKeyPrefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	messages := make([]service.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg service.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			s.log.Warn(ctx, "dropping undecodable chat message", logger.Fields{"session_id": sessionID})
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

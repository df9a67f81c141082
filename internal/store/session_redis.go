// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-meal-planner/internal/config"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// NewConnectRedis creates a Redis client for cfg and pings it.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Str("addr", cfg.Address).Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// redisSessionStore keeps one JSON record per session under
// "session:<id>" with a TTL.
type redisSessionStore struct {
	client redis.Cmdable
	logger *logger.Logger
}

// NewRedisSessionStore constructs a [SessionStore] on top of client.
func NewRedisSessionStore(client redis.Cmdable, logger *logger.Logger) SessionStore {
	logger.Debug().Msg("creating redis session store")
	return &redisSessionStore{
		client: client,
		logger: logger,
	}
}

func (s *redisSessionStore) CreateSession(ctx context.Context, session models.Session, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	if err = s.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionStore.CreateSession").Int64("user_id", session.UserID).Msg("failed to store session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	return nil
}

// GetSession returns [ErrSessionNotFound] for unknown or expired ids.
func (s *redisSessionStore) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*redisSessionStore.GetSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStore, err)
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		log.Err(err).Str("func", "*redisSessionStore.GetSession").Msg("failed to decode session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}

	return session, nil
}

func (s *redisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStore.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrSessionStore, err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

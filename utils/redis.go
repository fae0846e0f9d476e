package utils

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JavCast03/proyectoGSASD/models"
)

const redisTimeout = 5 * time.Second

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) (*redis.Client, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing Redis DSN: %w", err)
	}

	opt.PoolSize = 100
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// RedisSessions stores each session as a hash at session:<token> with a
// TTL, plus a per-user index set at user_sessions:<id>.
type RedisSessions struct {
	client *redis.Client
}

func NewRedisSessions(client *redis.Client) *RedisSessions {
	return &RedisSessions{client: client}
}

func sessionKey(token string) string { return "session:" + token }

func userSessionsKey(userID int) string {
	return "user_sessions:" + strconv.Itoa(userID)
}

func (r *RedisSessions) Create(ctx context.Context, user models.User, userAgent, ipAddress string) (models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	s := newSession(user, userAgent, ipAddress)
	fields := map[string]any{
		"user_id":    strconv.Itoa(s.UserID),
		"username":   s.Username,
		"created_at": s.CreatedAt.Format(time.RFC3339),
		"expires_at": s.ExpiresAt.Format(time.RFC3339),
		"user_agent": s.UserAgent,
		"ip_address": s.IPAddress,
	}

	key := sessionKey(s.Token)
	if err := r.client.HSet(ctx, key, fields).Err(); err != nil {
		return models.Session{}, err
	}
	if err := r.client.Expire(ctx, key, SessionTTL).Err(); err != nil {
		return models.Session{}, err
	}
	// Add to the user's session index
	if err := r.client.SAdd(ctx, userSessionsKey(s.UserID), key).Err(); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *RedisSessions) Get(ctx context.Context, token string) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	data, err := r.client.HGetAll(ctx, sessionKey(token)).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	userID, err := strconv.Atoi(data["user_id"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session %q: %w", token, err)
	}
	createdAt, _ := time.Parse(time.RFC3339, data["created_at"])
	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt session %q: %w", token, err)
	}
	if time.Now().After(expiresAt) {
		return nil, nil
	}

	return &models.Session{
		Token:     token,
		UserID:    userID,
		Username:  data["username"],
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
		UserAgent: data["user_agent"],
		IPAddress: data["ip_address"],
	}, nil
}

func (r *RedisSessions) Delete(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	key := sessionKey(token)
	userID, err := r.client.HGet(ctx, key, "user_id").Result()
	if err == nil {
		if id, convErr := strconv.Atoi(userID); convErr == nil {
			// Remove from the user's session index
			_ = r.client.SRem(ctx, userSessionsKey(id), key).Err()
		}
	} else if err != redis.Nil {
		return err
	}

	return r.client.Del(ctx, key).Err()
}

// DeleteAllUserSessions removes every session belonging to a user.
func (r *RedisSessions) DeleteAllUserSessions(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	indexKey := userSessionsKey(userID)
	sessionKeys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}
	if len(sessionKeys) > 0 {
		if err := r.client.Del(ctx, sessionKeys...).Err(); err != nil {
			return err
		}
	}
	return r.client.Del(ctx, indexKey).Err()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRecord struct {
	SID       string    `json:"sid"`
	ViewerID  string    `json:"viewer_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionRepo keeps viewer sessions keyed by session ID with a sliding
// TTL refreshed on every successful auth check.
type SessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepo(client *redis.Client, ttl time.Duration) *SessionRepo {
	if ttl <= 0 {
		ttl = 720 * time.Hour
	}
	return &SessionRepo{client: client, ttl: ttl}
}

func sessionKey(sid string) string {
	return "session:" + sid
}

func (r *SessionRepo) Save(ctx context.Context, rec SessionRecord) error {
	if r.client == nil {
		return fmt.Errorf("session repo is not configured")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(rec.SID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *SessionRepo) Get(ctx context.Context, sid string) (SessionRecord, error) {
	if r.client == nil {
		return SessionRecord{}, fmt.Errorf("session repo is not configured")
	}

	data, err := r.client.Get(ctx, sessionKey(sid)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return SessionRecord{}, ErrSessionNotFound
		}
		return SessionRecord{}, fmt.Errorf("get session: %w", err)
	}

	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SessionRecord{}, fmt.Errorf("unmarshal session: %w", err)
	}

	_ = r.client.Expire(ctx, sessionKey(sid), r.ttl).Err()

	return rec, nil
}

func (r *SessionRepo) Delete(ctx context.Context, sid string) error {
	if r.client == nil {
		return fmt.Errorf("session repo is not configured")
	}

	if err := r.client.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

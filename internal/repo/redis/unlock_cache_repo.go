package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// UnlockCacheRepo mirrors a viewer's unlocked talent set in redis so
// discovery can gate cards without a postgres round trip. The ledger
// in postgres stays authoritative; this cache is rebuilt on login.
type UnlockCacheRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewUnlockCacheRepo(client *redis.Client, ttl time.Duration) *UnlockCacheRepo {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &UnlockCacheRepo{client: client, ttl: ttl}
}

func unlockSetKey(viewerID string) string {
	return "unlocks:" + viewerID
}

// Replace swaps the viewer's cached unlock set for the given talent
// IDs atomically.
func (r *UnlockCacheRepo) Replace(ctx context.Context, viewerID string, talentIDs []string) error {
	if r.client == nil {
		return fmt.Errorf("unlock cache is not configured")
	}

	key := unlockSetKey(viewerID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(talentIDs) > 0 {
		members := make([]any, 0, len(talentIDs))
		for _, id := range talentIDs {
			members = append(members, id)
		}
		pipe.SAdd(ctx, key, members...)
		pipe.Expire(ctx, key, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("replace unlock set: %w", err)
	}

	return nil
}

func (r *UnlockCacheRepo) Add(ctx context.Context, viewerID, talentID string) error {
	if r.client == nil {
		return fmt.Errorf("unlock cache is not configured")
	}

	key := unlockSetKey(viewerID)
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, key, talentID)
	pipe.Expire(ctx, key, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add unlock to set: %w", err)
	}

	return nil
}

func (r *UnlockCacheRepo) Contains(ctx context.Context, viewerID, talentID string) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("unlock cache is not configured")
	}

	ok, err := r.client.SIsMember(ctx, unlockSetKey(viewerID), talentID).Result()
	if err != nil {
		return false, fmt.Errorf("check unlock set: %w", err)
	}

	return ok, nil
}

func (r *UnlockCacheRepo) Members(ctx context.Context, viewerID string) ([]string, error) {
	if r.client == nil {
		return nil, fmt.Errorf("unlock cache is not configured")
	}

	members, err := r.client.SMembers(ctx, unlockSetKey(viewerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read unlock set: %w", err)
	}

	return members, nil
}

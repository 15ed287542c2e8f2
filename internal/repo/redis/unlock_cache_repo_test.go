package redis

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()

	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestUnlockCacheReplaceAndContains(t *testing.T) {
	ctx := context.Background()
	repo := NewUnlockCacheRepo(newTestClient(t), time.Hour)

	if err := repo.Replace(ctx, "viewer-1", []string{"t1", "t2"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	ok, err := repo.Contains(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if !ok {
		t.Fatal("t1 should be in the unlock set")
	}

	ok, err = repo.Contains(ctx, "viewer-1", "t9")
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if ok {
		t.Fatal("t9 should not be in the unlock set")
	}

	if err := repo.Replace(ctx, "viewer-1", []string{"t3"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	members, err := repo.Members(ctx, "viewer-1")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	if len(members) != 1 || members[0] != "t3" {
		t.Fatalf("replace should discard previous members, got %v", members)
	}
}

func TestUnlockCacheAddAccumulates(t *testing.T) {
	ctx := context.Background()
	repo := NewUnlockCacheRepo(newTestClient(t), time.Hour)

	if err := repo.Add(ctx, "viewer-2", "t1"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, "viewer-2", "t2"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := repo.Add(ctx, "viewer-2", "t1"); err != nil {
		t.Fatalf("repeated add: %v", err)
	}

	members, err := repo.Members(ctx, "viewer-2")
	if err != nil {
		t.Fatalf("members: %v", err)
	}
	sort.Strings(members)
	if len(members) != 2 || members[0] != "t1" || members[1] != "t2" {
		t.Fatalf("unexpected members: %v", members)
	}
}

func TestSessionRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepo(newTestClient(t), time.Hour)

	rec := SessionRecord{
		SID:       "sid-1",
		ViewerID:  "viewer-1",
		Role:      "agency",
		CreatedAt: time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save session: %v", err)
	}

	got, err := repo.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.ViewerID != "viewer-1" || got.Role != "agency" {
		t.Fatalf("unexpected session: %+v", got)
	}

	if err := repo.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := repo.Get(ctx, "sid-1"); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

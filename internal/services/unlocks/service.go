package unlocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
)

// ErrUnauthenticated is returned when a gated operation runs without a
// signed-in viewer.
var ErrUnauthenticated = errors.New("viewer is not authenticated")

// Store is the durable unlock ledger. Record must be idempotent on the
// (viewer, talent) pair and report whether a new row was written.
type Store interface {
	Record(ctx context.Context, rec model.UnlockRecord) (bool, error)
	ListByViewer(ctx context.Context, viewerID string) ([]model.UnlockRecord, error)
	Exists(ctx context.Context, viewerID, talentID string) (bool, error)
}

// Cache mirrors the unlocked set for fast gating checks. All cache
// failures degrade to the store, never to a wrong answer.
type Cache interface {
	Replace(ctx context.Context, viewerID string, talentIDs []string) error
	Add(ctx context.Context, viewerID, talentID string) error
	Contains(ctx context.Context, viewerID, talentID string) (bool, error)
}

type Service struct {
	store Store
	cache Cache
	log   *zap.Logger
	now   func() time.Time
}

func NewService(store Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log, now: time.Now}
}

func (s *Service) AttachCache(c Cache) {
	s.cache = c
}

// Grant records an unlock for the viewer. Granting an already-unlocked
// talent is a no-op: the original unlock stands and no second charge
// is implied. The bool reports whether this call created the unlock.
func (s *Service) Grant(ctx context.Context, viewerID, talentID string, amountPaid int) (bool, error) {
	if viewerID == "" {
		return false, ErrUnauthenticated
	}
	if talentID == "" {
		return false, fmt.Errorf("talent id is required")
	}

	created, err := s.store.Record(ctx, model.UnlockRecord{
		ID:         uuid.NewString(),
		ViewerID:   viewerID,
		TalentID:   talentID,
		AmountPaid: amountPaid,
		UnlockedAt: s.now(),
	})
	if err != nil {
		return false, fmt.Errorf("record unlock: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Add(ctx, viewerID, talentID); err != nil {
			s.log.Warn("unlock cache add failed", zap.String("viewer_id", viewerID), zap.Error(err))
		}
	}

	if !created {
		s.log.Debug("unlock already granted",
			zap.String("viewer_id", viewerID),
			zap.String("talent_id", talentID))
	}

	return created, nil
}

// IsUnlocked answers the gating question for one talent. An anonymous
// viewer sees everything locked.
func (s *Service) IsUnlocked(ctx context.Context, viewerID, talentID string) (bool, error) {
	if viewerID == "" {
		return false, nil
	}

	if s.cache != nil {
		ok, err := s.cache.Contains(ctx, viewerID, talentID)
		if err == nil {
			return ok, nil
		}
		s.log.Warn("unlock cache read failed, falling back to store", zap.Error(err))
	}

	return s.store.Exists(ctx, viewerID, talentID)
}

func (s *Service) List(ctx context.Context, viewerID string) ([]model.UnlockRecord, error) {
	if viewerID == "" {
		return nil, ErrUnauthenticated
	}
	return s.store.ListByViewer(ctx, viewerID)
}

// Refresh rebuilds the viewer's cached unlock set from the ledger.
// Called at session start so gating never trusts a stale cache across
// logins.
func (s *Service) Refresh(ctx context.Context, viewerID string) error {
	if viewerID == "" {
		return ErrUnauthenticated
	}
	if s.cache == nil {
		return nil
	}

	records, err := s.store.ListByViewer(ctx, viewerID)
	if err != nil {
		return fmt.Errorf("load unlock ledger: %w", err)
	}

	talentIDs := make([]string, 0, len(records))
	for _, rec := range records {
		talentIDs = append(talentIDs, rec.TalentID)
	}

	if err := s.cache.Replace(ctx, viewerID, talentIDs); err != nil {
		return fmt.Errorf("rebuild unlock cache: %w", err)
	}

	return nil
}

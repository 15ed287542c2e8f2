package catalog

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/domain/rules"
)

// TalentStore is the roster source. List may narrow by role; the
// service applies the full predicate set in memory.
type TalentStore interface {
	List(ctx context.Context, role string) ([]model.TalentRecord, error)
	Get(ctx context.Context, id string) (model.TalentRecord, error)
}

type Config struct {
	AgeMin int
	AgeMax int
	// FetchTimeout bounds roster reads so a slow store degrades into
	// the stale-view fallback instead of stalling the page.
	FetchTimeout time.Duration
}

type Service struct {
	store TalentStore
	cfg   Config
	log   *zap.Logger
}

func NewService(store TalentStore, cfg Config, log *zap.Logger) *Service {
	if cfg.AgeMin == 0 {
		cfg.AgeMin = rules.MinAdultAge
	}
	if cfg.AgeMax == 0 {
		cfg.AgeMax = rules.MaxFilterAge
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, cfg: cfg, log: log}
}

// Select loads the roster for the criteria's role tab and returns the
// records that satisfy every active dimension, ordered by the sort
// key. The input slice held by the store is never mutated.
func (s *Service) Select(ctx context.Context, c Criteria) ([]model.TalentRecord, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	records, err := s.store.List(fetchCtx, c.Role)
	if err != nil {
		return nil, fmt.Errorf("load talent roster: %w", err)
	}

	return s.apply(records, c), nil
}

// Apply runs the same pipeline over an already-loaded roster. The
// discovery recompute path uses this against its snapshot.
func (s *Service) Apply(records []model.TalentRecord, c Criteria) []model.TalentRecord {
	return s.apply(records, c)
}

func (s *Service) Get(ctx context.Context, id string) (model.TalentRecord, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	return s.store.Get(fetchCtx, id)
}

func (s *Service) apply(records []model.TalentRecord, c Criteria) []model.TalentRecord {
	c.AgeMin, c.AgeMax = rules.NormalizeAgeRange(c.AgeMin, c.AgeMax, s.cfg.AgeMin, s.cfg.AgeMax)

	out := make([]model.TalentRecord, 0, len(records))
	for _, rec := range records {
		if matches(rec, c) {
			out = append(out, rec)
		}
	}

	applySort(out, c.SortKey)

	return out
}

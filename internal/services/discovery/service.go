package discovery

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/services/catalog"
)

// Catalog runs the filter and sort pipeline over the roster.
type Catalog interface {
	Select(ctx context.Context, c catalog.Criteria) ([]model.TalentRecord, error)
	Get(ctx context.Context, id string) (model.TalentRecord, error)
}

// Gate answers whether the viewer has unlocked a talent.
type Gate interface {
	IsUnlocked(ctx context.Context, viewerID, talentID string) (bool, error)
}

// Presigner resolves portfolio object keys into short-lived URLs for
// unlocked cards.
type Presigner interface {
	PresignPortfolio(ctx context.Context, keys []string) ([]string, error)
}

// Service assembles per-viewer discovery views. Every Browse call gets
// a sequence number at entry; a finished computation only becomes the
// viewer's current view if no newer computation has landed first, so a
// slow stale query can never overwrite the result of a fresher one.
type Service struct {
	catalog   Catalog
	gate      Gate
	presigner Presigner
	log       *zap.Logger
	now       func() time.Time

	seq atomic.Uint64

	mu    sync.Mutex
	views map[string]View
}

func NewService(cat Catalog, gate Gate, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		catalog: cat,
		gate:    gate,
		log:     log,
		now:     time.Now,
		views:   map[string]View{},
	}
}

func (s *Service) AttachPresigner(p Presigner) {
	s.presigner = p
}

// Browse computes a fresh view for the criteria. When the roster
// backend is down it falls back to the viewer's last committed view,
// marked stale, rather than erroring the whole page.
func (s *Service) Browse(ctx context.Context, viewerID string, c catalog.Criteria) (View, error) {
	seq := s.seq.Add(1)

	records, err := s.catalog.Select(ctx, c)
	if err != nil {
		s.mu.Lock()
		last, ok := s.views[viewKey(viewerID)]
		s.mu.Unlock()
		if ok {
			s.log.Warn("serving stale discovery view", zap.String("viewer_id", viewerID), zap.Error(err))
			last.Stale = true
			return last, nil
		}
		return View{}, err
	}

	cards := make([]Card, 0, len(records))
	for _, rec := range records {
		card, err := s.buildCard(ctx, viewerID, rec)
		if err != nil {
			return View{}, err
		}
		cards = append(cards, card)
	}

	view := View{
		Cards:       cards,
		Total:       len(cards),
		GeneratedAt: s.now(),
		seq:         seq,
	}

	s.commit(viewerID, view)

	return view, nil
}

// Detail builds a single card for the talent profile page.
func (s *Service) Detail(ctx context.Context, viewerID, talentID string) (Card, error) {
	rec, err := s.catalog.Get(ctx, talentID)
	if err != nil {
		return Card{}, err
	}
	return s.buildCard(ctx, viewerID, rec)
}

// OnUnlock patches the viewer's current view in place so a fresh
// unlock shows without waiting for the next recompute.
func (s *Service) OnUnlock(ctx context.Context, viewerID, talentID string) {
	rec, err := s.catalog.Get(ctx, talentID)
	if err != nil {
		s.log.Warn("refresh unlocked card failed", zap.String("talent_id", talentID), zap.Error(err))
		return
	}

	card := s.unlockedCard(ctx, rec)

	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := s.views[viewKey(viewerID)]
	if !ok {
		return
	}
	for i := range view.Cards {
		if view.Cards[i].ID == talentID {
			view.Cards[i] = card
			break
		}
	}
	s.views[viewKey(viewerID)] = view
}

func (s *Service) commit(viewerID string, view View) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := viewKey(viewerID)
	if current, ok := s.views[key]; ok && current.seq > view.seq {
		s.log.Debug("discarding superseded discovery view",
			zap.Uint64("seq", view.seq),
			zap.Uint64("current_seq", current.seq))
		return
	}
	s.views[key] = view
}

func (s *Service) buildCard(ctx context.Context, viewerID string, rec model.TalentRecord) (Card, error) {
	unlocked := false
	if viewerID != "" {
		var err error
		unlocked, err = s.gate.IsUnlocked(ctx, viewerID, rec.ID)
		if err != nil {
			return Card{}, fmt.Errorf("check unlock state: %w", err)
		}
	}

	if unlocked {
		return s.unlockedCard(ctx, rec), nil
	}
	return lockedCard(rec), nil
}

func lockedCard(rec model.TalentRecord) Card {
	return Card{
		ID:          rec.ID,
		Name:        rec.Name,
		Role:        string(rec.Role),
		Category:    rec.Category,
		Tags:        rec.Tags,
		Age:         rec.Age,
		Gender:      rec.Gender,
		Ethnicity:   rec.Ethnicity,
		Location:    rec.Location,
		Price:       rec.Price,
		PriceType:   string(rec.PriceType),
		UnlockPrice: rec.UnlockPrice,
		UnionStatus: string(rec.UnionStatus),
		ImageURL:    rec.ImageURL,
		Socials:     rec.Socials,
		Model:       rec.Model,
		Craft:       rec.Craft,
	}
}

func (s *Service) unlockedCard(ctx context.Context, rec model.TalentRecord) Card {
	card := lockedCard(rec)
	card.Unlocked = true
	card.ContactEmail = rec.ContactEmail
	card.ContactPhone = rec.ContactPhone
	card.Availability = rec.Availability

	if s.presigner != nil && len(rec.PortfolioKeys) > 0 {
		urls, err := s.presigner.PresignPortfolio(ctx, rec.PortfolioKeys)
		if err != nil {
			s.log.Warn("presign portfolio failed", zap.String("talent_id", rec.ID), zap.Error(err))
		} else {
			card.PortfolioURLs = urls
		}
	}

	return card
}

// viewKey keeps anonymous browsing in one shared slot.
func viewKey(viewerID string) string {
	if viewerID == "" {
		return "anon"
	}
	return viewerID
}

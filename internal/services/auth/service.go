package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/enums"
	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/pkg/validate"
	pgrepo "github.com/smediamanagement84-star/ModelApp/internal/repo/postgres"
	redisrepo "github.com/smediamanagement84-star/ModelApp/internal/repo/redis"
)

type ViewerStore interface {
	GetByEmail(ctx context.Context, email string) (model.Viewer, error)
	Upsert(ctx context.Context, v model.Viewer) error
}

type SessionStore interface {
	Save(ctx context.Context, rec redisrepo.SessionRecord) error
	Get(ctx context.Context, sid string) (redisrepo.SessionRecord, error)
	Delete(ctx context.Context, sid string) error
}

// UnlockWarmer rebuilds the viewer's cached unlock set when a session
// starts, so discovery gating reflects the ledger immediately.
type UnlockWarmer interface {
	Refresh(ctx context.Context, viewerID string) error
}

type Service struct {
	viewers  ViewerStore
	sessions SessionStore
	warmer   UnlockWarmer
	jwt      *JWTManager
	log      *zap.Logger
	now      func() time.Time
}

func NewService(viewers ViewerStore, sessions SessionStore, jwtManager *JWTManager, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		viewers:  viewers,
		sessions: sessions,
		jwt:      jwtManager,
		log:      log,
		now:      time.Now,
	}
}

func (s *Service) AttachUnlockWarmer(w UnlockWarmer) {
	s.warmer = w
}

// Login resolves the viewer by email, creating an agency account on
// first sight, then opens a session and issues an access token.
func (s *Service) Login(ctx context.Context, email, role string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validate.Required(email) || !strings.Contains(email, "@") {
		return AuthResult{}, fmt.Errorf("%w: email is required", ErrValidation)
	}

	if role == "" {
		role = string(enums.ViewerRoleAgency)
	}
	if !enums.ViewerRole(role).Valid() {
		return AuthResult{}, fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	viewer, err := s.viewers.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, pgrepo.ErrViewerNotFound) {
			return AuthResult{}, fmt.Errorf("lookup viewer: %w", err)
		}
		viewer = model.Viewer{
			ID:        uuid.NewString(),
			Email:     email,
			Role:      enums.ViewerRole(role),
			CreatedAt: s.now(),
		}
		if err := s.viewers.Upsert(ctx, viewer); err != nil {
			return AuthResult{}, fmt.Errorf("create viewer: %w", err)
		}
	}

	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, redisrepo.SessionRecord{
		SID:       sid,
		ViewerID:  viewer.ID,
		Role:      string(viewer.Role),
		CreatedAt: s.now(),
	}); err != nil {
		return AuthResult{}, fmt.Errorf("save session: %w", err)
	}

	if s.warmer != nil {
		if err := s.warmer.Refresh(ctx, viewer.ID); err != nil {
			s.log.Warn("unlock cache warmup failed", zap.String("viewer_id", viewer.ID), zap.Error(err))
		}
	}

	token, expiresAt, err := s.jwt.Issue(viewer.ID, sid, string(viewer.Role))
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{
		AccessToken: token,
		ViewerID:    viewer.ID,
		Role:        string(viewer.Role),
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate validates a bearer token against its backing session.
func (s *Service) Authenticate(ctx context.Context, token string) (Identity, error) {
	claims, err := s.jwt.Parse(token)
	if err != nil {
		return Identity{}, err
	}

	rec, err := s.sessions.Get(ctx, claims.SID)
	if err != nil {
		if errors.Is(err, redisrepo.ErrSessionNotFound) {
			return Identity{}, ErrNoSession
		}
		return Identity{}, fmt.Errorf("load session: %w", err)
	}
	if rec.ViewerID != claims.Subject {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ViewerID: rec.ViewerID, SID: rec.SID, Role: rec.Role}, nil
}

func (s *Service) Logout(ctx context.Context, sid string) error {
	return s.sessions.Delete(ctx, sid)
}

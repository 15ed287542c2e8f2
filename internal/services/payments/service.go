package payments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/pkg/validate"
	"github.com/smediamanagement84-star/ModelApp/internal/services/unlocks"
)

// TalentSource resolves the unlock price for the talent being paid
// for.
type TalentSource interface {
	Get(ctx context.Context, id string) (model.TalentRecord, error)
}

// Ledger is the unlock side effect of a successful charge.
type Ledger interface {
	Grant(ctx context.Context, viewerID, talentID string, amountPaid int) (bool, error)
	IsUnlocked(ctx context.Context, viewerID, talentID string) (bool, error)
}

type Config struct {
	Currency       string
	AttemptTTL     time.Duration
	MinPINLength   int
	WalletIDLength int
}

// attempt is the internal record. Credentials live only here, between
// EnterCredentials and the end of Submit.
type attempt struct {
	Attempt
	walletID  string
	pin       string
	expiresAt time.Time
}

// Service drives the unlock payment state machine:
//
//	idle -> method_selected -> credentials_entered -> processing -> success
//	                                                            \-> failure
//
// Failure allows re-entering credentials for a retry. Cancel discards
// the attempt and its credentials at any point before processing.
type Service struct {
	talents TalentSource
	ledger  Ledger
	gateway Gateway
	cfg     Config
	log     *zap.Logger
	now     func() time.Time

	mu       sync.Mutex
	attempts map[string]*attempt
}

func NewService(talents TalentSource, ledger Ledger, gateway Gateway, cfg Config, log *zap.Logger) *Service {
	if cfg.Currency == "" {
		cfg.Currency = "NPR"
	}
	if cfg.AttemptTTL <= 0 {
		cfg.AttemptTTL = 15 * time.Minute
	}
	if cfg.MinPINLength <= 0 {
		cfg.MinPINLength = 4
	}
	if cfg.WalletIDLength <= 0 {
		cfg.WalletIDLength = 10
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		talents:  talents,
		ledger:   ledger,
		gateway:  gateway,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		attempts: map[string]*attempt{},
	}
}

// Begin opens a payment attempt for one talent unlock. An already
// unlocked talent never opens an attempt, so a double unlock cannot
// charge twice.
func (s *Service) Begin(ctx context.Context, viewerID, talentID string) (Attempt, error) {
	if viewerID == "" {
		return Attempt{}, unlocks.ErrUnauthenticated
	}

	unlocked, err := s.ledger.IsUnlocked(ctx, viewerID, talentID)
	if err != nil {
		return Attempt{}, fmt.Errorf("check unlock state: %w", err)
	}
	if unlocked {
		return Attempt{}, ErrAlreadyUnlocked
	}

	talent, err := s.talents.Get(ctx, talentID)
	if err != nil {
		return Attempt{}, fmt.Errorf("load talent: %w", err)
	}

	now := s.now()
	a := &attempt{
		Attempt: Attempt{
			ID:        uuid.NewString(),
			ViewerID:  viewerID,
			TalentID:  talentID,
			Amount:    talent.UnlockPrice,
			Currency:  s.cfg.Currency,
			State:     StateIdle,
			CreatedAt: now,
			UpdatedAt: now,
		},
		expiresAt: now.Add(s.cfg.AttemptTTL),
	}

	s.mu.Lock()
	s.attempts[a.ID] = a
	s.mu.Unlock()

	s.log.Info("payment attempt opened",
		zap.String("attempt_id", a.ID),
		zap.String("viewer_id", viewerID),
		zap.String("talent_id", talentID),
		zap.Int("amount", a.Amount))

	return a.Attempt, nil
}

func (s *Service) SelectMethod(_ context.Context, viewerID, attemptID string, method Method) (Attempt, error) {
	if !method.Valid() {
		return Attempt{}, fmt.Errorf("%w: unknown payment method %q", ErrValidation, method)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.getLocked(viewerID, attemptID)
	if err != nil {
		return Attempt{}, err
	}

	switch a.State {
	case StateIdle, StateMethodSelected, StateCredentialsEntered, StateFailure:
	default:
		return Attempt{}, fmt.Errorf("%w: cannot select method in state %s", ErrInvalidTransition, a.State)
	}

	// Changing the method invalidates credentials entered for the
	// previous one.
	a.Method = method
	a.walletID = ""
	a.pin = ""
	a.State = StateMethodSelected
	a.FailureReason = ""
	a.UpdatedAt = s.now()

	return a.Attempt, nil
}

func (s *Service) EnterCredentials(_ context.Context, viewerID, attemptID, walletID, pin string) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.getLocked(viewerID, attemptID)
	if err != nil {
		return Attempt{}, err
	}

	switch a.State {
	case StateMethodSelected, StateCredentialsEntered, StateFailure:
	default:
		return Attempt{}, fmt.Errorf("%w: cannot enter credentials in state %s", ErrInvalidTransition, a.State)
	}

	if !validate.Digits(walletID) || len(walletID) != s.cfg.WalletIDLength {
		return Attempt{}, fmt.Errorf("%w: wallet id must be %d digits", ErrValidation, s.cfg.WalletIDLength)
	}
	if !validate.Digits(pin) || len(pin) < s.cfg.MinPINLength {
		return Attempt{}, fmt.Errorf("%w: pin must be at least %d digits", ErrValidation, s.cfg.MinPINLength)
	}

	a.walletID = walletID
	a.pin = pin
	a.State = StateCredentialsEntered
	a.FailureReason = ""
	a.UpdatedAt = s.now()

	return a.Attempt, nil
}

// Submit charges the gateway and, on success, grants the unlock. Only
// one submit per attempt runs at a time; a second one while the first
// is in flight gets ErrProcessing.
func (s *Service) Submit(ctx context.Context, viewerID, attemptID string) (Attempt, error) {
	s.mu.Lock()
	a, err := s.getLocked(viewerID, attemptID)
	if err != nil {
		s.mu.Unlock()
		return Attempt{}, err
	}

	if a.State == StateProcessing {
		s.mu.Unlock()
		return Attempt{}, ErrProcessing
	}
	if a.State != StateCredentialsEntered {
		s.mu.Unlock()
		return Attempt{}, fmt.Errorf("%w: cannot submit in state %s", ErrInvalidTransition, a.State)
	}

	a.State = StateProcessing
	a.UpdatedAt = s.now()
	method, walletID, amount := a.Method, a.walletID, a.Amount
	s.mu.Unlock()

	chargeErr := s.gateway.Charge(ctx, method, walletID, amount)
	if chargeErr == nil {
		if _, err := s.ledger.Grant(ctx, a.ViewerID, a.TalentID, amount); err != nil {
			chargeErr = fmt.Errorf("record unlock after charge: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if chargeErr != nil {
		a.State = StateFailure
		a.FailureReason = failureReason(chargeErr)
		a.UpdatedAt = s.now()
		s.log.Warn("payment attempt failed",
			zap.String("attempt_id", a.ID),
			zap.Error(chargeErr))
		return a.Attempt, nil
	}

	a.State = StateSuccess
	a.walletID = ""
	a.pin = ""
	a.UpdatedAt = s.now()
	s.log.Info("payment attempt succeeded",
		zap.String("attempt_id", a.ID),
		zap.String("talent_id", a.TalentID))

	return a.Attempt, nil
}

// Cancel discards the attempt along with any entered credentials. A
// processing attempt cannot be cancelled; the gateway outcome decides
// it.
func (s *Service) Cancel(_ context.Context, viewerID, attemptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.getLocked(viewerID, attemptID)
	if err != nil {
		return err
	}
	if a.State == StateProcessing {
		return ErrProcessing
	}

	delete(s.attempts, attemptID)

	return nil
}

func (s *Service) Get(_ context.Context, viewerID, attemptID string) (Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.getLocked(viewerID, attemptID)
	if err != nil {
		return Attempt{}, err
	}

	return a.Attempt, nil
}

// getLocked resolves an attempt, purging it if expired. Callers hold
// s.mu.
func (s *Service) getLocked(viewerID, attemptID string) (*attempt, error) {
	a, ok := s.attempts[attemptID]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	if s.now().After(a.expiresAt) && a.State != StateProcessing {
		delete(s.attempts, attemptID)
		return nil, ErrAttemptNotFound
	}
	if viewerID == "" {
		return nil, unlocks.ErrUnauthenticated
	}
	if a.ViewerID != viewerID {
		return nil, ErrForbidden
	}
	return a, nil
}

func failureReason(err error) string {
	if errors.Is(err, ErrGatewayDeclined) {
		return "declined"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "timeout"
	}
	return "error"
}

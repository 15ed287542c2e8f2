package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smediamanagement84-star/ModelApp/internal/domain/model"
	"github.com/smediamanagement84-star/ModelApp/internal/services/unlocks"
)

type stubTalentSource struct {
	talents map[string]model.TalentRecord
}

func (s *stubTalentSource) Get(_ context.Context, id string) (model.TalentRecord, error) {
	t, ok := s.talents[id]
	if !ok {
		return model.TalentRecord{}, errors.New("talent not found")
	}
	return t, nil
}

type stubLedger struct {
	granted map[string]int
}

func newStubLedger() *stubLedger {
	return &stubLedger{granted: map[string]int{}}
}

func (l *stubLedger) Grant(_ context.Context, viewerID, talentID string, amountPaid int) (bool, error) {
	key := viewerID + "/" + talentID
	if _, ok := l.granted[key]; ok {
		return false, nil
	}
	l.granted[key] = amountPaid
	return true, nil
}

func (l *stubLedger) IsUnlocked(_ context.Context, viewerID, talentID string) (bool, error) {
	_, ok := l.granted[viewerID+"/"+talentID]
	return ok, nil
}

type blockingGateway struct {
	started  chan struct{}
	release  chan struct{}
	declines bool
}

func (g *blockingGateway) Charge(ctx context.Context, _ Method, _ string, _ int) error {
	close(g.started)
	select {
	case <-g.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	if g.declines {
		return ErrGatewayDeclined
	}
	return nil
}

func newTestService(ledger *stubLedger, gateway Gateway) *Service {
	talents := &stubTalentSource{talents: map[string]model.TalentRecord{
		"t1": {ID: "t1", Name: "Anika Sharma", UnlockPrice: 50},
	}}
	return NewService(talents, ledger, gateway, Config{}, nil)
}

func TestHappyPathUnlocksTalent(t *testing.T) {
	ctx := context.Background()
	ledger := newStubLedger()
	svc := newTestService(ledger, &SimulatedGateway{})

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if a.State != StateIdle || a.Amount != 50 || a.Currency != "NPR" {
		t.Fatalf("unexpected attempt: %+v", a)
	}

	if _, err := svc.SelectMethod(ctx, "viewer-1", a.ID, MethodESewa); err != nil {
		t.Fatalf("select method: %v", err)
	}
	if _, err := svc.EnterCredentials(ctx, "viewer-1", a.ID, "9812345678", "1234"); err != nil {
		t.Fatalf("enter credentials: %v", err)
	}

	final, err := svc.Submit(ctx, "viewer-1", a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if final.State != StateSuccess {
		t.Fatalf("expected success, got %s (%s)", final.State, final.FailureReason)
	}
	if ledger.granted["viewer-1/t1"] != 50 {
		t.Fatalf("ledger should record the unlock, got %v", ledger.granted)
	}
}

func TestBeginRejectsAlreadyUnlockedTalent(t *testing.T) {
	ctx := context.Background()
	ledger := newStubLedger()
	ledger.granted["viewer-1/t1"] = 50
	svc := newTestService(ledger, &SimulatedGateway{})

	if _, err := svc.Begin(ctx, "viewer-1", "t1"); !errors.Is(err, ErrAlreadyUnlocked) {
		t.Fatalf("expected ErrAlreadyUnlocked, got %v", err)
	}
}

func TestBeginRequiresViewer(t *testing.T) {
	svc := newTestService(newStubLedger(), &SimulatedGateway{})

	if _, err := svc.Begin(context.Background(), "", "t1"); !errors.Is(err, unlocks.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCredentialGuards(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubLedger(), &SimulatedGateway{})

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := svc.SelectMethod(ctx, "viewer-1", a.ID, MethodKhalti); err != nil {
		t.Fatalf("select method: %v", err)
	}

	cases := []struct {
		name     string
		walletID string
		pin      string
	}{
		{"short wallet", "98123", "1234"},
		{"non-digit wallet", "98123abc78", "1234"},
		{"short pin", "9812345678", "123"},
		{"non-digit pin", "9812345678", "12ab"},
	}
	for _, tc := range cases {
		if _, err := svc.EnterCredentials(ctx, "viewer-1", a.ID, tc.walletID, tc.pin); !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestSubmitRequiresCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubLedger(), &SimulatedGateway{})

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if _, err := svc.Submit(ctx, "viewer-1", a.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDeclinedChargeAllowsRetry(t *testing.T) {
	ctx := context.Background()
	ledger := newStubLedger()
	svc := newTestService(ledger, &SimulatedGateway{})

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := svc.SelectMethod(ctx, "viewer-1", a.ID, MethodESewa); err != nil {
		t.Fatalf("select method: %v", err)
	}
	if _, err := svc.EnterCredentials(ctx, "viewer-1", a.ID, "9812340000", "1234"); err != nil {
		t.Fatalf("enter credentials: %v", err)
	}

	failed, err := svc.Submit(ctx, "viewer-1", a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if failed.State != StateFailure || failed.FailureReason != "declined" {
		t.Fatalf("expected declined failure, got %+v", failed)
	}
	if len(ledger.granted) != 0 {
		t.Fatal("declined charge must not unlock")
	}

	if _, err := svc.EnterCredentials(ctx, "viewer-1", a.ID, "9812345678", "1234"); err != nil {
		t.Fatalf("retry credentials: %v", err)
	}
	final, err := svc.Submit(ctx, "viewer-1", a.ID)
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if final.State != StateSuccess {
		t.Fatalf("expected success after retry, got %s", final.State)
	}
}

func TestCancelDiscardsAttempt(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubLedger(), &SimulatedGateway{})

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := svc.SelectMethod(ctx, "viewer-1", a.ID, MethodESewa); err != nil {
		t.Fatalf("select method: %v", err)
	}
	if _, err := svc.EnterCredentials(ctx, "viewer-1", a.ID, "9812345678", "1234"); err != nil {
		t.Fatalf("enter credentials: %v", err)
	}

	if err := svc.Cancel(ctx, "viewer-1", a.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if _, err := svc.Get(ctx, "viewer-1", a.ID); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("cancelled attempt must be gone, got %v", err)
	}
}

func TestSubmitIsSingleFlight(t *testing.T) {
	ctx := context.Background()
	ledger := newStubLedger()
	gateway := &blockingGateway{started: make(chan struct{}), release: make(chan struct{})}
	svc := newTestService(ledger, gateway)

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := svc.SelectMethod(ctx, "viewer-1", a.ID, MethodESewa); err != nil {
		t.Fatalf("select method: %v", err)
	}
	if _, err := svc.EnterCredentials(ctx, "viewer-1", a.ID, "9812345678", "1234"); err != nil {
		t.Fatalf("enter credentials: %v", err)
	}

	done := make(chan Attempt, 1)
	go func() {
		final, err := svc.Submit(ctx, "viewer-1", a.ID)
		if err != nil {
			t.Errorf("submit: %v", err)
		}
		done <- final
	}()

	<-gateway.started
	if _, err := svc.Submit(ctx, "viewer-1", a.ID); !errors.Is(err, ErrProcessing) {
		t.Fatalf("second submit should hit ErrProcessing, got %v", err)
	}
	if err := svc.Cancel(ctx, "viewer-1", a.ID); !errors.Is(err, ErrProcessing) {
		t.Fatalf("cancel during processing should hit ErrProcessing, got %v", err)
	}

	close(gateway.release)
	final := <-done
	if final.State != StateSuccess {
		t.Fatalf("expected success, got %s", final.State)
	}
}

func TestAttemptOwnershipEnforced(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubLedger(), &SimulatedGateway{})

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if _, err := svc.Get(ctx, "viewer-2", a.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestExpiredAttemptIsPurged(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newStubLedger(), &SimulatedGateway{})

	base := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	a, err := svc.Begin(ctx, "viewer-1", "t1")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	svc.now = func() time.Time { return base.Add(16 * time.Minute) }
	if _, err := svc.Get(ctx, "viewer-1", a.ID); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("expired attempt should be purged, got %v", err)
	}
}

package payments

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrGatewayDeclined marks a charge the wallet provider rejected.
var ErrGatewayDeclined = errors.New("payment declined by gateway")

// Gateway is the wallet provider boundary. The real providers are not
// integrated; SimulatedGateway stands in for both.
type Gateway interface {
	Charge(ctx context.Context, method Method, walletID string, amount int) error
}

// SimulatedGateway approves every charge after a fixed latency.
// Wallet IDs ending in four zeros are declined, which gives the
// failure path a deterministic trigger.
type SimulatedGateway struct {
	Latency time.Duration
}

func (g *SimulatedGateway) Charge(ctx context.Context, _ Method, walletID string, _ int) error {
	if g.Latency > 0 {
		select {
		case <-time.After(g.Latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if strings.HasSuffix(walletID, "0000") {
		return ErrGatewayDeclined
	}

	return nil
}

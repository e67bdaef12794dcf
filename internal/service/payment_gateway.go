package service

import (
	"context"
	"math/rand"
	"sync"

	"medicare-plus/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// PaymentGateway decides the outcome of a simulated charge. It is the seam
// where a real processor would plug in.
type PaymentGateway interface {
	Authorize(ctx context.Context, method entity.PaymentMethod, amount decimal.Decimal) (bool, error)
}

// RandomGateway approves a charge with a fixed probability
type RandomGateway struct {
	mu          sync.Mutex
	rnd         *rand.Rand
	successRate float64
}

func NewRandomGateway(successRate float64, seed int64) *RandomGateway {
	return &RandomGateway{
		rnd:         rand.New(rand.NewSource(seed)),
		successRate: successRate,
	}
}

func (g *RandomGateway) Authorize(ctx context.Context, method entity.PaymentMethod, amount decimal.Decimal) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.Float64() < g.successRate, nil
}

// FixedGateway always returns the same decision
type FixedGateway struct {
	Approve bool
}

func (g FixedGateway) Authorize(ctx context.Context, method entity.PaymentMethod, amount decimal.Decimal) (bool, error) {
	return g.Approve, nil
}

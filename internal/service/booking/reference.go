package booking

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/Domenick1991/travelapp/internal/domain"
)

// MaxReferenceAttempts bounds how many candidates are drawn before giving up.
const MaxReferenceAttempts = 10

// ErrGenerationExhausted is returned when every candidate collided. It is an
// InvalidState error.
var ErrGenerationExhausted error = &domain.Error{
	Kind:    domain.ErrInvalidState,
	Message: fmt.Sprintf("Failed to generate unique booking reference after %d attempts", MaxReferenceAttempts),
}

// rejectionLimit is the largest multiple of the alphabet size that fits in a
// byte; bytes at or above it are discarded so every symbol is equally likely.
const rejectionLimit = 256 - 256%len(domain.ReferenceAlphabet)

type ReferenceChecker interface {
	ExistsByReference(ctx context.Context, reference string) (bool, error)
}

// ReferenceGenerator draws random references and keeps the first one the
// store does not already hold. The existence check is a pre-check only; the
// unique index on bookings is what rejects a concurrent duplicate.
type ReferenceGenerator struct {
	checker ReferenceChecker

	mu     sync.Mutex
	random io.Reader
}

// NewReferenceGenerator uses crypto/rand when random is nil.
func NewReferenceGenerator(checker ReferenceChecker, random io.Reader) *ReferenceGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &ReferenceGenerator{checker: checker, random: random}
}

func (g *ReferenceGenerator) Generate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < MaxReferenceAttempts; attempt++ {
		reference, err := g.draw()
		if err != nil {
			return "", fmt.Errorf("draw booking reference: %w", err)
		}
		exists, err := g.checker.ExistsByReference(ctx, reference)
		if err != nil {
			return "", err
		}
		if !exists {
			return reference, nil
		}
	}
	return "", ErrGenerationExhausted
}

func (g *ReferenceGenerator) draw() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]byte, 0, domain.ReferenceLength)
	buf := make([]byte, domain.ReferenceLength)
	for len(out) < domain.ReferenceLength {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= rejectionLimit {
				continue
			}
			out = append(out, domain.ReferenceAlphabet[int(b)%len(domain.ReferenceAlphabet)])
			if len(out) == domain.ReferenceLength {
				break
			}
		}
	}
	return string(out), nil
}

package booking

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/Domenick1991/travelapp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seq(values ...byte) []byte { return values }

func TestReferenceGenerator_DeterministicDraw(t *testing.T) {
	checker := &MockBookingRepository{}
	checker.On("ExistsByReference", mock.Anything, "ABCDEF").Return(false, nil).Once()

	g := NewReferenceGenerator(checker, bytes.NewReader(seq(0, 1, 2, 3, 4, 5)))
	ref, err := g.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", ref)
	checker.AssertExpectations(t)
}

func TestReferenceGenerator_MapsDigitsAndWraps(t *testing.T) {
	checker := &MockBookingRepository{}
	checker.On("ExistsByReference", mock.Anything, "0A9Z5B").Return(false, nil).Once()

	// 26 -> '0', 36 -> 'A', 71 -> '9', 25 -> 'Z', 211 -> '5', 37 -> 'B'
	g := NewReferenceGenerator(checker, bytes.NewReader(seq(26, 36, 71, 25, 211, 37)))
	ref, err := g.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0A9Z5B", ref)
}

func TestReferenceGenerator_RejectsBiasedBytes(t *testing.T) {
	checker := &MockBookingRepository{}
	checker.On("ExistsByReference", mock.Anything, "ABCDEF").Return(false, nil).Once()

	g := NewReferenceGenerator(checker, bytes.NewReader(seq(252, 0, 1, 253, 2, 3, 254, 255, 4, 5, 9, 9)))
	ref, err := g.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", ref)
}

func TestReferenceGenerator_RetriesOnCollision(t *testing.T) {
	checker := &MockBookingRepository{}
	checker.On("ExistsByReference", mock.Anything, "AAAAAA").Return(true, nil).Once()
	checker.On("ExistsByReference", mock.Anything, "BBBBBB").Return(false, nil).Once()

	g := NewReferenceGenerator(checker, bytes.NewReader(seq(0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1)))
	ref, err := g.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", ref)
	checker.AssertExpectations(t)
}

func TestReferenceGenerator_Exhausted(t *testing.T) {
	checker := &MockBookingRepository{}
	checker.On("ExistsByReference", mock.Anything, mock.AnythingOfType("string")).Return(true, nil)

	g := NewReferenceGenerator(checker, nil)
	ref, err := g.Generate(context.Background())

	assert.Empty(t, ref)
	assert.ErrorIs(t, err, ErrGenerationExhausted)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, err.Error(), "after 10 attempts")
	checker.AssertNumberOfCalls(t, "ExistsByReference", MaxReferenceAttempts)
}

func TestReferenceGenerator_CheckerError(t *testing.T) {
	checker := &MockBookingRepository{}
	dbErr := errors.New("database error")
	checker.On("ExistsByReference", mock.Anything, mock.AnythingOfType("string")).Return(false, dbErr).Once()

	g := NewReferenceGenerator(checker, nil)
	_, err := g.Generate(context.Background())

	assert.ErrorIs(t, err, dbErr)
	checker.AssertNumberOfCalls(t, "ExistsByReference", 1)
}

func TestReferenceGenerator_RandomSourceError(t *testing.T) {
	checker := &MockBookingRepository{}
	g := NewReferenceGenerator(checker, iotest.ErrReader(errors.New("entropy unavailable")))

	_, err := g.Generate(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "entropy unavailable")
	checker.AssertNotCalled(t, "ExistsByReference")
}

func TestReferenceGenerator_SecureSourceShape(t *testing.T) {
	checker := &MockBookingRepository{}
	checker.On("ExistsByReference", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)

	g := NewReferenceGenerator(checker, nil)
	seen := map[byte]bool{}
	for i := 0; i < 500; i++ {
		ref, err := g.Generate(context.Background())
		require.NoError(t, err)
		require.True(t, domain.IsReference(ref), "unexpected reference %q", ref)
		for j := 0; j < len(ref); j++ {
			seen[ref[j]] = true
		}
	}
	// 3000 uniform draws over 36 symbols should hit every symbol.
	assert.Len(t, seen, len(domain.ReferenceAlphabet))
}

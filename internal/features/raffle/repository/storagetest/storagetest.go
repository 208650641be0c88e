// Package storagetest holds the behaviour every repository.Storage driver
// must share.
package storagetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/features/raffle/repository"
)

// NewRaffle builds a raffle with sold, reserved and drawn numbers.
func NewRaffle(t *testing.T, id string) *models.Raffle {
	t.Helper()

	now := time.Date(2026, 5, 10, 18, 30, 0, 0, time.UTC)
	n := 0
	r, err := models.NewRaffle(id, &models.RaffleCreate{
		Name:         "Raffle " + id,
		CountryCode:  "AR",
		TotalNumbers: 20,
		NumberValue:  decimal.RequireFromString("1500.50"),
		DrawDate:     now.Add(72 * time.Hour),
		Prizes:       []string{"Car", "Phone", "Dinner"},
	}, func() string {
		n++
		return fmt.Sprintf("%s-prize-%d", id, n)
	}, now)
	require.NoError(t, err)

	require.NoError(t, r.Purchase([]int{1, 2, 3}, "Ana", "555", models.PaymentMethodCash, now))
	require.NoError(t, r.Purchase([]int{10}, "Luis", "+54 11 5555-0000", models.PaymentMethodPending, now))
	require.NoError(t, r.RecordPrizeWinner(1, 2, "", "", now.Add(time.Hour)))
	return r
}

// Run checks that an empty storage loads an empty collection and that saved
// collections come back field for field.
func Run(t *testing.T, storage repository.Storage) {
	t.Helper()
	ctx := context.Background()

	loaded, err := storage.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	raffles := []*models.Raffle{NewRaffle(t, "a"), NewRaffle(t, "b")}
	require.NoError(t, storage.SaveAll(ctx, raffles))

	loaded, err = storage.LoadAll(ctx)
	require.NoError(t, err)
	AssertSameRaffles(t, raffles, loaded)

	// overwrite, never merge
	require.NoError(t, storage.SaveAll(ctx, raffles[1:]))
	loaded, err = storage.LoadAll(ctx)
	require.NoError(t, err)
	AssertSameRaffles(t, raffles[1:], loaded)

	require.NoError(t, storage.SaveAll(ctx, nil))
	loaded, err = storage.LoadAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Empty(t, loaded)
}

// AssertSameRaffles compares raffles through their persisted form, which
// ignores monotonic clock readings and decimal representation details.
func AssertSameRaffles(t *testing.T, expected, actual []*models.Raffle) {
	t.Helper()

	want, err := repository.Encode(expected)
	require.NoError(t, err)
	got, err := repository.Encode(actual)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(got))

	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.True(t, expected[i].NumberValue.Equal(actual[i].NumberValue))
		assert.Equal(t, expected[i].Numbers, actual[i].Numbers)
		assert.Equal(t, expected[i].Prizes, actual[i].Prizes)
	}
}

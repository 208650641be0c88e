package draw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/utils/random"
)

func TestEngine_DrawProperties(t *testing.T) {
	engine := NewEngine(random.CryptoSource{})
	eligible := []int{4, 8, 15, 16, 23, 42}

	for k := 1; k <= len(eligible); k++ {
		result, err := engine.Draw(Request{PrizeCount: k, EligibleNumbers: eligible})
		require.NoError(t, err)

		assert.Len(t, result.DrawnNumbers, k)
		assert.Subset(t, eligible, result.DrawnNumbers)

		unique := make(map[int]struct{})
		for _, n := range result.DrawnNumbers {
			unique[n] = struct{}{}
		}
		assert.Len(t, unique, k, "drawn numbers must be distinct")

		all := append(append([]int{}, result.DrawnNumbers...), result.RemainingNumbers...)
		assert.ElementsMatch(t, eligible, all)
		for _, n := range result.RemainingNumbers {
			assert.NotContains(t, result.DrawnNumbers, n)
		}
		assert.Equal(t, k == len(eligible), result.AllAwarded)
	}

	assert.Equal(t, []int{4, 8, 15, 16, 23, 42}, eligible, "input must not be modified")
}

func TestEngine_DrawDeterministic(t *testing.T) {
	// step 0 picks index 0+2, step 1 picks index 1+0
	engine := NewEngine(random.NewSequenceSource(2, 0))

	result, err := engine.Draw(Request{PrizeCount: 2, EligibleNumbers: []int{10, 20, 30, 40}})
	require.NoError(t, err)

	assert.Equal(t, []int{30, 20}, result.DrawnNumbers)
	assert.Equal(t, []int{10, 40}, result.RemainingNumbers)
	assert.False(t, result.AllAwarded)
}

func TestEngine_DrawErrors(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name string
		req  Request
	}{
		{"more prizes than numbers", Request{PrizeCount: 3, EligibleNumbers: []int{1, 2}}},
		{"empty pool", Request{PrizeCount: 1}},
		{"zero prizes", Request{PrizeCount: 0, EligibleNumbers: []int{1}}},
		{"duplicate numbers", Request{PrizeCount: 1, EligibleNumbers: []int{1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Draw(tt.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, models.ErrInvalidRequest)
		})
	}
}

func TestEngine_SourceFailure(t *testing.T) {
	engine := NewEngine(random.NewSequenceSource())

	_, err := engine.Draw(Request{PrizeCount: 1, EligibleNumbers: []int{1, 2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, random.ErrSequenceExhausted))
	assert.False(t, errors.Is(err, models.ErrInvalidRequest))
}

package draw

import (
	"fmt"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/utils/random"
)

// Request is the input of a draw: how many winners to pick and from which
// ticket numbers.
type Request struct {
	PrizeCount      int   `json:"prize_count"`
	EligibleNumbers []int `json:"eligible_numbers"`
}

// Result lists the drawn numbers in draw order. RemainingNumbers keeps the
// order of the request.
type Result struct {
	DrawnNumbers     []int `json:"drawn_numbers"`
	RemainingNumbers []int `json:"remaining_numbers"`
	AllAwarded       bool  `json:"all_awarded"`
}

// Engine selects winners uniformly at random without replacement.
type Engine struct {
	src random.Source
}

func NewEngine(src random.Source) *Engine {
	if src == nil {
		src = random.CryptoSource{}
	}
	return &Engine{src: src}
}

// Draw runs a partial Fisher-Yates shuffle over a copy of the eligible
// numbers. The request slice is never modified.
func (e *Engine) Draw(req Request) (*Result, error) {
	n := len(req.EligibleNumbers)
	if req.PrizeCount <= 0 {
		return nil, fmt.Errorf("%w: prize count must be positive", models.ErrInvalidRequest)
	}
	if req.PrizeCount > n {
		return nil, fmt.Errorf("%w: cannot draw %d prizes from %d eligible numbers", models.ErrInvalidRequest, req.PrizeCount, n)
	}

	seen := make(map[int]struct{}, n)
	for _, num := range req.EligibleNumbers {
		if _, dup := seen[num]; dup {
			return nil, fmt.Errorf("%w: number %d listed twice", models.ErrInvalidRequest, num)
		}
		seen[num] = struct{}{}
	}

	candidates := make([]int, n)
	copy(candidates, req.EligibleNumbers)

	for i := 0; i < req.PrizeCount; i++ {
		offset, err := e.src.Intn(n - i)
		if err != nil {
			return nil, fmt.Errorf("failed to draw number: %w", err)
		}
		j := i + offset
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	drawn := candidates[:req.PrizeCount:req.PrizeCount]
	won := make(map[int]struct{}, len(drawn))
	for _, num := range drawn {
		won[num] = struct{}{}
	}

	remaining := make([]int, 0, n-len(drawn))
	for _, num := range req.EligibleNumbers {
		if _, ok := won[num]; !ok {
			remaining = append(remaining, num)
		}
	}

	return &Result{
		DrawnNumbers:     drawn,
		RemainingNumbers: remaining,
		AllAwarded:       len(remaining) == 0,
	}, nil
}

package memory

import (
	"context"
	"sync"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/features/raffle/repository"
)

// Storage keeps the encoded collection in process memory. Raffles are
// encoded on save so later changes by the caller never leak into it.
type Storage struct {
	mu   sync.RWMutex
	data []byte
}

func NewStorage() *Storage {
	return &Storage{}
}

func (s *Storage) LoadAll(_ context.Context) ([]*models.Raffle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return repository.Decode(s.data)
}

func (s *Storage) SaveAll(_ context.Context, raffles []*models.Raffle) error {
	data, err := repository.Encode(raffles)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return nil
}

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"raffle-manager-backend/internal/features/raffle/models"
)

// DefaultKey is the key the raffle collection is stored under.
const DefaultKey = "raffles"

// Storage persists the whole raffle collection at once. There are no partial
// updates: SaveAll overwrites whatever LoadAll would have returned.
type Storage interface {
	LoadAll(ctx context.Context) ([]*models.Raffle, error)
	SaveAll(ctx context.Context, raffles []*models.Raffle) error
}

// HealthChecker is implemented by storages backed by a remote service.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Encode serializes the collection as a JSON array. A nil collection encodes
// as an empty array.
func Encode(raffles []*models.Raffle) ([]byte, error) {
	if raffles == nil {
		raffles = []*models.Raffle{}
	}
	data, err := json.Marshal(raffles)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal raffles: %w", err)
	}
	return data, nil
}

// Decode parses a payload written by Encode. Empty input is an empty collection.
func Decode(data []byte) ([]*models.Raffle, error) {
	raffles := []*models.Raffle{}
	if len(bytes.TrimSpace(data)) == 0 {
		return raffles, nil
	}
	if err := json.Unmarshal(data, &raffles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal raffles: %w", err)
	}
	return raffles, nil
}

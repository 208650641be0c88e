package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"raffle-manager-backend/internal/features/raffle/models"
	"raffle-manager-backend/internal/features/raffle/repository"
)

// CollectionName is the collection holding the raffle document.
const CollectionName = "raffle_store"

// Collection is the subset of *mongo.Collection the storage uses.
type Collection interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

type document struct {
	Key       string    `bson:"_id"`
	Payload   string    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Storage keeps the collection as one document keyed by _id.
type Storage struct {
	coll Collection
	key  string
}

func NewStorage(coll Collection, key string) *Storage {
	if key == "" {
		key = repository.DefaultKey
	}
	return &Storage{coll: coll, key: key}
}

func (s *Storage) LoadAll(ctx context.Context) ([]*models.Raffle, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []*models.Raffle{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load raffles: %w", err)
	}
	return repository.Decode([]byte(doc.Payload))
}

func (s *Storage) SaveAll(ctx context.Context, raffles []*models.Raffle) error {
	data, err := repository.Encode(raffles)
	if err != nil {
		return err
	}

	doc := document{Key: s.key, Payload: string(data), UpdatedAt: time.Now().UTC()}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": s.key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save raffles: %w", err)
	}
	return nil
}

package mongo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"raffle-manager-backend/internal/features/raffle/repository"
	"raffle-manager-backend/internal/features/raffle/repository/storagetest"
)

type fakeCollection struct {
	docs   map[string]document
	upsert []bool
	err    error
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{docs: make(map[string]document)}
}

func keyOf(filter interface{}) string {
	return filter.(bson.M)["_id"].(string)
}

func (f *fakeCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	if f.err != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.err, nil)
	}
	doc, ok := f.docs[keyOf(filter)]
	if !ok {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

func (f *fakeCollection) ReplaceOne(_ context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, o := range opts {
		f.upsert = append(f.upsert, o.Upsert != nil && *o.Upsert)
	}
	f.docs[keyOf(filter)] = replacement.(document)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestStorage(t *testing.T) {
	coll := newFakeCollection()
	storagetest.Run(t, NewStorage(coll, ""))

	doc, ok := coll.docs[repository.DefaultKey]
	require.True(t, ok)
	assert.Equal(t, repository.DefaultKey, doc.Key)
	assert.Equal(t, "[]", doc.Payload)
	assert.False(t, doc.UpdatedAt.IsZero())

	require.NotEmpty(t, coll.upsert)
	for _, upsert := range coll.upsert {
		assert.True(t, upsert)
	}
}

func TestStorage_Errors(t *testing.T) {
	coll := newFakeCollection()
	coll.err = errors.New("server selection timeout")
	s := NewStorage(coll, "")

	_, err := s.LoadAll(context.Background())
	assert.ErrorIs(t, err, coll.err)
	assert.ErrorIs(t, s.SaveAll(context.Background(), nil), coll.err)
}

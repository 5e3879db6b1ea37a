package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMemoryStoreCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "wisata", "w1", bson.M{"nama_wisata": "Pantai Busung"}))

	fields, err := s.Get(ctx, "wisata", "w1")
	require.NoError(t, err)
	assert.Equal(t, "Pantai Busung", fields["nama_wisata"])

	require.NoError(t, s.Update(ctx, "wisata", "w1", bson.M{"is_open": "closed"}))
	fields, err = s.Get(ctx, "wisata", "w1")
	require.NoError(t, err)
	assert.Equal(t, "closed", fields["is_open"])
	assert.Equal(t, "Pantai Busung", fields["nama_wisata"], "update merges, not replaces")

	require.NoError(t, s.Delete(ctx, "wisata", "w1"))
	_, err = s.Get(ctx, "wisata", "w1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "wisata", "w1"), ErrNotFound)
}

func TestMemoryStoreCreateRejectsDuplicateID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "wisata", "w1", bson.M{}))
	assert.Error(t, s.Create(ctx, "wisata", "w1", bson.M{}))
}

func TestMemoryStoreQueryMatchesEquality(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "feedback", "f1", bson.M{"id_wisata": "w1"}))
	require.NoError(t, s.Create(ctx, "feedback", "f2", bson.M{"id_wisata": "w2"}))
	require.NoError(t, s.Create(ctx, "feedback", "f3", bson.M{"id_wisata": "w1"}))

	docs, err := s.Query(ctx, "feedback", "id_wisata", "w1")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "f1", docs[0].ID)
	assert.Equal(t, "f3", docs[1].ID)
}

func TestMemoryStoreBatchIsAtomic(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "wisata", "w1", bson.M{}))
	require.NoError(t, s.Create(ctx, "feedback", "f1", bson.M{"id_wisata": "w1"}))

	// Second op references a missing document, so the whole batch fails
	// and the first op must not have been applied.
	err := s.Batch(ctx, []Op{
		{Kind: OpDelete, Collection: "wisata", ID: "w1"},
		{Kind: OpDelete, Collection: "feedback", ID: "missing"},
	})
	require.Error(t, err)

	_, err = s.Get(ctx, "wisata", "w1")
	assert.NoError(t, err)
	_, err = s.Get(ctx, "feedback", "f1")
	assert.NoError(t, err)

	// A valid batch applies every op.
	require.NoError(t, s.Batch(ctx, []Op{
		{Kind: OpDelete, Collection: "wisata", ID: "w1"},
		{Kind: OpDelete, Collection: "feedback", ID: "f1"},
	}))
	_, err = s.Get(ctx, "wisata", "w1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListIsolatesCallers(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "wisata", "w1", bson.M{"rating": 4.0}))

	docs, err := s.List(ctx, "wisata")
	require.NoError(t, err)
	docs[0].Fields["rating"] = 1.0

	fields, err := s.Get(ctx, "wisata", "w1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, fields["rating"], "mutating a listed doc must not leak into the store")
}

package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gridmetrics/ingest/internal/models"
	"github.com/gridmetrics/ingest/internal/store"
)

// memStore implements Store with upsert semantics in memory, tracking
// matched/modified/deleted counts the way the real store reports them.
type memStore struct {
	docs map[string]map[string]any // collection -> id -> fields
}

func newMemStore() *memStore {
	return &memStore{docs: map[string]map[string]any{}}
}

func (m *memStore) collection(name string) map[string]any {
	if m.docs[name] == nil {
		m.docs[name] = map[string]any{}
	}
	return m.docs[name]
}

func (m *memStore) UpsertByID(_ context.Context, collection, id string, fields any) (store.UpsertResult, error) {
	coll := m.collection(collection)
	existing, ok := coll[id]
	if !ok {
		coll[id] = fields
		return store.UpsertResult{Upserted: 1}, nil
	}
	if reflect.DeepEqual(existing, fields) {
		return store.UpsertResult{Matched: 1}, nil
	}
	coll[id] = fields
	return store.UpsertResult{Matched: 1, Modified: 1}, nil
}

func (m *memStore) UpdateByID(_ context.Context, collection, id string, fields any) (store.UpsertResult, error) {
	coll := m.collection(collection)
	existing, ok := coll[id]
	if !ok {
		return store.UpsertResult{}, nil
	}
	if reflect.DeepEqual(existing, fields) {
		return store.UpsertResult{Matched: 1}, nil
	}
	coll[id] = fields
	return store.UpsertResult{Matched: 1, Modified: 1}, nil
}

func (m *memStore) DeleteEntity(_ context.Context, collection, entityID string) (int64, error) {
	id, err := store.DocumentID(collection, entityID)
	if err != nil {
		return 0, err
	}
	coll := m.collection(collection)
	if _, ok := coll[id]; !ok {
		return 0, nil
	}
	delete(coll, id)
	return 1, nil
}

type fakeTranslator struct {
	err   error
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, text, lang string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "[" + lang + "] " + text, nil
}

func TestSaveDriverTranslatesBiography(t *testing.T) {
	s := newMemStore()
	tr := &fakeTranslator{}
	c := New(s, tr, "ES", nil)

	driver := models.Driver{Biography: "Born in Bristol.", Team: "mclaren"}
	res, err := c.SaveDriver(context.Background(), "norris", driver, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Upserted)
	assert.Equal(t, 1, tr.calls)

	saved := s.docs["drivers"]["driver_norris"].(models.Driver)
	assert.Equal(t, "[ES] Born in Bristol.", saved.Biography)
}

func TestSaveDriverTranslationFailureKeepsOriginal(t *testing.T) {
	s := newMemStore()
	tr := &fakeTranslator{err: errors.New("quota exceeded")}
	c := New(s, tr, "ES", nil)

	driver := models.Driver{Biography: "Born in Bristol."}
	_, err := c.SaveDriver(context.Background(), "norris", driver, true)
	require.NoError(t, err)

	saved := s.docs["drivers"]["driver_norris"].(models.Driver)
	assert.Equal(t, "Born in Bristol.", saved.Biography)
}

func TestSaveTeamIdempotent(t *testing.T) {
	s := newMemStore()
	c := New(s, nil, "ES", nil)
	team := models.Team{Name: "McLaren", Base: "Woking"}

	res, err := c.SaveTeam(context.Background(), "mclaren", team)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Upserted)

	res, err = c.SaveTeam(context.Background(), "mclaren", team)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Matched)
	assert.Equal(t, int64(0), res.Modified, "identical payload must be a no-op")
}

func TestUpdateCircuitEmptyPatch(t *testing.T) {
	s := newMemStore()
	c := New(s, nil, "ES", nil)

	res, err := c.UpdateCircuit(context.Background(), "Monza", CircuitPatch{})
	require.NoError(t, err)
	assert.Zero(t, res.Matched)
	assert.Zero(t, res.Modified)
	assert.Empty(t, s.docs["circuit"], "empty patch must not touch the store")
}

func TestUpdateCircuitTranslatesQuestions(t *testing.T) {
	s := newMemStore()
	s.collection("circuit")["circuit_Monza"] = bson.M{"name": "Italian Grand Prix"}
	tr := &fakeTranslator{}
	c := New(s, tr, "ES", nil)

	laps := 53
	res, err := c.UpdateCircuit(context.Background(), "Monza", CircuitPatch{
		NumberOfLaps: &laps,
		Questions:    map[string]string{"q1": "How long is the circuit?"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Matched)
	assert.Equal(t, 1, tr.calls)

	fields := s.docs["circuit"]["circuit_Monza"].(bson.M)
	assert.Equal(t, 53, fields["number_of_laps"])
	questions := fields["questions"].(map[string]string)
	assert.Equal(t, "[ES] How long is the circuit?", questions["q1"])
}

func TestDeleteAbsentCircuit(t *testing.T) {
	s := newMemStore()
	c := New(s, nil, "ES", nil)

	deleted, err := c.Delete(context.Background(), store.CollectionCircuit, "Monza")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestDeleteUnknownCollection(t *testing.T) {
	s := newMemStore()
	c := New(s, nil, "ES", nil)

	_, err := c.Delete(context.Background(), "teams", "mclaren")
	require.Error(t, err)
}

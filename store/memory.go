package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore is an in-memory Store used by tests. Documents keep their
// arrival order per collection.
type MemoryStore struct {
	mu    sync.Mutex
	colls map[string]*memColl
}

type memColl struct {
	order []string
	docs  map[string]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: make(map[string]*memColl)}
}

func (s *MemoryStore) coll(name string) *memColl {
	c, ok := s.colls[name]
	if !ok {
		c = &memColl{docs: make(map[string]bson.M)}
		s.colls[name] = c
	}
	return c
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.coll(collection)
	docs := make([]Doc, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, Doc{ID: id, Fields: cloneFields(c.docs[id])})
	}
	return docs, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields, ok := s.coll(collection).docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneFields(fields), nil
}

func (s *MemoryStore) Create(ctx context.Context, collection, id string, fields bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(collection, id, fields)
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields bson.M) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.update(collection, id, fields)
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delete(collection, id)
}

func (s *MemoryStore) Query(ctx context.Context, collection, field string, value interface{}) ([]Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.coll(collection)
	var docs []Doc
	for _, id := range c.order {
		if c.docs[id][field] == value {
			docs = append(docs, Doc{ID: id, Fields: cloneFields(c.docs[id])})
		}
	}
	return docs, nil
}

// Batch applies every op or none. Ops are validated against a snapshot
// first so a failing op midway cannot leave a partial write behind.
func (s *MemoryStore) Batch(ctx context.Context, ops []Op) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, op := range ops {
		c := s.coll(op.Collection)
		_, exists := c.docs[op.ID]
		switch op.Kind {
		case OpCreate:
			if exists {
				return errDuplicateID
			}
		case OpUpdate, OpDelete:
			if !exists {
				return ErrNotFound
			}
		}
	}

	for _, op := range ops {
		switch op.Kind {
		case OpCreate:
			s.create(op.Collection, op.ID, op.Fields)
		case OpUpdate:
			s.update(op.Collection, op.ID, op.Fields)
		case OpDelete:
			s.delete(op.Collection, op.ID)
		}
	}
	return nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.coll(collection).order)), nil
}

func (s *MemoryStore) create(collection, id string, fields bson.M) error {
	c := s.coll(collection)
	if _, exists := c.docs[id]; exists {
		return errDuplicateID
	}
	c.docs[id] = cloneFields(fields)
	c.order = append(c.order, id)
	return nil
}

func (s *MemoryStore) update(collection, id string, fields bson.M) error {
	c := s.coll(collection)
	doc, ok := c.docs[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) delete(collection, id string) error {
	c := s.coll(collection)
	if _, ok := c.docs[id]; !ok {
		return ErrNotFound
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func cloneFields(fields bson.M) bson.M {
	clone := make(bson.M, len(fields))
	for k, v := range fields {
		clone[k] = v
	}
	return clone
}

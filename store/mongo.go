package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore binds the Store interface to a MongoDB database. Documents are
// keyed by string _id so ids minted for submissions can be reused verbatim
// when a submission is promoted into the wisata collection.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) List(ctx context.Context, collection string) ([]Doc, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeDocs(ctx, cursor)
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (bson.M, error) {
	var fields bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&fields)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	delete(fields, "_id")
	return fields, nil
}

func (s *MongoStore) Create(ctx context.Context, collection, id string, fields bson.M) error {
	doc := bson.M{"_id": id}
	for k, v := range fields {
		doc[k] = v
	}
	_, err := s.db.Collection(collection).InsertOne(ctx, doc)
	return err
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, fields bson.M) error {
	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Query(ctx context.Context, collection, field string, value interface{}) ([]Doc, error) {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeDocs(ctx, cursor)
}

// Batch applies every op inside one session transaction so a cascading
// delete cannot remove a destination but leave its feedback behind.
func (s *MongoStore) Batch(ctx context.Context, ops []Op) error {
	session, err := s.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		for _, op := range ops {
			var err error
			switch op.Kind {
			case OpCreate:
				err = s.Create(sc, op.Collection, op.ID, op.Fields)
			case OpUpdate:
				err = s.Update(sc, op.Collection, op.ID, op.Fields)
			case OpDelete:
				err = s.Delete(sc, op.Collection, op.ID)
			}
			if err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

func (s *MongoStore) Count(ctx context.Context, collection string) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.M{})
}

func decodeDocs(ctx context.Context, cursor *mongo.Cursor) ([]Doc, error) {
	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}

	docs := make([]Doc, 0, len(raw))
	for _, fields := range raw {
		id := docID(fields["_id"])
		delete(fields, "_id")
		docs = append(docs, Doc{ID: id, Fields: fields})
	}
	return docs, nil
}

// docID renders a document _id as a string. Rows inserted outside this
// store may still carry a driver-generated ObjectID.
func docID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	default:
		return ""
	}
}

// internal/app/store/quotes/quotestore.go
package quotestore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/safispaces/safispaces/internal/app/system/normalize"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// Store provides access to the quote_requests collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new quote request store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("quote_requests")}
}

// Insert stores a new quote request and returns the stored document.
// The reference is generated here so callers can surface it in logs
// and notifications. The email is stored in its canonical lowercase
// form so follow-up lookups compare consistently.
func (s *Store) Insert(ctx context.Context, fields models.QuoteFields, clientIP string) (models.QuoteRequest, error) {
	fields.Email = normalize.Email(fields.Email)

	req := models.QuoteRequest{
		ID:          primitive.NewObjectID(),
		Reference:   uuid.NewString(),
		QuoteFields: fields,
		ClientIP:    clientIP,
		Status:      models.QuoteStatusNew,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.QuoteRequest{}, err
	}
	return req, nil
}

// List returns quote requests newest first, up to limit. A limit of
// zero or less returns everything.
func (s *Store) List(ctx context.Context, limit int64) ([]models.QuoteRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.QuoteRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// GetByReference returns a quote request by its reference.
func (s *Store) GetByReference(ctx context.Context, reference string) (models.QuoteRequest, error) {
	var req models.QuoteRequest
	err := s.c.FindOne(ctx, bson.M{"reference": reference}).Decode(&req)
	if err != nil {
		return models.QuoteRequest{}, err
	}
	return req, nil
}

// MarkContacted sets the status of a quote request to contacted.
func (s *Store) MarkContacted(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.QuoteStatusContacted}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// CountByStatus returns the number of quote requests with the given status.
func (s *Store) CountByStatus(ctx context.Context, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": status})
}

// internal/app/store/ratelimit/store.go
package ratelimit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/safispaces/safispaces/internal/app/system/normalize"
)

// Attempt tracks quote submissions from a specific client IP.
type Attempt struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	ClientIP     string             `bson:"client_ip"`     // Normalized client address
	AttemptCount int                `bson:"attempt_count"` // Submissions in current window
	WindowStart  time.Time          `bson:"window_start"`  // When the current counting window started
	LastAttempt  time.Time          `bson:"last_attempt"`  // Most recent submission (for TTL cleanup)
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// Store tracks quote submission counts per client IP.
type Store struct {
	c           *mongo.Collection
	maxAttempts int
	window      time.Duration
}

// New creates a new rate limit Store with the given configuration.
func New(db *mongo.Database, maxAttempts int, window time.Duration) *Store {
	return &Store{
		c:           db.Collection("rate_limits"),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// CheckAllowed reports whether the given client IP may submit another
// quote request. Returns the number of submissions remaining in the
// current window. Storage errors fail open so a database hiccup never
// blocks legitimate visitors.
func (s *Store) CheckAllowed(ctx context.Context, clientIP string) (allowed bool, remaining int) {
	clientIP = normalize.ClientIP(clientIP)
	now := time.Now()

	var attempt Attempt
	err := s.c.FindOne(ctx, bson.M{"client_ip": clientIP}).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return true, s.maxAttempts
	}
	if err != nil {
		// On error, allow the attempt (fail open for availability)
		return true, s.maxAttempts
	}

	// Window expired: counter resets on the next Record
	if now.After(attempt.WindowStart.Add(s.window)) {
		return true, s.maxAttempts
	}

	remaining = s.maxAttempts - attempt.AttemptCount
	if remaining <= 0 {
		return false, 0
	}
	return true, remaining
}

// Record counts a quote submission from the given client IP.
func (s *Store) Record(ctx context.Context, clientIP string) {
	clientIP = normalize.ClientIP(clientIP)
	now := time.Now()

	var attempt Attempt
	err := s.c.FindOne(ctx, bson.M{"client_ip": clientIP}).Decode(&attempt)

	if err == mongo.ErrNoDocuments {
		attempt = Attempt{
			ID:           primitive.NewObjectID(),
			ClientIP:     clientIP,
			AttemptCount: 1,
			WindowStart:  now,
			LastAttempt:  now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		_, _ = s.c.InsertOne(ctx, attempt)
		return
	}

	if err != nil {
		// On error, skip recording (fail open)
		return
	}

	// Window expired: reset the counter
	if now.After(attempt.WindowStart.Add(s.window)) {
		attempt.AttemptCount = 1
		attempt.WindowStart = now
	} else {
		attempt.AttemptCount++
	}

	attempt.LastAttempt = now
	attempt.UpdatedAt = now

	_, _ = s.c.UpdateOne(ctx,
		bson.M{"_id": attempt.ID},
		bson.M{"$set": bson.M{
			"attempt_count": attempt.AttemptCount,
			"window_start":  attempt.WindowStart,
			"last_attempt":  attempt.LastAttempt,
			"updated_at":    attempt.UpdatedAt,
		}},
	)
}

// Clear removes the rate limit record for the given client IP.
func (s *Store) Clear(ctx context.Context, clientIP string) error {
	clientIP = normalize.ClientIP(clientIP)
	_, err := s.c.DeleteOne(ctx, bson.M{"client_ip": clientIP})
	return err
}

// GetAttempt returns the current attempt record for a client IP (for debugging/admin).
func (s *Store) GetAttempt(ctx context.Context, clientIP string) (*Attempt, error) {
	clientIP = normalize.ClientIP(clientIP)
	var attempt Attempt
	err := s.c.FindOne(ctx, bson.M{"client_ip": clientIP}).Decode(&attempt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

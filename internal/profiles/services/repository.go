package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-armada/internal/profiles/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable wraps network or permission failures against the
// remote document store. Callers surface it to the user and keep whatever
// state they already hold.
var ErrStoreUnavailable = errors.New("profile store unavailable")

// Repository handles database operations for user profiles
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates a new repository instance
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		collection: db.Collection(models.UserProfilesCollection),
	}
}

// CreateIndexes creates necessary database indexes
func (r *Repository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "missions_completed", Value: -1}},
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}

// defaultProfileDoc is the document inserted for a first sign-in
func defaultProfileDoc(userID string, now time.Time) bson.M {
	return bson.M{
		"user_id":            userID,
		"points":             models.DefaultStartingPoints,
		"artifacts":          int64(0),
		"player_level":       1,
		"experience":         int64(0),
		"missions_completed": int64(0),
		"owned_ships":        []models.ShipInstance{},
		"created_at":         now,
		"updated_at":         now,
	}
}

// Load fetches the profile for an identity, atomically creating it with
// default values when absent.
func (r *Repository) Load(ctx context.Context, userID string) (*models.UserProfile, error) {
	defaults := defaultProfileDoc(userID, time.Now().UTC())

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var profile models.UserProfile
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": defaults},
		opts,
	).Decode(&profile)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrStoreUnavailable, userID, err)
	}

	return &profile, nil
}

// Merge applies a field-granular partial update to the profile document and
// returns the merged result. Fields not named in update are left untouched;
// concurrent merges race at field granularity, last write wins.
func (r *Repository) Merge(ctx context.Context, userID string, update bson.M) (*models.UserProfile, error) {
	fields := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range update {
		fields[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile models.UserProfile
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": fields},
		opts,
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("profile for %s not found", userID)
		}
		return nil, fmt.Errorf("%w: merge %s: %v", ErrStoreUnavailable, userID, err)
	}

	return &profile, nil
}

// TopByMissions returns profiles ordered by completed missions, then points
func (r *Repository) TopByMissions(ctx context.Context, limit int) ([]models.UserProfile, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "missions_completed", Value: -1}, {Key: "points", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: leaderboard query: %v", ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var profiles []models.UserProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("%w: leaderboard decode: %v", ErrStoreUnavailable, err)
	}

	return profiles, nil
}

package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "002_create_user_profiles_indexes",
		Description: "Create indexes for user_profiles collection",
		Up:          up002,
		Down:        down002,
	})
}

func up002(ctx context.Context, db *mongo.Database) error {
	profilesCollection := db.Collection("user_profiles")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "missions_completed", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "points", Value: -1}},
		},
	}

	if _, err := profilesCollection.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}

	return nil
}

func down002(ctx context.Context, db *mongo.Database) error {
	profilesCollection := db.Collection("user_profiles")

	for _, name := range []string{"user_id_1", "missions_completed_-1", "points_-1"} {
		if _, err := profilesCollection.Indexes().DropOne(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

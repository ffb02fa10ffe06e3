package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	Register(Migration{
		Version:     "003_create_mission_log_indexes",
		Description: "Create indexes for mission_log collection",
		Up:          up003,
		Down:        down003,
	})
}

func up003(ctx context.Context, db *mongo.Database) error {
	logCollection := db.Collection("mission_log")

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "completed_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "completed_at", Value: -1}},
		},
	}

	if _, err := logCollection.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}

	return nil
}

func down003(ctx context.Context, db *mongo.Database) error {
	logCollection := db.Collection("mission_log")

	for _, name := range []string{"user_id_1_completed_at_-1", "completed_at_-1"} {
		if _, err := logCollection.Indexes().DropOne(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

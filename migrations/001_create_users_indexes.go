package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	Register(Migration{
		Version:     "001_create_users_indexes",
		Description: "Create indexes for users collection",
		Up:          up001,
		Down:        down001,
	})
}

func up001(ctx context.Context, db *mongo.Database) error {
	usersCollection := db.Collection("users")

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "last_login", Value: -1}},
		},
	}

	if _, err := usersCollection.Indexes().CreateMany(ctx, indexes); err != nil {
		return err
	}

	return nil
}

func down001(ctx context.Context, db *mongo.Database) error {
	usersCollection := db.Collection("users")

	for _, name := range []string{"user_id_1", "email_1", "created_at_-1", "last_login_-1"} {
		if _, err := usersCollection.Indexes().DropOne(ctx, name); err != nil {
			return err
		}
	}

	return nil
}

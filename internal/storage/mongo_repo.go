package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Item struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoRepo struct {
	Items *mongo.Collection
	DB    *mongo.Database
}

var _ Storage = (*MongoRepo)(nil)

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	collection := db.Collection("storage")

	return &MongoRepo{
		Items: collection,
		DB:    db,
	}
}

func (r *MongoRepo) GetItem(key string) ([]byte, error) {
	item := &Item{}
	err := r.Items.FindOne(context.TODO(), bson.M{"_id": key}).Decode(item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return []byte(item.Value), nil
}

func (r *MongoRepo) SetItem(key string, value []byte) error {
	item := Item{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	option := options.Replace().SetUpsert(true)

	_, err := r.Items.ReplaceOne(context.TODO(), bson.M{"_id": key}, item, option)

	return err
}

func (r *MongoRepo) RemoveItem(key string) error {
	_, err := r.Items.DeleteOne(context.TODO(), bson.M{"_id": key})

	return err
}

package donation

import (
	"context"
	"foodloop/entities"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ColDonations = "donations"

type donationMongoRepository struct {
	donations *mongo.Collection
}

func NewDonationMongoRepository(db *mongo.Database) DonationRepository {
	return &donationMongoRepository{donations: db.Collection(ColDonations)}
}

func (r *donationMongoRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	_, err := r.donations.InsertOne(ctx, donation)
	return err
}

func (r *donationMongoRepository) GetDonations(ctx context.Context) ([]*entities.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "donated_at", Value: -1}})
	cursor, err := r.donations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var donations []*entities.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *donationMongoRepository) CountDonatedItems(ctx context.Context) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$count", Value: "total"}},
	}
	cursor, err := r.donations.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		Total int64 `bson:"total"`
	}
	if !cursor.Next(ctx) {
		return 0, cursor.Err()
	}
	if err := cursor.Decode(&result); err != nil {
		return 0, err
	}
	return result.Total, nil
}

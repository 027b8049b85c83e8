package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bugtrack/bugtrack-api/internal/core/domain"
)

const developerCollection = "developers"

type DeveloperRepository struct {
	coll *mongo.Collection
}

func NewDeveloperRepository(db *mongo.Database) *DeveloperRepository {
	return &DeveloperRepository{coll: db.Collection(developerCollection)}
}

type mongoDeveloper struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *DeveloperRepository) Create(ctx context.Context, dev *domain.Developer) (*domain.Developer, error) {
	res, err := r.coll.InsertOne(ctx, mongoDeveloper{
		Name:      dev.Name,
		CreatedAt: dev.CreatedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("insert developer: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *dev
	created.ID = id.Hex()
	return &created, nil
}

func (r *DeveloperRepository) FindByID(ctx context.Context, id string) (*domain.Developer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDeveloperNotFound
	}

	var md mongoDeveloper
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&md); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrDeveloperNotFound
		}
		return nil, fmt.Errorf("find developer: %w", err)
	}

	return &domain.Developer{
		ID:        md.ID.Hex(),
		Name:      md.Name,
		CreatedAt: unixToTime(md.CreatedAt),
	}, nil
}

func (r *DeveloperRepository) List(ctx context.Context) ([]*domain.Developer, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	defer cur.Close(ctx)

	var devs []*domain.Developer
	for cur.Next(ctx) {
		var md mongoDeveloper
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode developer: %w", err)
		}
		devs = append(devs, &domain.Developer{
			ID:        md.ID.Hex(),
			Name:      md.Name,
			CreatedAt: unixToTime(md.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	return devs, nil
}

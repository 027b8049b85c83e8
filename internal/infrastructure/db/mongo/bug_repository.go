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

const bugCollection = "bugs"

type BugRepository struct {
	coll *mongo.Collection
}

func NewBugRepository(db *mongo.Database) *BugRepository {
	return &BugRepository{coll: db.Collection(bugCollection)}
}

type mongoBug struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	ReportedBy  string             `bson:"reported_by,omitempty"`
	Severity    string             `bson:"severity"`
	DeveloperID string             `bson:"developer_id,omitempty"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (r *BugRepository) Create(ctx context.Context, bug *domain.Bug) (*domain.Bug, error) {
	doc := bugToDoc(bug)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bug: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *bug
	created.ID = id.Hex()
	return &created, nil
}

func (r *BugRepository) FindByID(ctx context.Context, id string) (*domain.Bug, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBugNotFound
	}

	var mb mongoBug
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBugNotFound
		}
		return nil, fmt.Errorf("find bug: %w", err)
	}
	return bugFromDoc(&mb), nil
}

func (r *BugRepository) List(ctx context.Context) ([]*domain.Bug, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list bugs: %w", err)
	}
	defer cur.Close(ctx)

	var bugs []*domain.Bug
	for cur.Next(ctx) {
		var mb mongoBug
		if err := cur.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode bug: %w", err)
		}
		bugs = append(bugs, bugFromDoc(&mb))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list bugs: %w", err)
	}
	return bugs, nil
}

func (r *BugRepository) Update(ctx context.Context, bug *domain.Bug) (*domain.Bug, error) {
	oid, err := primitive.ObjectIDFromHex(bug.ID)
	if err != nil {
		return nil, domain.ErrBugNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":        bug.Title,
		"description":  bug.Description,
		"reported_by":  bug.ReportedBy,
		"severity":     string(bug.Severity),
		"developer_id": bug.DeveloperID,
		"updated_at":   bug.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update bug: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrBugNotFound
	}
	return bug, nil
}

func (r *BugRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBugNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete bug: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBugNotFound
	}
	return nil
}

func bugToDoc(bug *domain.Bug) mongoBug {
	return mongoBug{
		Title:       bug.Title,
		Description: bug.Description,
		ReportedBy:  bug.ReportedBy,
		Severity:    string(bug.Severity),
		DeveloperID: bug.DeveloperID,
		CreatedAt:   bug.CreatedAt.Unix(),
		UpdatedAt:   bug.UpdatedAt.Unix(),
	}
}

func bugFromDoc(mb *mongoBug) *domain.Bug {
	return &domain.Bug{
		ID:          mb.ID.Hex(),
		Title:       mb.Title,
		Description: mb.Description,
		ReportedBy:  mb.ReportedBy,
		Severity:    domain.Severity(mb.Severity),
		DeveloperID: mb.DeveloperID,
		CreatedAt:   unixToTime(mb.CreatedAt),
		UpdatedAt:   unixToTime(mb.UpdatedAt),
	}
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikens/recetas-api/internal/core/domain"
)

const commentsCollection = "comentarios"

type MongoCommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(commentsCollection)}
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if _, err := r.coll.InsertOne(ctx, comment); err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return comment, nil
}

func (r *MongoCommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&comment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return &comment, nil
}

func (r *MongoCommentRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*domain.Comment, error) {
	cur, err := r.coll.Find(ctx, bson.M{"recipe_id": recipeID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []*domain.Comment
	for cur.Next(ctx) {
		var comment domain.Comment
		if err := cur.Decode(&comment); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, &comment)
	}
	return comments, cur.Err()
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

const recipesCollection = "recetas"

type MongoRecipeRepository struct {
	coll *mongo.Collection
}

func NewRecipeRepository(db *mongo.Database) *MongoRecipeRepository {
	return &MongoRecipeRepository{coll: db.Collection(recipesCollection)}
}

func (r *MongoRecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	if _, err := r.coll.InsertOne(ctx, recipe); err != nil {
		return nil, fmt.Errorf("insert recipe: %w", err)
	}
	return recipe, nil
}

func (r *MongoRecipeRepository) FindByID(ctx context.Context, id string) (*domain.Recipe, error) {
	var recipe domain.Recipe
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return &recipe, nil
}

func (r *MongoRecipeRepository) List(ctx context.Context) ([]*domain.Recipe, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRecipeRepository) ListCommunity(ctx context.Context) ([]*domain.Recipe, error) {
	return r.find(ctx, bson.M{"comunidad": true})
}

func (r *MongoRecipeRepository) find(ctx context.Context, filter bson.M) ([]*domain.Recipe, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer cur.Close(ctx)

	var recipes []*domain.Recipe
	for cur.Next(ctx) {
		var recipe domain.Recipe
		if err := cur.Decode(&recipe); err != nil {
			return nil, fmt.Errorf("decode recipe: %w", err)
		}
		recipes = append(recipes, &recipe)
	}
	return recipes, cur.Err()
}

func (r *MongoRecipeRepository) Update(ctx context.Context, id string, patch ports.RecipePatch) error {
	set := bson.M{}
	if patch.Titulo != nil {
		set["titulo"] = *patch.Titulo
	}
	if patch.Descripcion != nil {
		set["descripcion"] = *patch.Descripcion
	}
	if patch.Comunidad != nil {
		set["comunidad"] = *patch.Comunidad
	}
	if len(set) == 0 {
		return domain.ErrNoChanges
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (r *MongoRecipeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

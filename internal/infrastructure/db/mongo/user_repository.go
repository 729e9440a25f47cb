package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikens/recetas-api/internal/core/domain"
	"github.com/mikens/recetas-api/internal/core/ports"
)

const usersCollection = "usuarios"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           string `bson:"_id"`
	Nombre       string `bson:"nombre"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	Descripcion  string `bson:"descripcion,omitempty"`
	Foto         string `bson:"foto,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
	UpdatedAt    int64  `bson:"updated_at"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		Nombre:       u.Nombre,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Descripcion:  u.Descripcion,
		Foto:         u.Foto,
		CreatedAt:    u.CreatedAt.Unix(),
		UpdatedAt:    u.UpdatedAt.Unix(),
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Nombre:       mu.Nombre,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Descripcion:  mu.Descripcion,
		Foto:         mu.Foto,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if _, err := r.coll.InsertOne(ctx, toMongoUser(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*domain.User
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode user: %w", err)
		}
		users = append(users, mu.toDomain())
	}
	return users, cur.Err()
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"nombre":      update.Nombre,
		"descripcion": update.Descripcion,
		"foto":        update.Foto,
		"updated_at":  time.Now().UTC().Unix(),
	}})
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *MongoUserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

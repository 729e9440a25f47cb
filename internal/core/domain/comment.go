package domain

import (
	"errors"
	"time"
)

var ErrCommentNotFound = errors.New("comment not found")

// Comment belongs to a recipe. AuthorID is taken from verified token claims,
// never from client-supplied fields; Autor is the display name snapshot.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	RecipeID  string    `json:"recipe_id" bson:"recipe_id"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	Autor     string    `json:"autor" bson:"autor"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

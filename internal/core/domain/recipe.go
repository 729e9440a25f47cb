package domain

import (
	"errors"
	"time"
)

var ErrRecipeNotFound = errors.New("recipe not found")
var ErrNoChanges = errors.New("no changes to apply")

// Recipe is the aggregate the authorization core protects. Comunidad marks a
// recipe as publicly listed; OwnerID ties it to the identity that created it,
// while Autor is only the display name snapshotted at creation time.
type Recipe struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Titulo      string    `json:"titulo" bson:"titulo"`
	Descripcion string    `json:"descripcion" bson:"descripcion"`
	Autor       string    `json:"autor" bson:"autor"`
	OwnerID     string    `json:"owner_id" bson:"owner_id"`
	Comunidad   bool      `json:"comunidad" bson:"comunidad"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

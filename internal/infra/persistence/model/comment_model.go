package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentModel mirrors a document of the 'comments' collection.
type CommentModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Content   string             `bson:"content"`
	Video     primitive.ObjectID `bson:"video"`
	Owner     primitive.ObjectID `bson:"owner"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// CommentViewModel is the result shape of the comment feed pipeline.
type CommentViewModel struct {
	ID        primitive.ObjectID `bson:"_id"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
	Owner     OwnerSummaryModel  `bson:"owner"`
}

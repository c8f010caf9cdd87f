package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoModel mirrors a document of the 'videos' collection.
type VideoModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Owner       primitive.ObjectID `bson:"owner"`
	VideoFile   string             `bson:"videoFile"`
	Thumbnail   string             `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	IsPublished bool               `bson:"isPublished"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// VideoPageModel is the $facet result of the paginated channel video pipeline.
type VideoPageModel struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Data []VideoModel `bson:"data"`
}

// Package model holds the bson documents persisted in the document store.
// Documents are mapped to and from domain entities by the repositories.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	UsersCollection         = "users"
	VideosCollection        = "videos"
	CommentsCollection      = "comments"
	SubscriptionsCollection = "subscriptions"
	PlaylistsCollection     = "playlists"
)

// UserModel mirrors a document of the 'users' collection.
type UserModel struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Username     string               `bson:"username"`
	Email        string               `bson:"email"`
	FullName     string               `bson:"fullName"`
	Avatar       string               `bson:"avatar"`
	CoverImage   string               `bson:"coverImage,omitempty"`
	WatchHistory []primitive.ObjectID `bson:"watchHistory"`
	Password     string               `bson:"password,omitempty"`
	RefreshToken string               `bson:"refreshToken,omitempty"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

// OwnerSummaryModel is the owner projection produced by the $lookup stages.
type OwnerSummaryModel struct {
	Username string `bson:"username"`
	FullName string `bson:"fullName"`
	Avatar   string `bson:"avatar"`
}

// ChannelProfileModel is the result shape of the channel profile pipeline.
type ChannelProfileModel struct {
	ID                        primitive.ObjectID `bson:"_id"`
	FullName                  string             `bson:"fullName"`
	Username                  string             `bson:"username"`
	Email                     string             `bson:"email"`
	Avatar                    string             `bson:"avatar"`
	CoverImage                string             `bson:"coverImage"`
	SubscribersCount          int                `bson:"subscribersCount"`
	ChannelsSubscribedToCount int                `bson:"channelsSubscribedToCount"`
	IsSubscribed              bool               `bson:"isSubscribed"`
}

// WatchHistoryModel is the result shape of the watch history pipeline.
type WatchHistoryModel struct {
	ID           primitive.ObjectID   `bson:"_id"`
	HistoryOrder []primitive.ObjectID `bson:"historyOrder"`
	WatchHistory []WatchedVideoModel  `bson:"watchHistory"`
}

// WatchedVideoModel is a video with its owner embedded by the nested $lookup.
type WatchedVideoModel struct {
	ID          primitive.ObjectID `bson:"_id"`
	VideoFile   string             `bson:"videoFile"`
	Thumbnail   string             `bson:"thumbnail"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Views       int64              `bson:"views"`
	Owner       OwnerSummaryModel  `bson:"owner"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

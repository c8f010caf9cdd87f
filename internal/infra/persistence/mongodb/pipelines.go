package mongodb

import (
	"videotube/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ownerSummaryProjection is the public subset of a user embedded in other documents.
var ownerSummaryProjection = bson.D{
	{Key: "username", Value: 1},
	{Key: "fullName", Value: 1},
	{Key: "avatar", Value: 1},
}

// commentFeedPipeline joins each comment of the video with its author, newest first.
func commentFeedPipeline(videoID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: videoID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.UsersCollection},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: ownerSummaryProjection}},
			}},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$project", Value: bson.D{
			{Key: "content", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "owner.username", Value: 1},
			{Key: "owner.fullName", Value: 1},
			{Key: "owner.avatar", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
}

// channelProfilePipeline builds the channel page of username with its subscription counters.
// A nil viewer never counts as subscribed.
func channelProfilePipeline(username string, viewer *primitive.ObjectID) mongo.Pipeline {
	var isSubscribed any = bson.D{{Key: "$literal", Value: false}}
	if viewer != nil {
		isSubscribed = bson.D{{Key: "$cond", Value: bson.D{
			{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{*viewer, "$subscribers.subscriber"}}}},
			{Key: "then", Value: true},
			{Key: "else", Value: false},
		}}}
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "username", Value: username}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.SubscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "channel"},
			{Key: "as", Value: "subscribers"},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.SubscriptionsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "subscriber"},
			{Key: "as", Value: "subscribedTo"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "subscribersCount", Value: bson.D{{Key: "$size", Value: "$subscribers"}}},
			{Key: "channelsSubscribedToCount", Value: bson.D{{Key: "$size", Value: "$subscribedTo"}}},
			{Key: "isSubscribed", Value: isSubscribed},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "fullName", Value: 1},
			{Key: "username", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		}}},
	}
}

// watchHistoryPipeline resolves the user's watched videos with their owners embedded.
// The joined videos come back in collection order; historyOrder keeps the original id list
// so the caller can restore the user's ordering.
func watchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: userID}}}},
		{{Key: "$addFields", Value: bson.D{{Key: "historyOrder", Value: "$watchHistory"}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: model.VideosCollection},
			{Key: "localField", Value: "watchHistory"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "watchHistory"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$lookup", Value: bson.D{
					{Key: "from", Value: model.UsersCollection},
					{Key: "localField", Value: "owner"},
					{Key: "foreignField", Value: "_id"},
					{Key: "as", Value: "owner"},
					{Key: "pipeline", Value: bson.A{
						bson.D{{Key: "$project", Value: ownerSummaryProjection}},
					}},
				}}},
				bson.D{{Key: "$addFields", Value: bson.D{
					{Key: "owner", Value: bson.D{{Key: "$first", Value: "$owner"}}},
				}}},
			}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "historyOrder", Value: 1},
			{Key: "watchHistory", Value: 1},
		}}},
	}
}

// channelVideosPipeline pages through the owner's published videos, newest first.
// The single result document carries the total in metadata and the page in data.
func channelVideosPipeline(ownerID primitive.ObjectID, page, limit int) mongo.Pipeline {
	skip := int64(page-1) * int64(limit)

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "owner", Value: ownerID},
			{Key: "isPublished", Value: true},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$facet", Value: bson.D{
			{Key: "metadata", Value: bson.A{
				bson.D{{Key: "$count", Value: "total"}},
			}},
			{Key: "data", Value: bson.A{
				bson.D{{Key: "$skip", Value: skip}},
				bson.D{{Key: "$limit", Value: int64(limit)}},
			}},
		}}},
	}
}

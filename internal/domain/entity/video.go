package entity

import "time"

// Video is an uploaded media asset owned exclusively by its creator.
type Video struct {
	ID          string    `json:"_id"`
	Owner       string    `json:"owner"`       // Id of the user who published the video.
	VideoFile   string    `json:"videoFile"`   // URL of the media file.
	Thumbnail   string    `json:"thumbnail"`   // URL of the thumbnail image.
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`    // Length in seconds.
	Views       int64     `json:"views"`       // Only ever incremented.
	IsPublished bool      `json:"isPublished"` // Unpublished videos are visible to their owner only.
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WatchedVideo is an entry of a user's watch history with the owner embedded.
type WatchedVideo struct {
	ID          string       `json:"_id"`
	VideoFile   string       `json:"videoFile"`
	Thumbnail   string       `json:"thumbnail"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Duration    float64      `json:"duration"`
	Views       int64        `json:"views"`
	Owner       OwnerSummary `json:"owner"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// VideoPage is one page of a channel's published videos.
type VideoPage struct {
	Videos      []*Video `json:"docs"`
	TotalDocs   int64    `json:"totalDocs"`
	Page        int      `json:"page"`
	Limit       int      `json:"limit"`
	TotalPages  int      `json:"totalPages"`
	HasNextPage bool     `json:"hasNextPage"`
}

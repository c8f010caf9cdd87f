package entity

import "time"

// Comment is a piece of text a user left on a video.
type Comment struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	Video     string    `json:"video"` // Id of the commented video.
	Owner     string    `json:"owner"` // Id of the author. Only the author may delete the comment.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommentView is a comment in a video's feed with its author embedded.
type CommentView struct {
	ID        string       `json:"_id"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	Owner     OwnerSummary `json:"owner"`
}
